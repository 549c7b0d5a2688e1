package batch

import (
	arcflash "ArcStudio/internal/calc/arcflash"
)

type BatchInput struct {
	Items []arcflash.Input `json:"items"`
}

type BatchResult struct {
	Results []arcflash.Result `json:"results"`
}

// Calculate runs the engine over every item. The batch is
// all-or-nothing: one invalid item fails the whole request.
func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, &arcflash.ValidationError{Field: "items", Message: "no items"}
	}
	out := BatchResult{Results: make([]arcflash.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := arcflash.Calculate(item)
		if err != nil {
			return BatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
