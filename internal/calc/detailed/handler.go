package detailed

import (
	"encoding/json"
	"net/http"

	arcflash "ArcStudio/internal/calc/arcflash"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input arcflash.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := arcflash.Calculate(input)
	if err != nil {
		arcflash.WriteError(w, err)
		return
	}
	out := Detailed{
		Result:           res,
		CalculationSteps: BuildTrace(input, res),
		IEEEReferences:   StandardReferences(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
