package arcflash

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCalc(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	return rec
}

func TestCalcHandlerOK(t *testing.T) {
	payload, err := json.Marshal(sampleInput())
	require.NoError(t, err)

	rec := postCalc(t, string(payload))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "Test Switchboard", res.EquipmentName)
	assert.Greater(t, res.IncidentEnergy, 0.0)
	assert.NotNil(t, res.Warnings)
}

func TestCalcHandlerMalformedBody(t *testing.T) {
	rec := postCalc(t, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalcHandlerValidationError(t *testing.T) {
	in := sampleInput()
	in.Voltage = 120
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	rec := postCalc(t, string(payload))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "voltage", body["field"])
}

func TestWriteErrorComputationFault(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Calculation error")
}
