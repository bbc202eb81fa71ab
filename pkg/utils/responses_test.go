package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{"data", func(w http.ResponseWriter) { ResponseData(w, []int{1, 2}) }, http.StatusOK, `{"data":[1,2]}`},
		{"created", func(w http.ResponseWriter) { ResponseCreated(w, map[string]string{"id": "eq1"}) }, http.StatusCreated, `{"success":true,"data":{"id":"eq1"}}`},
		{"zero changes kept", func(w http.ResponseWriter) { ResponseChanges(w, 0) }, http.StatusOK, `{"success":true,"changes":0}`},
		{"bad request", func(w http.ResponseWriter) { ResponseBadRequest(w, "Validation failed", map[string]string{"Date": "This field is required"}) }, http.StatusBadRequest, `{"error":"Validation failed","details":{"Date":"This field is required"}}`},
		{"conflict", func(w http.ResponseWriter) { ResponseConflict(w, "slot already booked") }, http.StatusConflict, `{"error":"slot already booked"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
