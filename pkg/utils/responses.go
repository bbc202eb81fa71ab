package utils

import (
	"encoding/json"
	"net/http"
)

// DataResponse is the envelope for reads: {"data": ...}
type DataResponse struct {
	Data any `json:"data"`
}

// WriteResponse is the envelope for writes: {"success": true, ...}
type WriteResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Changes *int64 `json:"changes,omitempty"`
}

// ErrorResponse is the envelope for failures: {"error": "..."}
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK with {"data": data}
func ResponseData(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, DataResponse{Data: data})
}

// returns 200 OK with {"success": true, "data": data}
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, WriteResponse{Success: true, Data: data})
}

// returns 201 Created with {"success": true, "data": data}
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, WriteResponse{Success: true, Data: data})
}

// returns 200 OK with {"success": true, "changes": n}; n == 0 means no row matched
func ResponseChanges(w http.ResponseWriter, changes int64) {
	ResponseJSON(w, http.StatusOK, WriteResponse{Success: true, Changes: &changes})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, ErrorResponse{Error: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Error: message})
}
