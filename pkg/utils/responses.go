package utils

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// ErrorBody is the {"error": "..."} envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the {"message": "..."} envelope.
type MessageBody struct {
	Message string `json:"message"`
}

// ResponseJSON writes payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

// ResponseError writes {"error": message}
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorBody{Error: message})
}

// ResponseMessage writes {"message": message}
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, MessageBody{Message: message})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that field-level validation reports what is missing.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
