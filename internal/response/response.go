// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorBody is the envelope written for every failed request.
type ErrorBody struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Status     bool   `json:"status"     example:"false"`
	Message    string `json:"message"    example:"Invalid file name"`
	Heading    string `json:"heading"    example:"Product"`
	Data       any    `json:"data"`
}

// Success is the acknowledgement returned by delete endpoints.
type Success struct {
	Success bool `json:"success" example:"true"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Error writes the error envelope. The heading is derived from the request path.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, status, ErrorBody{
		StatusCode: status,
		Status:     false,
		Message:    message,
		Heading:    Heading(r.URL.Path),
		Data:       nil,
	})
}

// Heading names the API area a path belongs to.
func Heading(path string) string {
	switch {
	case strings.Contains(path, "/health"):
		return "Health"
	case strings.Contains(path, "/products"):
		return "Product"
	default:
		return "Error"
	}
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusUnauthorized, message)
}

// TooLarge writes a 413 response.
func TooLarge(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusRequestEntityTooLarge, message)
}

// TooManyRequests writes a 429 response.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusTooManyRequests, "ThrottlerException: Too Many Requests")
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
}

// ServiceUnavailable writes a 503 response.
func ServiceUnavailable(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusServiceUnavailable, message)
}

// InternalError writes a 500 response with a generic message.
func InternalError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, "Internal server error")
}
