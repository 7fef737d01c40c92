package interfaces

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type JSONResponder func(w http.ResponseWriter, status int, payload interface{})

type ErrorResponder func(w http.ResponseWriter, status int, message string, fieldErrors ...map[string][]string)

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func RespondError(w http.ResponseWriter, status int, message string, fieldErrors ...map[string][]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}

	if len(fieldErrors) > 0 && len(fieldErrors[0]) > 0 {
		payload["errors"] = fieldErrors[0]
	}

	RespondJSON(w, status, payload)
}

func success(message string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	}
}

func mustHaveDependencies(service interface{}, respondJSON JSONResponder, respondError ErrorResponder) {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
}
