package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse - сериализует data в JSON и пишет ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse - пишет ошибку в едином формате {"message": ...}
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, map[string]string{"message": message})
}
