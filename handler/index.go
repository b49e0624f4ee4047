package handler

import (
	"encoding/json"
	"net/http"

	"hardware-store/models"
)

// Handler answers the platform's root probe.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Method not allowed"})
		return
	}

	_ = json.NewEncoder(w).Encode(models.Response{
		Success: true,
		Message: "Hardware Store API",
		Data:    map[string]string{"path": r.URL.Path, "docs": "/swagger/index.html"},
	})
}
