package httpapi

import (
	"encoding/json"
	"net/http"

	"leadhunt-engine/internal/domain"
	"leadhunt-engine/internal/export"
)

type ExportHandler struct{}

type exportRequest struct {
	Leads []domain.Lead `json:"leads"`
}

func (h ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	_, _ = w.Write([]byte(export.CSV(req.Leads)))
}
