package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/services"
)

type ExportHandler struct {
	Export *services.ExportService
}

func NewExportHandler(export *services.ExportService) *ExportHandler {
	return &ExportHandler{Export: export}
}

// Download: GET /export — instantané JSON complet, téléchargé en pièce
// jointe horodatée.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	payload, err := h.Export.Export()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\"coutupro-export-"+time.Now().Format("2006-01-02")+".json\"")
	httpx.JSON(w, http.StatusOK, payload)
}

// Upload: POST /import — remplace TOUTES les données par le contenu du
// fichier. Validation avant la moindre écriture; le remplacement est
// transactionnel.
func (h *ExportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	var payload services.ExportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}
	if err := h.Export.Import(&payload); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"imported": true})
}
