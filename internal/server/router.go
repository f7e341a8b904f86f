package server

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/coutupro/internal/auth"
	"github.com/diewo77/coutupro/internal/handlers"
	"github.com/diewo77/coutupro/internal/httpx"
	"github.com/diewo77/coutupro/internal/models"
	"github.com/diewo77/coutupro/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
// Tout est protégé par la session d'appareil sauf /health, /healthz et la
// porte d'entrée /auth/login + /auth/session.
func New(db *gorm.DB, masterCode string) http.Handler {
	mux := http.NewServeMux()

	// Le cookie ne suffit pas: la session doit toujours exister en base.
	auth.SetDeviceVerifier(func(_ context.Context, fingerprint string) bool {
		var count int64
		if err := db.Model(&models.User{}).Where("browser_fingerprint = ?", fingerprint).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	accessSvc := services.NewAccessService(db, masterCode)
	clientSvc := services.NewClientService(db)
	mesureSvc := services.NewMesureService(db)
	commandeSvc := services.NewCommandeService(db)
	paiementSvc := services.NewPaiementService(db)
	retoucheSvc := services.NewRetoucheService(db)
	alerteSvc := services.NewAlerteService(db)
	statsSvc := services.NewStatsService(db)
	settingsSvc := services.NewSettingsService(db)
	exportSvc := services.NewExportService(db)

	protect := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(auth.RequireAuth(h))
	}

	// Porte d'entrée
	ah := handlers.NewAccessHandler(accessSvc)
	mux.Handle("/auth/login", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		ah.Login(w, r)
	}))
	mux.Handle("/auth/session", auth.Middleware(http.HandlerFunc(ah.Session)))
	mux.Handle("/auth/logout", protect(ah.Logout))
	mux.Handle("/admin/codes", protect(ah.Codes))

	// Clients et mesures
	ch := handlers.NewClientHandler(clientSvc, mesureSvc)
	mux.Handle("/clients", protect(ch.Collection))
	mux.Handle("/clients/get", protect(ch.Item))
	mux.Handle("/mesures", protect(ch.MesuresCollection))
	mux.Handle("/mesure-types", protect(ch.MesureTypes))

	// Commandes et paiements
	coh := handlers.NewCommandeHandler(commandeSvc, paiementSvc)
	mux.Handle("/commandes", protect(coh.Collection))
	mux.Handle("/commandes/get", protect(coh.Item))
	mux.Handle("/commandes/statut", protect(coh.Statut))
	mux.Handle("/commandes/delete", protect(coh.Delete))
	mux.Handle("/paiements", protect(coh.PaiementsCollection))

	// Retouches
	rh := handlers.NewRetoucheHandler(retoucheSvc)
	mux.Handle("/retouches", protect(rh.Collection))
	mux.Handle("/retouches/statut", protect(rh.Statut))

	// Alertes
	alh := handlers.NewAlerteHandler(alerteSvc)
	mux.Handle("/alertes", protect(alh.List))
	mux.Handle("/alertes/generate", protect(alh.Generate))
	mux.Handle("/alertes/read", protect(alh.Read))
	mux.Handle("/alertes/read-all", protect(alh.ReadAll))
	mux.Handle("/alertes/unread-count", protect(alh.UnreadCount))

	// Tableau de bord et rapports
	sh := handlers.NewStatsHandler(statsSvc)
	mux.Handle("/stats/dashboard", protect(sh.Dashboard))
	mux.Handle("/stats/rapport", protect(sh.Rapport))

	// Réglages
	seh := handlers.NewSettingsHandler(settingsSvc)
	mux.Handle("/settings", protect(seh.Handle))

	// Export / import
	eh := handlers.NewExportHandler(exportSvc)
	mux.Handle("/export", protect(eh.Download))
	mux.Handle("/import", protect(eh.Upload))

	// Documents PDF
	dh := handlers.NewDocumentHandler(clientSvc, mesureSvc, commandeSvc, paiementSvc, settingsSvc)
	mux.Handle("/pdf/fiche-client", protect(dh.FicheClient))
	mux.Handle("/pdf/recu", protect(dh.RecuCommande))

	return withRecover(mux)
}

// withRecover turns panics into 500s instead of killing the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
