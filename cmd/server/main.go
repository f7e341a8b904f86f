package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/coutupro/internal/config"
	"github.com/diewo77/coutupro/internal/db"
	"github.com/diewo77/coutupro/internal/server"
	"github.com/diewo77/coutupro/internal/services"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	dbConn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrateOnlyFlag {
		log.Println("Migrations completed successfully")
		return
	}

	// Hygiène au démarrage: les codes de démonstration ne survivent pas à
	// un redéploiement, et le code maître doit toujours exister.
	access := services.NewAccessService(dbConn, cfg.MasterCode)
	if err := access.PurgeDemoCodes(); err != nil {
		log.Fatalf("Demo code purge failed: %v", err)
	}
	if err := access.EnsureAdminCode(); err != nil {
		log.Fatalf("Admin code setup failed: %v", err)
	}
	if err := services.NewMesureService(dbConn).SeedMesureTypes(); err != nil {
		log.Fatalf("Mesure catalog seed failed: %v", err)
	}

	handler := server.New(dbConn, cfg.MasterCode)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      withLogging(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (env=%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
