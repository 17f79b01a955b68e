package main

import (
	"net/http"
	"os"
	"time"

	"pettabl/internal/adapters/auth/idp"
	"pettabl/internal/platform/logger"
	"pettabl/internal/ports/auth"
	"pettabl/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin AUTH_BASE_URL queda en modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := idp.NewClient(idp.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			log.Error("idp client init failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = idp.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
