package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nunajera/assistant-relay/internal/config"
	"github.com/nunajera/assistant-relay/internal/diag"
	"github.com/nunajera/assistant-relay/internal/handler"
	"github.com/nunajera/assistant-relay/internal/provider"
	"github.com/nunajera/assistant-relay/internal/relay"
)

func main() {
	cfg := config.Load()

	dlog := diag.NewFile(cfg.LogFile, os.Stdout)
	dlog.Log("Starting AI relay")
	dlog.Log("GROQ_API_KEY set?", cfg.GroqAPIKey != "", "OPENAI_API_KEY set?", cfg.OpenAIAPIKey != "", "port", cfg.Port)

	rl := relay.New(cfg, provider.NewClient(cfg.UpstreamTimeout), dlog)
	r := handler.New(rl, handler.Options{
		CORSOrigin: cfg.CORSOrigin,
		Log:        dlog,
		AccessLog:  true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 7 * cfg.UpstreamTimeout, // first call plus every fallback variant
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	dlog.Log("AI relay listening on http://localhost:" + cfg.Port + "/api/assistant")
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
