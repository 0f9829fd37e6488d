// Command mock serves canned assistant replies on the relay's route so the
// editor can be developed offline.
package main

import (
	"log"

	"github.com/nunajera/assistant-relay/internal/config"
	"github.com/nunajera/assistant-relay/internal/diag"
	"github.com/nunajera/assistant-relay/internal/handler"
	"github.com/nunajera/assistant-relay/internal/provider"
)

func main() {
	cfg := config.Load()

	r := handler.New(provider.Mock{}, handler.Options{
		CORSOrigin: cfg.CORSOrigin,
		Log:        diag.NewFile("", log.Writer()),
		AccessLog:  true,
	})

	log.Printf("Mock AI relay listening on http://localhost:%s/api/assistant", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("mock server: %v", err)
	}
}
