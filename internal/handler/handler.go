// Package handler exposes a ChatProvider over HTTP.
package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nunajera/assistant-relay/internal"
	"github.com/nunajera/assistant-relay/internal/diag"
	"github.com/nunajera/assistant-relay/internal/provider"
)

type Options struct {
	CORSOrigin string
	Log        diag.Logger
	// AccessLog enables gin's per-request access log on stdout.
	AccessLog bool
}

// New builds the engine shared by the relay and the mock binaries.
func New(chat provider.ChatProvider, opts Options) *gin.Engine {
	r := gin.New()
	if opts.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(Recovery(opts.Log), CORS(opts.CORSOrigin), RequestID(), BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uptime": time.Now().Format(time.RFC3339)})
	})

	r.GET("/api/model", func(c *gin.Context) {
		model := ""
		if m, ok := chat.(interface{ DefaultModel() string }); ok {
			model = m.DefaultModel()
		}
		c.JSON(http.StatusOK, gin.H{"provider": chat.Name(), "model": model})
	})

	r.POST("/api/assistant", Assistant(chat))

	return r
}

// Assistant decodes a ChatRequest and writes whatever envelope chat returns.
// An empty body is treated as an empty request.
func Assistant(chat provider.ChatProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req internal.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, internal.Failure("request body too large"))
				return
			}
			c.JSON(http.StatusBadRequest, internal.Failure("invalid JSON body: "+err.Error()))
			return
		}

		status, env := chat.Reply(c.Request.Context(), req)
		c.JSON(status, env)
	}
}
