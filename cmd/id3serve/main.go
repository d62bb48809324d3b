// Command id3serve serves ID3v2.3 tag inspection over HTTP.
//
//	id3serve -addr :8080 -origin http://localhost:3000
//
// POST the first bytes of a media file to /v1/tags to get its tag report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simonhull/id3meta/internal/logging"
	"github.com/simonhull/id3meta/internal/server"
)

func main() {
	addr := flag.String("addr", envOr("ADDR", ":8080"), "listen address")
	maxBody := flag.Int64("max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")
	origins := flag.String("origin", "", "comma separated origins allowed by CORS")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	log := logging.New(os.Stderr, *verbosity)
	if *verbosity == 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	h := server.NewHandler(server.Config{
		MaxBodyBytes: *maxBody,
		AllowOrigins: splitOrigins(*origins),
		Logger:       log.WithName("server"),
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", *addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "id3serve: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "id3serve: shutdown: %v\n", err)
			os.Exit(1)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
