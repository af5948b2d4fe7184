package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/httpapi"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve scenes and layouts over HTTP",
	Long: `Start an HTTP server answering layout queries.

Routes:
  GET /healthz
  GET /scenes                         registered and on-disk scenes
  GET /scenes/{name}                  node tree
  GET /scenes/{name}/layout?w=&h=     resolved rectangles

Documents are read on every request, so edits show up immediately.

Examples:
  glyphjam api --http :8080
  curl 'localhost:8080/scenes/main_menu/layout?w=1920&h=1080'`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runAPI(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx).WithPrefix("http")
	r := newResolver()
	cfg := loadConfig(r)

	srv := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           httpapi.New(r, cfg.Display, logger, flagBuiltin).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", flagHTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			fatal("%v", err)
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fatal("%v", err)
	}
}
