package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var buildDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the build directory for local preview",
		Long: `Starts a local web server over the rendered build directory so pages can
be reviewed before deployment.`,
		Example: `  # Preview on default port 8880
  sitegen serve

  # Preview an alternate build on a custom port
  sitegen serve --build out --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(buildDir); os.IsNotExist(err) {
				return errors.New("build directory not found, run \"sitegen build\" first")
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/", servePage(buildDir))
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Site preview available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8880", "Port to listen on")
	cmd.Flags().StringVar(&buildDir, "build", "build", "Directory containing the rendered site")

	return cmd
}

func servePage(buildDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "cartridges/index.html"
		}

		// Prevent directory traversal attacks
		if strings.Contains(path, "..") {
			http.Error(w, "Invalid file path", http.StatusBadRequest)
			return
		}

		// Set appropriate content type based on file extension
		switch {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css")
		case strings.HasSuffix(path, ".html"):
			w.Header().Set("Content-Type", "text/html")
		case strings.HasSuffix(path, ".csv"):
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		}

		http.ServeFile(w, r, filepath.Join(buildDir, filepath.FromSlash(path)))
	}
}
