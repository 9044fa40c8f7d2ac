package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/internal/server"
)

const (
	defaultServeAddr = "127.0.0.1:7878"
	shutdownTimeout  = 5 * time.Second
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the annotation API for editor integrations",
		Long: `Serve starts an HTTP API. Editors post document changes to
/v1/documents/change and read badges back from /v1/annotations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.build(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(svc.Watcher, svc.State, c.Logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			printInfo("Listening on http://%s", addr)
			printDetail("Tracking %v", svc.Watcher.SupportedFiles())
			return listenAndServe(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	return cmd
}

// listenAndServe runs srv until ctx is cancelled, then shuts it down.
func listenAndServe(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
