package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalvas/swaggerdoc/muxhandlers"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the discovery endpoints of a manifest",
		Long: "Serve the discovery document, the per-resource documents and the " +
			"declared routes, which answer 501 Not Implemented.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := cmd.Flags().GetString("addr")
			if err != nil {
				return err
			}

			handler, err := newServeHandler(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return listen(ctx, cmd, addr, handler)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")

	return cmd
}

func newServeHandler(cmd *cobra.Command) (http.Handler, error) {
	p, err := loadPipeline(cmd, true)
	if err != nil {
		return nil, err
	}
	printDiagnostics(cmd.ErrOrStderr(), p.diags)

	p.router.Use(
		muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{TimeOrdered: true, TrustIncoming: true}),
		muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
			LogFunc: func(r *http.Request, requestID string, err any) {
				Goose.Serve.Logf(1, "panic serving %s %s [%s]: %v", r.Method, r.URL.Path, requestID, err)
			},
		}),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "discovery document at %s\n", p.docs.Config().DiscoveryURL)

	return p.router, nil
}

func listen(ctx context.Context, cmd *cobra.Command, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: shutdown: %w", err)
	}

	return nil
}
