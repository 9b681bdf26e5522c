package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	filecredentials "github.com/Overland-East-Bay/participant-api/internal/adapters/file/credentials"
	"github.com/Overland-East-Bay/participant-api/internal/adapters/httpapi"
	memparticipantrepo "github.com/Overland-East-Bay/participant-api/internal/adapters/memory/participantrepo"
	"github.com/Overland-East-Bay/participant-api/internal/app/participants"
	"github.com/Overland-East-Bay/participant-api/internal/platform/auth/basicauth"
	"github.com/Overland-East-Bay/participant-api/internal/platform/config"
	"github.com/Overland-East-Bay/participant-api/internal/platform/metrics"
)

const shutdownTimeout = 10 * time.Second

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

Configuration comes from the environment (PORT, ADMIN_CREDENTIALS_FILE, LOG_LEVEL,
LOG_FORMAT), optionally seeded from a .env file in the working directory. The server
shuts down gracefully on SIGINT/SIGTERM.

Examples:
  # Start with default configuration
  api serve

  # Start on a specific port with debug logging
  api serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: 3000)")
}

func runServer(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	logger := config.NewLogger(cfg.Logging)

	repo := memparticipantrepo.NewRepo()
	if err := metrics.RegisterStoreSize(metrics.Registry, repo.Len); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	svc := participants.NewService(repo, logger)

	creds := filecredentials.NewFileProvider(cfg.Auth.CredentialsFile)
	verifier := basicauth.New(creds)
	handler := httpapi.NewRouter(httpapi.NewServer(svc), httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(verifier),
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Int("port", cfg.Server.Port).
			Str("credentials_file", creds.Path()).
			Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
