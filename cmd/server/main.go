// mindful-arcade-server serves the arcade over SSH. Every connection gets
// its own picker and games. Build:
//
//	go build -o mindful-arcade-server ./cmd/server
//
// Usage:
//
//	./mindful-arcade-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/config"
	"mindful-arcade/internal/host"
	"mindful-arcade/internal/logging"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := newServerCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	var (
		cfgPath     string
		port        int
		keyFile     string
		maxSessions int
	)
	cmd := &cobra.Command{
		Use:           "mindful-arcade-server",
		Short:         "Serve the arcade over SSH",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("key") {
				cfg.Server.HostKey = keyFile
			}
			if cmd.Flags().Changed("max-sessions") {
				cfg.Server.MaxSessions = maxSessions
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(cfg.Log, "stderr")
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&port, "port", 2222, "SSH server port")
	cmd.Flags().StringVar(&keyFile, "key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", 32, "Maximum concurrent players")
	return cmd
}

// serve runs the SSH server until ctx is done, then shuts it down.
func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	h := host.New(host.Options{
		MaxSessions: cfg.Server.MaxSessions,
		Seed:        cfg.Seed,
		Settings:    catalog.Settings{ReconcileWordle: cfg.Wordle.Reconcile},
	}, log)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.Handle,
		// No auth handlers: players are identified by their SSH user name only.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
		IdleTimeout: cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening",
			zap.Int("port", cfg.Server.Port),
			zap.Int("max_sessions", cfg.Server.MaxSessions),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Int("sessions", len(h.Sessions())))
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			// Players still connected after the grace period are cut off.
			_ = srv.Close()
		}
		return nil
	})
	return g.Wait()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
		log.Warn("host key unreadable, replacing it", zap.String("path", path))
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "mindful-arcade server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("cannot save host key", zap.String("path", path), zap.Error(err))
		}
	}
	return signer, nil
}
