package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/slidejet/internal/server"
	"github.com/ziadkadry99/slidejet/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the presentation hub web server",
	Long:  `Starts the SlideJet viewer: deck picker, slide viewer, media endpoint and deck listing API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload viewers and drop cached decks when files change")
	serveCmd.Flags().Bool("open", false, "open the viewer in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	h, loader, err := createHub(cfg, logger, cfg.Watch)
	if err != nil {
		return fmt.Errorf("creating hub: %w", err)
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, logger)
	h.RegisterRoutes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		w, err := watch.New(h.AppDir(), logger, loader.Reset, h.Reload)
		if err != nil {
			return fmt.Errorf("watching %s: %w", h.AppDir(), err)
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("watcher stopped", "err", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	refs, _ := h.Decks()
	logger.Info("slidejet starting",
		"version", Version,
		"port", cfg.Port,
		"app_dir", h.AppDir(),
		"decks", len(refs),
		"watch", cfg.Watch,
	)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(fmt.Sprintf("http://localhost:%d/", cfg.Port))
	}

	return srv.Start()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
