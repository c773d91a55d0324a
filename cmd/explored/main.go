package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/roverlabs/explored/internal/cliconfig"
	"github.com/roverlabs/explored/pkg/explore"
	pkglog "github.com/roverlabs/explored/pkg/log"
	"github.com/roverlabs/explored/plugins/configwatcher"
)

const shutdownGrace = 10 * time.Second

const longHelp = `explored drives a mobile agent through autonomous area-coverage missions.

Given a bounded region and a starting point, it coordinates the boundary,
frontier, and navigation services until the region is fully covered or the
mission fails. Missions are submitted and cancelled through the HTTP API.

Configure via config file (default $HOME/.explored/config.toml),
environment variables (EXPLORED_*), or flags; flags win.`

const exampleUsage = `  explored --boundary-url http://costmap:8080 --frontier-url http://planner:8081 \
      --nav-url http://nav:8082 --transform-url http://tf:8083 --localizer-url http://tf:8083
  explored --config /etc/explored/config.toml --store /var/lib/explored/missions.db`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "explored",
		Short:   "Autonomous area-coverage mission orchestrator",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Precedence: flags > environment > config file > defaults.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else {
				cfgFile = ""
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			e, err := explore.New(cfg.ToExplore(cfgFile),
				explore.WithLogger(pkglog.WrapZerolog(log)),
				configwatcher.WithConfigWatcher(configwatcher.DefaultConfig()),
			)
			if err != nil {
				return fmt.Errorf("create explorer: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := e.Start(ctx); err != nil {
				return fmt.Errorf("start explorer: %w", err)
			}

			srv := &http.Server{
				Addr:    cfg.ListenAddr,
				Handler: newServer(e, log).routes(),
			}
			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.ListenAddr).Msg("mission API listening")
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case <-ctx.Done():
				log.Info().Msg("received signal, stopping...")
			case err := <-errCh:
				log.Error().Err(err).Msg("mission API failed")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("server shutdown")
			}
			return e.Close()
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.explored/config.toml)")
	root.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "mission API listen address")

	root.Flags().StringVar(&cfg.BoundaryURL, "boundary-url", cfg.BoundaryURL, "costmap boundary service base URL")
	root.Flags().StringVar(&cfg.FrontierURL, "frontier-url", cfg.FrontierURL, "frontier planner base URL")
	root.Flags().StringVar(&cfg.NavigationURL, "nav-url", cfg.NavigationURL, "navigation executor base URL")
	root.Flags().StringVar(&cfg.TransformURL, "transform-url", cfg.TransformURL, "pose transform service base URL")
	root.Flags().StringVar(&cfg.LocalizerURL, "localizer-url", cfg.LocalizerURL, "localization service base URL")

	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout for collaborator requests")
	root.Flags().DurationVar(&cfg.ReadyTimeout, "ready-timeout", cfg.ReadyTimeout, "bound on each collaborator availability wait")
	root.Flags().DurationVar(&cfg.RetryDelay, "retry-delay", cfg.RetryDelay, "delay between failed step attempts")
	root.Flags().DurationVar(&cfg.NavPollInterval, "nav-poll", cfg.NavPollInterval, "navigation goal status poll interval")

	root.Flags().IntVar(&cfg.BoundaryAttempts, "boundary-attempts", cfg.BoundaryAttempts, "retry budget for installing the boundary")
	root.Flags().IntVar(&cfg.NavigateAttempts, "navigate-attempts", cfg.NavigateAttempts, "retry budget per navigation step")
	root.Flags().IntVar(&cfg.FrontierAttempts, "frontier-attempts", cfg.FrontierAttempts, "frontier request budget before termination inference")

	root.Flags().StringVar(&cfg.StorePath, "store", cfg.StorePath, "SQLite mission log path (empty disables)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("explored")
		os.Exit(1)
	}
}
