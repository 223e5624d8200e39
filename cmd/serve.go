package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/devika/mathquest/internal/config"
	"github.com/devika/mathquest/internal/llm"
	"github.com/devika/mathquest/internal/logging"
	"github.com/devika/mathquest/internal/mathsteps"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/quest"
	"github.com/devika/mathquest/internal/server"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/store"
	"github.com/devika/mathquest/internal/story"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quest API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds dependencies, and starts the HTTP server.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.Load()

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	slog.SetDefault(log)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var sessStore session.Store
	if cfg.RedisAddr != "" {
		rs, err := session.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		log.Info("session store ready", "backend", "redis", "addr", cfg.RedisAddr)
		sessStore = rs
	} else {
		log.Info("session store ready", "backend", "memory")
		sessStore = session.NewMemoryStore(cfg.SessionTTL)
	}
	sessions := session.NewService(sessStore)

	eventRepo := st.EventRepo()
	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, eventRepo); err != nil {
		log.Warn("LLM provider not configured, using local fallbacks", "err", err)
	} else {
		provider = p
	}

	quests := quest.NewService(
		mathsteps.NewService(provider, mathsteps.DefaultConfig()),
		story.NewService(provider, story.DefaultConfig()),
		minigame.NewGenerator(provider, minigame.DefaultConfig()),
		sessions,
		eventRepo,
		log,
	)

	srv := server.New(server.Config{
		Addr:         cfg.Addr,
		AllowOrigins: cfg.AllowOrigins,
		Release:      cfg.Production(),
	}, log, sessions, quests, st.AppUserRepo(), eventRepo)

	log.Info("listening", "addr", cfg.Addr, "env", cfg.Environment)
	return srv.Run()
}
