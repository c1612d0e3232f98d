package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sukalov/songform/internal/bot"
	"github.com/sukalov/songform/internal/bot/admin"
	"github.com/sukalov/songform/internal/bot/client"
	"github.com/sukalov/songform/internal/db"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/lyrics"
	"github.com/sukalov/songform/internal/redis"
	"github.com/sukalov/songform/internal/state"
	"github.com/sukalov/songform/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	clientBotToken string
	adminBotToken  string
	adminUsernames []string
}

func loadConfig() (Config, error) {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN", "ADMIN_BOT_TOKEN"})
	if err != nil {
		return Config{}, err
	}
	return Config{
		clientBotToken: env["BOT_TOKEN"],
		adminBotToken:  env["ADMIN_BOT_TOKEN"],
		adminUsernames: utils.SplitList(os.Getenv("ADMIN_USERNAMES")),
	}, nil
}

func main() {
	if err := logger.Setup(false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Error("songform bot stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("required env missing: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		database *sql.DB
		drafts   *state.StateManager
	)

	// database and redis come up in parallel
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		database, err = db.Init()
		return err
	})
	eg.Go(func() error {
		store, err := redis.NewDBManager()
		if err != nil {
			return err
		}
		if err := store.Ping(egCtx); err != nil {
			return fmt.Errorf("failed to reach redis: %w", err)
		}
		drafts = state.NewStateManager(store)
		return drafts.Init(egCtx)
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	defer db.Close()

	clientBot, err := bot.New("client", config.clientBotToken)
	if err != nil {
		return fmt.Errorf("failed to create client bot: %w", err)
	}
	adminBot, err := bot.New("admin", config.adminBotToken)
	if err != nil {
		return fmt.Errorf("failed to create admin bot: %w", err)
	}

	if err := logger.Init(adminBot); err != nil {
		logger.Info("log channel disabled", zap.Error(err))
	}

	songs := db.NewSongForms(database)
	client.SetupHandlers(clientBot, drafts, songs, lyrics.NewService())
	admin.SetupHandlers(adminBot, drafts, songs, config.adminUsernames)

	logger.Success("songform bot started", zap.Int("drafts", drafts.Count()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	clientBot.Stop()
	adminBot.Stop()
	return nil
}
