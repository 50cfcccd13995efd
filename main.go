package main

import (
	"MentorMarket/impl/core"
	"MentorMarket/internal/alert"
	"MentorMarket/internal/config"
	"MentorMarket/internal/database"
	"MentorMarket/internal/http-server/api"
	"MentorMarket/internal/lib/logger"
	"MentorMarket/internal/lib/sl"
	"context"
	"flag"
	"log/slog"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	if conf.Telegram.Enabled {
		tgBot, err := alert.NewTgBot(conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			var level slog.Level
			if err = level.UnmarshalText([]byte(conf.Telegram.Level)); err != nil {
				level = slog.LevelError
			}
			lg = logger.SetupTelegramHandler(lg, tgBot, level)
			lg.With(
				slog.Int64("admin_id", conf.Telegram.AdminId),
				slog.String("level", level.String()),
			).Info("telegram alerts enabled")
		}
	}

	lg.Info("starting mentor directory", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := core.New(lg)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.Error("mongo client", sl.Err(err))
		return
	}
	if db != nil {
		handler.SetRepository(db)
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Close(closeCtx); err != nil {
				lg.Error("mongo disconnect", sl.Err(err))
			}
		}()
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			sl.Secret("password", conf.Mongo.Password),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	} else {
		handler.SetRepository(repository.NewMemoryStore())
		lg.Warn("mongo disabled, using in-memory store")
	}

	// *** blocking start with http server ***
	err = api.New(ctx, conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Info("service stopped")
}
