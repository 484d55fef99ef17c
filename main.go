package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/deal/config"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/deal/card/color"
	"github.com/ratel-online/deal/deal/game"
	"github.com/ratel-online/deal/deal/msg"
	"github.com/ratel-online/deal/deal/player"
	"github.com/ratel-online/deal/network"
	"github.com/ratel-online/deal/record"
	"github.com/ratel-online/deal/service"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Local {
		if err := playLocal(cfg, logger); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		return
	}

	recorder, err := newRecorder(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	database.Setup(database.Options{
		Recorder:    recorder,
		Logger:      logger,
		MaxRounds:   cfg.MaxRounds,
		PlayTimeout: cfg.PlayTimeout,
	})
	async.Async(func() {
		log.Error(network.NewWebsocketServer(cfg.HTTPAddr, service.NewRouter(recorder)).Serve())
	})
	log.Error(network.NewTcpServer(cfg.TCPAddr).Serve())
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Local {
		return zap.NewNop(), nil
	}
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRecorder(cfg config.Config) (record.Recorder, error) {
	if cfg.RedisAddr == "" {
		return record.NewMemory(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return record.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

// playLocal seats the terminal user against bots.
func playLocal(cfg config.Config, logger *zap.Logger) error {
	r := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	_, _ = fmt.Fprint(color.Stdout, msg.Message.Welcome(cfg.Name))
	players := player.CreatePlayers(cfg.Bots+1, cfg.Name, os.Stdin, color.Stdout, r)
	g, err := game.New(players,
		game.WithSeed(r.Uint64()),
		game.WithLogger(logger),
		game.WithMaxRounds(cfg.MaxRounds),
	)
	if err != nil {
		return err
	}
	_, err = g.Play()
	return err
}
