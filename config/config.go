// Package config reads server settings from an optional .env file, the
// environment and the command line, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/deal/game"
)

type Config struct {
	TCPAddr       string
	HTTPAddr      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MaxRounds     int
	PlayTimeout   time.Duration
	Debug         bool

	Local bool
	Bots  int
	Name  string
}

func defaults() Config {
	return Config{
		TCPAddr:     ":9999",
		HTTPAddr:    ":9998",
		MaxRounds:   game.MaxRounds,
		PlayTimeout: consts.PlayTimeout,
		Bots:        2,
		Name:        "You",
	}
}

// Load builds the configuration for args, which exclude the program name.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg := defaults()
	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("deal", flag.ContinueOnError)
	flags.StringVar(&cfg.TCPAddr, "tcp", cfg.TCPAddr, "tcp listen address")
	flags.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "http and websocket listen address")
	flags.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address for game results, empty keeps them in memory")
	flags.IntVar(&cfg.MaxRounds, "rounds", cfg.MaxRounds, "rounds before a game ends without winner")
	flags.DurationVar(&cfg.PlayTimeout, "timeout", cfg.PlayTimeout, "time a remote player has to answer")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logging")
	flags.BoolVar(&cfg.Local, "local", cfg.Local, "play in this terminal against bots")
	flags.IntVar(&cfg.Bots, "bots", cfg.Bots, "number of bots in local mode")
	flags.StringVar(&cfg.Name, "name", cfg.Name, "your name in local mode")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c *Config) fromEnv() error {
	c.TCPAddr = envString("DEAL_TCP_ADDR", c.TCPAddr)
	c.HTTPAddr = envString("DEAL_HTTP_ADDR", c.HTTPAddr)
	c.RedisAddr = envString("DEAL_REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = envString("DEAL_REDIS_PASSWORD", c.RedisPassword)
	var err error
	if c.RedisDB, err = envInt("DEAL_REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.MaxRounds, err = envInt("DEAL_MAX_ROUNDS", c.MaxRounds); err != nil {
		return err
	}
	if c.PlayTimeout, err = envDuration("DEAL_PLAY_TIMEOUT", c.PlayTimeout); err != nil {
		return err
	}
	if c.Debug, err = envBool("DEAL_DEBUG", c.Debug); err != nil {
		return err
	}
	return nil
}

func (c Config) validate() error {
	if c.MaxRounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.MaxRounds)
	}
	if c.PlayTimeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.PlayTimeout)
	}
	if c.Local {
		if c.Bots < consts.MinPlayers-1 || c.Bots > consts.MaxPlayers-1 {
			return fmt.Errorf("bots must be between %d and %d, got %d", consts.MinPlayers-1, consts.MaxPlayers-1, c.Bots)
		}
		if c.Name == "" {
			return errors.New("name must not be empty")
		}
	}
	return nil
}

func envString(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func envBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
