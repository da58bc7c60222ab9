package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"connectfour/meta"

	"github.com/rs/zerolog"
)

type Config struct {
	Rows     int
	Columns  int
	Tick     time.Duration
	LogFile  string // empty disables logging, stdout belongs to the board
	LogLevel zerolog.Level
}

// Load reads the configuration from the environment and then the command
// line; flags win. Call godotenv.Load first to pick up a .env file.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("connectfour", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	rows := fs.Int("rows", GetEnvAsInt("CONNECT4_ROWS", meta.ROWS), "number of board rows")
	columns := fs.Int("cols", GetEnvAsInt("CONNECT4_COLUMNS", meta.COLUMNS), "number of board columns")
	tick := fs.Duration("tick", GetEnvAsDuration("CONNECT4_TICK", meta.TICK_RATE), "longest wait for input between redraws")
	logFile := fs.String("log", GetEnv("CONNECT4_LOG", ""), "write logs to this file")
	level := fs.String("level", GetEnv("LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.Usage()
		}
		return Config{}, err
	}

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", *level, err)
	}

	cfg := Config{
		Rows:     *rows,
		Columns:  *columns,
		Tick:     *tick,
		LogFile:  *logFile,
		LogLevel: lvl,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Columns)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
