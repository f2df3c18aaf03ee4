package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	appMigrations "github.com/yigit/alumni/internal/app/migrations"
	"github.com/yigit/alumni/internal/config"
	"github.com/yigit/alumni/internal/pkg/logger"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	m, err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString())
	if err != nil {
		logger.Fatal().Err(err).Msg("Migration init failed")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil {
			logger.Fatal().Err(err).Msg("Up failed")
		}
		logger.Info().Msg("Migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				logger.Fatal().Str("steps", args[1]).Msg("Down: invalid steps argument")
			}
			steps = n
		}
		if err := m.Down(steps); err != nil {
			logger.Fatal().Err(err).Msg("Down failed")
		}
		logger.Info().Int("steps", steps).Msg("Migrations: down completed")

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			logger.Fatal().Err(err).Msg("Version failed")
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version

The database comes from configs/config.yaml (or CONFIG_PATH) and DB_* variables.`)
}
