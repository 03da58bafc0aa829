package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/iudanet/egovcms/internal/client/api"
	ecli "github.com/iudanet/egovcms/internal/client/cli"
	"github.com/iudanet/egovcms/internal/client/iocli"
	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/client/storage/boltdb"
	"github.com/iudanet/egovcms/internal/client/ui"
	"github.com/iudanet/egovcms/internal/config"
	"github.com/iudanet/egovcms/internal/printer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Flags глобальные флаги и зависимости, готовые после Before
type Flags struct {
	APIURL     string
	DBPath     string
	ConfigPath string
	LogLevel   string
	LogFile    string

	Config  *config.Config
	Storage *boltdb.Storage
	Cli     *ecli.Cli
}

func build() string {
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s) %s", Version, short, BuildDate)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &Flags{}
	)

	app := &cli.Command{
		Name:      ecli.AppName,
		Usage:     "Terminal client for the eGovFrame CMS",
		UsageText: "egovcms [global options] command [command options]",
		Description: `egovcms talks to an eGovFrame CMS REST backend: sign up, log in,
browse and write board articles, manage your profile and, for
administrators, list members.

The session (token and user) is kept in a local database between runs.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "CMS backend URL (default: " + config.DefaultAPIURL + ")",
				Sources:     cli.EnvVars("EGOVCMS_API_URL"),
				Destination: &flags.APIURL,
			},
			&cli.StringFlag{
				Name:        "db",
				Usage:       "path to local database (default: " + config.DefaultDBPath + ")",
				Sources:     cli.EnvVars("EGOVCMS_DB"),
				Destination: &flags.DBPath,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to YAML config file",
				Sources:     cli.EnvVars("EGOVCMS_CONFIG"),
				Value:       "egovcms.yaml",
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("EGOVCMS_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("EGOVCMS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}
			ctx = log.Logger.WithContext(ctx)

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			cfg.Override(flags.APIURL, flags.DBPath)
			flags.Config = cfg

			// Открываем BoltDB storage
			if dir := filepath.Dir(cfg.DBPath); dir != "." {
				if err := os.MkdirAll(dir, 0o700); err != nil {
					return ctx, fmt.Errorf("failed to create database directory: %w", err)
				}
			}
			storage, err := boltdb.New(ctx, cfg.DBPath)
			if err != nil {
				return ctx, fmt.Errorf("failed to open database: %w", err)
			}
			flags.Storage = storage

			// Создаем API клиент, токен берется из сессии
			apiClient := api.NewClient(cfg.APIURL,
				api.WithLogger(log.With().Str("component", "api").Logger()))
			sess := session.New(apiClient, storage, log.With().Str("component", "session").Logger())
			apiClient.SetTokenSource(sess)
			sess.Hydrate(ctx)

			flags.Cli = ecli.New(iocli.NewStdio(), apiClient, sess, ui.New(), cfg.Boards)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.Storage == nil {
				return nil
			}
			if err := flags.Storage.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database")
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run '%s --help' for usage", c.Args().First(), ecli.AppName)
			}
			return flags.Cli.RunHome(ctx)
		},
	}

	app.Commands = commands(flags)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		printer.Ctx(ctx).FatalError(ecli.Friendly(err))
		exitCode = 1
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		output = io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, file)
	}

	log.Logger = log.Output(output).Level(parsedLevel)
	return nil
}
