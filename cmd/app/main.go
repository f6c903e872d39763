package main

import (
	"context"
	"errors"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/internal/app"
	"hoteladmin/shared/logger"
	"hoteladmin/shared/timezone"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
)

const (
	argLength       = 2
	exportArgLength = 2
	monthsArgIndex  = 2
)

const usage = "Command (init/export-report <file.xlsx> [months]/purge-sessions) is required"

var errUsage = errors.New(usage)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg(usage)
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	application, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		stop()
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	err = run(ctx, application, os.Args[1:])

	cleanup()
	stop()

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

// run dispatches one command. The schema already exists at this point.
func run(ctx context.Context, application *app.App, args []string) error {
	switch args[0] {
	case "init":
		return application.Init(ctx)
	case "export-report":
		if len(args) < exportArgLength {
			return fmt.Errorf("export-report needs an output file: %w", errUsage)
		}

		months := 0

		if len(args) > monthsArgIndex {
			var err error

			if months, err = strconv.Atoi(args[monthsArgIndex]); err != nil {
				return fmt.Errorf("months must be a number: %w", err)
			}
		}

		return application.ExportReport(ctx, args[1], months)
	case "purge-sessions":
		return application.PurgeSessions(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}
