package main

import (
	"fmt"
	"os"

	"github.com/evsync/spritsync-go/internal/adapter/driven/config"
	"github.com/evsync/spritsync-go/internal/adapter/driven/export"
	"github.com/evsync/spritsync-go/internal/adapter/driven/ledger"
	"github.com/evsync/spritsync-go/internal/adapter/driven/telemetry"
	"github.com/evsync/spritsync-go/internal/adapter/driving/cli"
	"github.com/evsync/spritsync-go/internal/application/usecase"
	"github.com/evsync/spritsync-go/pkg/console"
	"github.com/evsync/spritsync-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	syncUseCase := usecase.NewSyncUseCase(
		telemetry.NewBluelinkRepository,
		ledger.NewSpritmonitorRepository,
		configRepo,
		exportRepo,
		consoleImpl,
	)

	app.SetSyncUseCase(syncUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
