package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evsync/spritsync-go/internal/application/usecase"
	"github.com/evsync/spritsync-go/internal/shared/types"
	"github.com/evsync/spritsync-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	syncUseCase *usecase.SyncUseCase
	version     string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "spritsync",
		Short:   "EV trip telemetry to fuel-log synchronization CLI",
		Version: formattedVersion,
		RunE:    app.runSync,
	}

	rootCmd.SetVersionTemplate(`{{printf "spritsync version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().IntP("window-days", "w", 0, "How many days back to fetch trips for (default: 30)")
	rootCmd.PersistentFlags().IntP("call-budget", "b", 0, "Maximum telemetry API calls for this run (default: 200)")

	vehiclesCmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List the vehicles registered to the telemetry account",
		RunE:  app.runVehicles,
	}
	rootCmd.AddCommand(vehiclesCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	windowDays, _ := app.rootCmd.Flags().GetInt("window-days")
	callBudget, _ := app.rootCmd.Flags().GetInt("call-budget")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	windowDaysPtr := &windowDays
	if windowDays == 0 {
		windowDaysPtr = nil
	}
	callBudgetPtr := &callBudget
	if callBudget == 0 {
		callBudgetPtr = nil
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		WindowDays: windowDaysPtr,
		CallBudget: callBudgetPtr,
	}

	return args, nil
}

// runSync is the entry point for the root command.
func (app *CLIApp) runSync(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.syncUseCase.RunSync(ctx, cliArgs)
}

// runVehicles handles the vehicles subcommand.
func (app *CLIApp) runVehicles(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.syncUseCase.ListVehicles(ctx, cliArgs)
}

// SetSyncUseCase sets the sync use case for the CLI app.
func (app *CLIApp) SetSyncUseCase(useCase *usecase.SyncUseCase) {
	app.syncUseCase = useCase
}
