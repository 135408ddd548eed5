package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	ReportName string
	ReportType []string
	Dir        string
	WindowDays *int
	CallBudget *int
}
