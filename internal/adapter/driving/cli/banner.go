package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/evsync/spritsync-go/pkg/version"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$                      /$$   /$$      /$$$$$$
         /$$__  $$                    |__/  | $$     /$$__  $$
        | $$  \__/  /$$$$$$   /$$$$$$  /$$ /$$$$$$  | $$  \__/ /$$   /$$ /$$$$$$$   /$$$$$$$
        |  $$$$$$  /$$__  $$ /$$__  $$| $$|_  $$_/  |  $$$$$$ | $$  | $$| $$__  $$ /$$_____/
         \____  $$| $$  \ $$| $$  \__/| $$  | $$     \____  $$| $$  | $$| $$  \ $$| $$
         /$$  \ $$| $$  | $$| $$      | $$  | $$ /$$ /$$  \ $$| $$  | $$| $$  | $$| $$
        |  $$$$$$/| $$$$$$$/| $$      | $$  |  $$$$/|  $$$$$$/|  $$$$$$$| $$  | $$|  $$$$$$$
         \______/ | $$____/ |__/      |__/   \___/   \______/  \____  $$|__/  |__/ \_______/
                  | $$                                         /$$  | $$
                  | $$                                        |  $$$$$$/
                  |__/                                         \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("spritsync CLI (v%s)", formattedVersion)))
}
