package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/policyport/policy-migrate-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
        ██████╗  ██████╗ ██╗     ██╗ ██████╗██╗   ██╗
        ██╔══██╗██╔═══██╗██║     ██║██╔════╝╚██╗ ██╔╝
        ██████╔╝██║   ██║██║     ██║██║      ╚████╔╝
        ██╔═══╝ ██║   ██║██║     ██║██║       ╚██╔╝
        ██║     ╚██████╔╝███████╗██║╚██████╗   ██║
        ╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝   ╚═╝
         M I G R A T E
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Policy Migrate CLI (v%s)", formattedVersion)))
}
