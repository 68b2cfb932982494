package commands

import (
	"github.com/spf13/cobra"

	"github.com/Acidburn0zzz/polymd"
	"github.com/Acidburn0zzz/polymd/internal/config"
	"github.com/Acidburn0zzz/polymd/internal/input"
	"github.com/Acidburn0zzz/polymd/internal/output"
)

// interactive reports whether prompts may be shown. Tests replace it.
var interactive = input.IsInteractive

// RootCmd creates and returns the root command for the polymd CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "polymd",
		Short: "Scaffold Polymer web components",
		Long: `polymd creates a ready-to-develop web component project:
• Element, demo and test pages
• package.json and bower.json with your details filled in
• Build and release tasks
• Dependencies installed with npm, yarn or pnpm`,
		Version:       polymd.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Config file (default ~/.polymd.yaml)")

	return cmd
}

// loadConfig reads the configuration named by the inherited --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := ""
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	return config.Load(path)
}
