package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for envpick
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envpick",
		Short: "Pick the environment file an application should load",
		Long: `Envpick resolves which dotenv-style file an application should load
for the active environment.

It expands a filename pattern (".env" plus an optional ".<environment>"
suffix by default) for the environment named by NODE_ENV, probes the
candidates in priority order, and prints the first file that exists.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewResolveCommand())
	cmd.AddCommand(NewCandidatesCommand())

	return cmd
}
