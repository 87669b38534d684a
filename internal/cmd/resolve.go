package cmd

import (
	"fmt"

	"github.com/harrison/envpick"
	"github.com/harrison/envpick/notify"
	"github.com/harrison/envpick/pattern"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates and returns the resolve subcommand
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [directory]",
		Short: "Resolve the environment file for a directory",
		Long: `Expand the filename pattern for the active environment, probe the
candidates in the given directory, and print the absolute path of the
first one that exists.

The environment name comes from --env when set, otherwise from the
NODE_ENV environment variable (or the variable named by --env-var),
and defaults to "development".

Examples:
  # Resolve in the current directory
  envpick resolve

  # Resolve for a specific environment
  envpick resolve --env production ./services/api

  # Use a custom filename pattern
  envpick resolve --pattern-file pattern.yaml

  # Report the .env fallback as info instead of a warning
  envpick resolve --quiet

Exit code: 0 if a file was found, 1 otherwise`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runResolve(cmd, dir)
		},
		SilenceUsage: true,
	}

	addSelectionFlags(cmd)
	cmd.Flags().BoolP("quiet", "q", false, "Report the .env fallback as info instead of a warning")
	cmd.Flags().Bool("silent", false, "Suppress resolution notifications entirely")

	return cmd
}

// runResolve resolves the environment file for dir and prints its path
func runResolve(cmd *cobra.Command, dir string) error {
	opts, err := selectionOptions(cmd)
	if err != nil {
		return err
	}

	sink := notify.NewConsoleSink(cmd.ErrOrStderr())
	if silent, _ := cmd.Flags().GetBool("silent"); silent {
		sink = notify.NewNopSink()
	}
	opts = append(opts, envpick.WithSink(sink))

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		opts = append(opts, envpick.SuppressFallbackWarning())
	}

	path, err := envpick.Resolve(dir, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// addSelectionFlags registers the flags shared by subcommands that expand
// a filename pattern
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("env", "e", "", "Environment name (default: value of the environment variable)")
	cmd.Flags().String("env-var", "", "Environment variable consulted for the environment name (default: NODE_ENV)")
	cmd.Flags().StringP("pattern-file", "p", "", "Path to a YAML filename pattern")
}

// selectionOptions translates the shared flags into resolver options
func selectionOptions(cmd *cobra.Command) ([]envpick.Option, error) {
	var opts []envpick.Option

	if env, _ := cmd.Flags().GetString("env"); env != "" {
		opts = append(opts, envpick.WithEnvironment(env))
	}

	if envVar, _ := cmd.Flags().GetString("env-var"); envVar != "" {
		opts = append(opts, envpick.WithEnvironmentVariable(envVar))
	}

	if patternFile, _ := cmd.Flags().GetString("pattern-file"); patternFile != "" {
		p, err := pattern.LoadFile(patternFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load pattern file: %w", err)
		}
		opts = append(opts, envpick.WithPattern(p))
	}

	return opts, nil
}
