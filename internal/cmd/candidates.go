package cmd

import (
	"fmt"

	"github.com/harrison/envpick"
	"github.com/spf13/cobra"
)

// NewCandidatesCommand creates and returns the candidates subcommand
func NewCandidatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Print the candidate filenames in probe order",
		Long: `Expand the filename pattern for the active environment and print every
candidate filename, one per line, in the order the resolver probes
them. The filesystem is not touched.

Examples:
  envpick candidates
  envpick candidates --env test
  envpick candidates --pattern-file pattern.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCandidates(cmd)
		},
		SilenceUsage: true,
	}

	addSelectionFlags(cmd)

	return cmd
}

// runCandidates prints the expanded candidate list
func runCandidates(cmd *cobra.Command) error {
	opts, err := selectionOptions(cmd)
	if err != nil {
		return err
	}

	for _, name := range envpick.Candidates(opts...) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}
