package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importcut/internal/fileref"
)

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:         "translate <url>...",
		Short:       "Translate file reference URLs to filesystem paths",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(args))
			var failures int

			for _, arg := range args {
				path, ok, err := fileref.Translate(arg)
				switch {
				case err != nil:
					failures++
					rows = append(rows, []string{arg, "error", err.Error()})
				case !ok:
					rows = append(rows, []string{arg, "skipped", "not a file reference"})
				default:
					rows = append(rows, []string{arg, "ok", path})
					if plain {
						fmt.Fprintln(out, path)
					}
				}
			}

			if !plain {
				fmt.Fprintln(out, renderTable([]string{"URL", "Result", "Detail"}, rows))
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d inputs were not valid URLs", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print resolved paths only, one per line")
	return cmd
}
