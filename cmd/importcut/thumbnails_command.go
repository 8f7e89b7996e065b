package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importcut/internal/downloader"
)

func newThumbnailsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnails <url>...",
		Short: "Download card thumbnails into the local cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			d := downloader.New(cfg, ctx.ensureLogger())
			results := d.FetchAll(cmd.Context(), args)

			rows := make([][]string, 0, len(results))
			var failures int
			for _, result := range results {
				if result.Err != nil {
					failures++
					rows = append(rows, []string{result.URL, "error", result.Err.Error()})
					continue
				}
				rows = append(rows, []string{result.URL, "ok", result.Path})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"URL", "Result", "Detail"}, rows))
			if failures > 0 {
				return fmt.Errorf("%d of %d downloads failed", failures, len(results))
			}
			return nil
		},
	}
}
