package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"importcut/internal/history"
	"importcut/internal/importer"
)

func newDropCommand(ctx *commandContext) *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "drop <url-or-path>...",
		Short: "Process a drop payload into an import session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.settingsStore()
			if err != nil {
				return err
			}
			settings, err := store.Load()
			if err != nil {
				return err
			}

			process := func(hist *history.Store) error {
				im := importer.New(cfg, hist, settings, ctx.ensureLogger())
				session, err := im.ProcessDrop(cmd.Context(), args)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				printStatus(out, ansiGreen, "Accepted %s", session.DisplayName)
				fmt.Fprintf(out, "  cut:        %s\n", session.CutPath)
				if session.MediaPath != "" {
					fmt.Fprintf(out, "  media:      %s\n", session.MediaPath)
				}
				if session.SourceURL != "" {
					fmt.Fprintf(out, "  source:     %s\n", session.SourceURL)
				}
				fmt.Fprintf(out, "  frame rate: %g fps\n", session.FrameRate)
				if session.ID != "" {
					fmt.Fprintf(out, "  session:    %s\n", session.ID)
				} else {
					fmt.Fprintf(out, "  session:    not recorded (%s)\n", filepath.Base(session.CutPath))
				}
				return nil
			}

			if noRecord {
				return process(nil)
			}
			return ctx.withHistory(process)
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Process the drop without recording a history session")
	return cmd
}
