package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/willibrandon/smartedit/internal/storage/sqlite"
)

func newRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened and saved files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()

			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			files, err := sqlite.NewRecentStore(db).Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, dimColor("no recent files"))
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(out, "%-10s %8s  %s\n",
					dimColor(humanize.Time(f.LastUsed)),
					humanize.Bytes(uint64(f.Size)),
					f.Path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of files to show")

	return cmd
}
