package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vislib-axis/config"
	"vislib-axis/internal/database"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List saved axis presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitDB(config.GetString("db_path")); err != nil {
			return err
		}
		defer database.CloseDB()

		presets, err := database.ListPresets()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDOMAIN\tMODE\tSIZE")
		for _, p := range presets {
			fmt.Fprintf(w, "%s\t[%s, %s]\t%s\t%sx%s\n",
				p.Name,
				humanize.Commaf(p.YMin), humanize.Commaf(p.YMax),
				p.Mode,
				humanize.Ftoa(p.Width), humanize.Ftoa(p.Height),
			)
		}
		return w.Flush()
	},
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitDB(config.GetString("db_path")); err != nil {
			return err
		}
		defer database.CloseDB()

		return database.DeletePreset(args[0])
	},
}
