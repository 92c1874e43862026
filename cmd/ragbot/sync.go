package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the store with the source folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		rep, err := eng.Sync(cmd.Context(), viper.GetString("data"))
		if err != nil {
			return err
		}
		// The corpus may have changed; stale cached answers must not survive.
		eng.ClearCache()

		color.Green("sync complete: %d added, %d re-indexed, %d removed, %d unchanged",
			rep.Added, rep.Updated, rep.Removed, rep.Unchanged)
		fmt.Printf("index holds %d chunks\n", rep.Chunks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
