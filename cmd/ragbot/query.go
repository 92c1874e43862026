package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Retrieve the most similar chunks for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, _ := cmd.Flags().GetInt("top")

		eng, err := openEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		if err := eng.Load(cmd.Context()); err != nil {
			return err
		}

		results, err := eng.Query(cmd.Context(), strings.Join(args, " "), k)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no results")
			return nil
		}
		for _, r := range results {
			color.Cyan("%.3f  %s", r.Score, r.Source)
			fmt.Printf("  %s\n", snippet(r.Chunk))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().IntP("top", "k", 5, "number of results")
	rootCmd.AddCommand(queryCmd)
}
