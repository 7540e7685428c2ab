package main

import (
	"errors"
	"os"

	"github.com/aretw0/termgen/internal/cli"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a written collection with a trie and a list",
	Long: `Loads a previously written collection into a token trie and a flat list,
then runs an exact lookup and a prefix lookup on both and reports timings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyOutputFlags(cmd, &cfg.Output)

		term, _ := cmd.Flags().GetString("term")
		prefix, _ := cmd.Flags().GetString("prefix")
		limit, _ := cmd.Flags().GetInt("limit")
		if term == "" && prefix == "" {
			return errors.New("at least one of --term or --prefix is required")
		}

		_, err = cli.RunSearch(cmd.Context(), cfg, cli.SearchOptions{
			Term:   term,
			Prefix: prefix,
			Limit:  limit,
			Out:    os.Stdout,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("term", "t", "", "Term to look up exactly, e.g. \"f a b\"")
	searchCmd.Flags().String("prefix", "", "Token prefix to list matches for, e.g. \"f a\"")
	searchCmd.Flags().Int("limit", 20, "Maximum number of prefix matches to print; 0 prints all")
	addOutputFlags(searchCmd)
}
