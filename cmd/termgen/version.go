package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/termgen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of termgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termgen version %s\n", strings.TrimSpace(termgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
