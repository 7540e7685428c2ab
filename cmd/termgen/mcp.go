package main

import (
	"github.com/aretw0/termgen/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long:  `Exposes the generate_terms tool to MCP clients over standard input and output.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunMCP(cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
