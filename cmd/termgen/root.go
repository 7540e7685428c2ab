package main

import (
	"fmt"
	"os"

	"github.com/aretw0/termgen/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termgen",
	Short: "termgen generates random first-order terms",
	Long: `termgen builds random terms over a signature of function and constant
symbols and writes them in prefix notation, one term per line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig layers the config file, environment and persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

// applyOutputFlags overrides the output section with any flags set on cmd.
func applyOutputFlags(cmd *cobra.Command, out *config.Output) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		out.Path, _ = flags.GetString("output")
	}
	if flags.Changed("backend") {
		out.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("bucket") {
		out.Bucket, _ = flags.GetString("bucket")
	}
	if flags.Changed("redis-addr") {
		out.RedisAddr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("redis-key") {
		out.RedisKey, _ = flags.GetString("redis-key")
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output path for the file and bolt backends (default termos.txt)")
	cmd.Flags().StringP("backend", "b", "", "Output backend: file, bolt, redis or memory")
	cmd.Flags().String("bucket", "", "Bucket name for the bolt backend")
	cmd.Flags().String("redis-addr", "", "Redis address for the redis backend")
	cmd.Flags().String("redis-key", "", "Collection name for the redis backend")
}
