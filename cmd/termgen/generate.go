package main

import (
	"os"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/internal/cli"
	"github.com/aretw0/termgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of random terms",
	Long:  `Generates a batch of random terms and writes them to the configured output, one per line.`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("depth") {
		cfg.MaxDepth, _ = flags.GetInt("depth")
	}
	if flags.Changed("leaf-prob") {
		cfg.LeafProbability, _ = flags.GetFloat64("leaf-prob")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	applyOutputFlags(cmd, &cfg.Output)

	quiet, _ := flags.GetBool("quiet")
	rich := tui.IsTerminal(os.Stdout)
	if rich && !quiet {
		tui.PrintBanner(os.Stdout, termgen.Version)
	}

	ctx := cli.NewSignalContext(cmd.Context())
	defer ctx.Cancel()

	_, err = cli.RunGenerate(ctx, cfg, cli.GenerateOptions{
		Out:   os.Stdout,
		Rich:  rich,
		Quiet: quiet,
	})
	return err
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("count", "n", 0, "Number of terms to generate (default 10000)")
	cmd.Flags().IntP("depth", "d", 0, "Maximum nesting depth (default 4)")
	cmd.Flags().Float64P("leaf-prob", "p", 0, "Probability of stopping early at a leaf (default 0.3)")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible output; 0 draws a fresh seed")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the completion message")
	addOutputFlags(cmd)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)

	// Generating is what termgen does when no command is given.
	addGenerateFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runGenerate
}
