package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/adjespin/internal/config"
	"github.com/f3rmion/adjespin/internal/word"
	"github.com/spf13/cobra"
)

const wordsTemplateFile = "words.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize adjespin configuration",
	Long: `Initialize adjespin configuration files in your config directory.

This creates:
  - words.yaml   (the built-in adjective list, ready to edit)
  - config.yaml  (lookup, picker and reel settings, pointing at words.yaml)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	out := cmd.OutOrStdout()

	configPath := filepath.Join(configDir, config.FileName)
	wordsPath := filepath.Join(configDir, wordsTemplateFile)

	if !force {
		for _, p := range []string{configPath, wordsPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists\nUse --force to overwrite", p)
			}
		}
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Fprintf(out, "Initializing adjespin configuration in %s\n\n", configDir)

	data, err := word.MarshalYAML(word.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(wordsPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", wordsTemplateFile, err)
	}
	fmt.Fprintf(out, "  Created %s\n", wordsTemplateFile)

	cfg := config.Default(configDir)
	cfg.WordsFile = wordsPath
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.FileName)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit words.yaml to add your own adjectives")
	fmt.Fprintln(out, "  2. Run 'adjespin lookup <word>' to check a word has a definition")
	fmt.Fprintln(out, "  3. Run 'adjespin' and press space to spin")

	return nil
}
