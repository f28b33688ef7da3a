// Package cmd contains all CLI commands for adjespin.
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/adjespin/internal/clipboard"
	"github.com/f3rmion/adjespin/internal/config"
	"github.com/f3rmion/adjespin/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	wordsFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adjespin",
	Short: "An adjective slot machine for the terminal",
	Long: `adjespin spins a reel of adjectives and lands on one, showing its
definition, pronunciation and an example sentence from a free online
dictionary. The last word you landed on is remembered between runs.

Running 'adjespin' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/adjespin)")
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", "", "word list file (.json or .yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("words_file", rootCmd.PersistentFlags().Lookup("words"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("ADJESPIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// runTUI launches the slot machine.
func runTUI(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	source, loadErr := e.words()
	if loadErr != nil {
		// The UI stays on its loading screen and shows the error.
		e.log.Error("loading word list", zap.String("path", e.cfg.WordsFile), zap.Error(loadErr))
	}

	app := tui.NewApp(ctx, e.machine(source), clipboard.NewSystem(), e.log)
	if loadErr != nil {
		app = app.WithError(loadErr)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
