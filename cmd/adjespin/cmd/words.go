package cmd

import (
	"fmt"

	"github.com/f3rmion/adjespin/internal/config"
	"github.com/f3rmion/adjespin/internal/word"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the word list",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().Bool("yaml", false, "print as a words.yaml document")
}

func runWords(cmd *cobra.Command, args []string) error {
	// The list is read without opening the store or the log.
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	list, err := word.Load(cfg.WordsFile)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := word.MarshalYAML(list)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	for _, w := range list {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}
