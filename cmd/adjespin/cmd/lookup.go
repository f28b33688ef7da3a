package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/adjespin/internal/card"
	"github.com/f3rmion/adjespin/internal/dictionary"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Look up words in the dictionary",
	Long: `Look up one or more words and print what the slot machine would show
for them. Unlike the TUI, failures are reported with their reason.

Example:
  adjespin lookup happy
  adjespin lookup brave quiet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	failed := 0
	for i, arg := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		w, err := e.client.Fetch(cmd.Context(), arg)
		switch {
		case errors.Is(err, dictionary.ErrNotFound), errors.Is(err, dictionary.ErrNoDefinition):
			fmt.Fprintf(out, "%s: %v\n", arg, err)
			failed++
		case err != nil:
			fmt.Fprintf(out, "%s: lookup failed: %v\n", arg, err)
			failed++
		default:
			fmt.Fprintln(out, card.Format(w))
		}
	}

	if failed == len(args) {
		return fmt.Errorf("no definitions found for %d word(s)", failed)
	}
	return nil
}
