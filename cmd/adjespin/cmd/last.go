package cmd

import (
	"fmt"

	"github.com/f3rmion/adjespin/internal/card"
	"github.com/f3rmion/adjespin/internal/store"
	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last word you landed on",
	Args:  cobra.NoArgs,
	RunE:  runLast,
}

func init() {
	rootCmd.AddCommand(lastCmd)
	lastCmd.Flags().Bool("clear", false, "forget the saved word")
}

func runLast(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	if forget, _ := cmd.Flags().GetBool("clear"); forget {
		if err := e.store.Clear(ctx, store.DefaultSlot); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved word cleared.")
		return nil
	}

	w, ok, err := e.store.Load(ctx, store.DefaultSlot)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved word yet. Run 'adjespin spin' or the TUI first.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), card.Format(w))
	return nil
}
