package cmd

import (
	"fmt"

	"github.com/f3rmion/adjespin/internal/card"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin once and print the word",
	Long: `Look up every word in the list, spin once without the animation and
print the card for the word it lands on. The result is saved as the last
word, just like a spin in the TUI.`,
	Args: cobra.NoArgs,
	RunE: runSpin,
}

func init() {
	rootCmd.AddCommand(spinCmd)
}

func runSpin(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	source, err := e.words()
	if err != nil {
		return err
	}

	mach := e.machine(source)
	if _, _, err := mach.Restore(ctx); err != nil {
		e.log.Warn("no previous word", zap.Error(err))
	}
	if err := mach.Load(ctx, func(done, total int) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\rLooking up words... %d/%d", done, total)
	}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr())

	s, err := mach.Spin(ctx)
	if err != nil {
		return err
	}
	s.Advance(s.Duration())
	s.End()
	if err := mach.CommitErr(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), card.Format(s.Final()))
	return nil
}
