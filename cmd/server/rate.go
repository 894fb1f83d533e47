package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
	"github.com/KirkDiggler/army-rater/internal/services/report"
)

var (
	rateGameSize int
	rateBarWidth int
	rateOptions  scoring.Options
)

var rateCmd = &cobra.Command{
	Use:   "rate <file>",
	Short: "Rate a JSON or YAML army file offline",
	Long:  `Score an exported army list locally and print a report of every unit, weapon and army total.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rateFile(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rateCmd.Flags().IntVar(&rateGameSize, "game-size", 2000, "Points limit to rate against")
	rateCmd.Flags().IntVar(&rateBarWidth, "bar-width", 0, "Cells in a full bar (default 20)")
	rateCmd.Flags().BoolVar(&rateOptions.ApplyHitModifier, "apply-hit-modifier", false, "Apply unit hit bonuses to weapon power")
	rateCmd.Flags().BoolVar(&rateOptions.EffectiveSaveTier, "effective-save-tier", false, "Score the save after save bonuses")
}

func rateFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	units, err := interchange.New().Decode(data, interchange.DetectFormat(path, data))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	eng, err := scoring.New(&scoring.Config{Options: rateOptions})
	if err != nil {
		return err
	}

	text, err := report.NewText(&report.TextConfig{BarWidth: rateBarWidth})
	if err != nil {
		return err
	}
	return text.Render(w, units, eng.Evaluate(units, rateGameSize))
}
