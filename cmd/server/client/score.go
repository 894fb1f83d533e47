package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an army file without storing it",
	Long:  `Send a JSON or YAML army list to the server and print the rating report.`,
	RunE:  runScore,
}

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show the rating bands for a game size",
	RunE:  runThresholds,
}

func init() {
	scoreCmd.Flags().StringVar(&filePath, "file", "", "Army file (required)")
	scoreCmd.Flags().IntVar(&gameSize, "game-size", 0, "Points limit (server default when 0)")
	_ = scoreCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	thresholdsCmd.Flags().IntVar(&gameSize, "game-size", 0, "Points limit (server default when 0)")
}

func runScore(_ *cobra.Command, _ []string) error {
	units, err := readUnits(filePath)
	if err != nil {
		return err
	}
	list, err := unitsValue(units)
	if err != nil {
		return err
	}

	var reply struct {
		Report *engine.Report `json:"report"`
	}
	if err := call(v1alpha1.MethodScoreUnits, map[string]any{
		v1alpha1.KeyUnits:    list,
		v1alpha1.KeyGameSize: gameSize,
	}, &reply); err != nil {
		return err
	}

	return printReport(units, reply.Report)
}

func runThresholds(_ *cobra.Command, _ []string) error {
	var reply struct {
		Thresholds *engine.Thresholds `json:"thresholds"`
	}
	if err := call(v1alpha1.MethodGetThresholds, map[string]any{v1alpha1.KeyGameSize: gameSize}, &reply); err != nil {
		return err
	}

	th := reply.Thresholds
	fmt.Printf("Thresholds for a %d point game (x%.2f)\n\n", th.GameSize, th.Ratio)
	fmt.Printf("  Offense:  %s\n", th.Offense.Describe())
	fmt.Printf("  Defense:  %s\n", th.Defense.Describe())
	fmt.Printf("  Tactical: %s\n", th.Tactical.Describe())
	return nil
}
