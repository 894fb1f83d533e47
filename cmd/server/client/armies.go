package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
)

var (
	armyName  string
	unitIndex int
	unitCount int
)

type armySummary struct {
	Army       *army.Army         `json:"army"`
	Score      *engine.ArmyScore  `json:"score"`
	Assessment *engine.Assessment `json:"assessment"`
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an army, optionally seeded from a file",
	RunE:  runCreate,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show an army and its rating report",
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored armies with their totals",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an army",
	RunE:  runDelete,
}

var setCountCmd = &cobra.Command{
	Use:   "set-count",
	Short: "Set how many copies of a unit are fielded",
	Long:  `Set the quantity of the unit at --index. A count of 0 keeps the unit in the list but out of the totals.`,
	RunE:  runSetCount,
}

func init() {
	createCmd.Flags().StringVar(&armyName, "name", "", "Army name")
	createCmd.Flags().IntVar(&gameSize, "game-size", 0, "Points limit (server default when 0)")
	createCmd.Flags().StringVar(&filePath, "file", "", "Army file to seed the unit list")

	getCmd.Flags().StringVar(&armyID, "army-id", "", "Army ID (required)")
	getCmd.Flags().IntVar(&gameSize, "game-size", 0, "Rate against another points limit")
	_ = getCmd.MarkFlagRequired("army-id") // nolint:errcheck // safe to ignore in init

	deleteCmd.Flags().StringVar(&armyID, "army-id", "", "Army ID (required)")
	_ = deleteCmd.MarkFlagRequired("army-id") // nolint:errcheck // safe to ignore in init

	setCountCmd.Flags().StringVar(&armyID, "army-id", "", "Army ID (required)")
	setCountCmd.Flags().IntVar(&unitIndex, "index", 0, "Unit index")
	setCountCmd.Flags().IntVar(&unitCount, "count", 1, "Quantity")
	_ = setCountCmd.MarkFlagRequired("army-id") // nolint:errcheck // safe to ignore in init
}

func runCreate(_ *cobra.Command, _ []string) error {
	req := map[string]any{
		v1alpha1.KeyName:     armyName,
		v1alpha1.KeyGameSize: gameSize,
	}
	if filePath != "" {
		units, err := readUnits(filePath)
		if err != nil {
			return err
		}
		list, err := unitsValue(units)
		if err != nil {
			return err
		}
		req[v1alpha1.KeyUnits] = list
	}

	var reply armyReply
	if err := call(v1alpha1.MethodCreateArmy, req, &reply); err != nil {
		return err
	}
	return printArmy(&reply)
}

func runGet(_ *cobra.Command, _ []string) error {
	var reply armyReply
	if err := call(v1alpha1.MethodScoreArmy, map[string]any{
		v1alpha1.KeyArmyID:   armyID,
		v1alpha1.KeyGameSize: gameSize,
	}, &reply); err != nil {
		return err
	}
	return printArmy(&reply)
}

func runList(_ *cobra.Command, _ []string) error {
	var reply struct {
		Armies []armySummary `json:"armies"`
	}
	if err := call(v1alpha1.MethodListArmies, map[string]any{}, &reply); err != nil {
		return err
	}

	fmt.Printf("Found %d armies:\n\n", len(reply.Armies))
	for _, a := range reply.Armies {
		fmt.Printf("%s  %s\n", a.Army.ID, a.Army.Name)
		fmt.Printf("   %d / %d pts, %d units\n", a.Score.TotalPoints, a.Army.GameSize, len(a.Army.Units))
		fmt.Printf("   offense %.1f (%s)  defense %.1f (%s)  tactical %.1f (%s)\n",
			a.Score.TotalOffense, a.Assessment.Offense,
			a.Score.TotalDefense, a.Assessment.Defense,
			a.Score.TotalTactical, a.Assessment.Tactical)
	}
	return nil
}

func runDelete(_ *cobra.Command, _ []string) error {
	if err := call(v1alpha1.MethodDeleteArmy, map[string]any{v1alpha1.KeyArmyID: armyID}, nil); err != nil {
		return err
	}
	fmt.Printf("Deleted army %s\n", armyID)
	return nil
}

func runSetCount(_ *cobra.Command, _ []string) error {
	var reply armyReply
	if err := call(v1alpha1.MethodSetUnitQuantity, map[string]any{
		v1alpha1.KeyArmyID:   armyID,
		v1alpha1.KeyIndex:    unitIndex,
		v1alpha1.KeyQuantity: unitCount,
	}, &reply); err != nil {
		return err
	}
	return printArmy(&reply)
}
