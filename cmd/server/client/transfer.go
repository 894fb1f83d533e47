package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

var (
	outPath      string
	exportFormat string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an army's units as JSON or YAML",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace an army's units with an exported file",
	Long:  `Replace an army's units with the contents of a JSON or YAML export. An invalid file leaves the army unchanged.`,
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVar(&armyID, "army-id", "", "Army ID (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json or yaml)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")
	_ = exportCmd.MarkFlagRequired("army-id") // nolint:errcheck // safe to ignore in init

	importCmd.Flags().StringVar(&armyID, "army-id", "", "Army ID (required)")
	importCmd.Flags().StringVar(&filePath, "file", "", "Army file (required)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format (detected from the file when empty)")
	_ = importCmd.MarkFlagRequired("army-id") // nolint:errcheck // safe to ignore in init
	_ = importCmd.MarkFlagRequired("file")    // nolint:errcheck // safe to ignore in init
}

func runExport(_ *cobra.Command, _ []string) error {
	var reply struct {
		Data   string `json:"data"`
		Format string `json:"format"`
	}
	if err := call(v1alpha1.MethodExportArmy, map[string]any{
		v1alpha1.KeyArmyID: armyID,
		v1alpha1.KeyFormat: exportFormat,
	}, &reply); err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(reply.Data)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(reply.Data), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Printf("Exported army %s to %s (%s)\n", armyID, outPath, reply.Format)
	return nil
}

func runImport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	req := map[string]any{
		v1alpha1.KeyArmyID: armyID,
		v1alpha1.KeyData:   string(data),
	}
	if importFormat == "" {
		importFormat = string(interchange.DetectFormat(filePath, data))
	}
	req[v1alpha1.KeyFormat] = importFormat

	var reply armyReply
	if err := call(v1alpha1.MethodImportArmy, req, &reply); err != nil {
		return err
	}
	return printArmy(&reply)
}
