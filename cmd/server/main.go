// Package main is the entry point for the army-rater server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "army-rater",
	Short: "Army list rating service",
	Long: `army-rater scores tabletop army lists on offense, defense and tactical
value and rates them against thresholds scaled to the game size.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
