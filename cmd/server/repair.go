package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/army-rater/internal/redis"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
)

var (
	repairRedisAddr string
	repairDryRun    bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Check stored armies in redis and rebuild the index",
	Long: `Scan every army stored in redis. Values that no longer decode are deleted
and the army index is rebuilt from the keys that remain.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairRedisAddr, "redis-addr", "localhost:6379", "Redis address")
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Report problems without fixing them")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := redis.NewClient(repairRedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := redis.Ping(ctx, client); err != nil {
		return err
	}

	out, err := armies.RepairRedis(ctx, client, armies.RepairInput{DryRun: repairDryRun})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d armies in %s\n", out.Checked, repairRedisAddr)
	for _, key := range out.Corrupted {
		fmt.Fprintf(w, "  corrupted: %s\n", key)
	}
	for _, id := range out.Reindexed {
		fmt.Fprintf(w, "  missing from index: %s\n", id)
	}
	for _, id := range out.Dropped {
		fmt.Fprintf(w, "  indexed without data: %s\n", id)
	}
	if repairDryRun {
		fmt.Fprintln(w, "Dry run, nothing changed")
	}
	return nil
}
