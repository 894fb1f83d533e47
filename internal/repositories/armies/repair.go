package armies

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	redisclient "github.com/KirkDiggler/army-rater/internal/redis"
)

// RepairInput controls a repair pass
type RepairInput struct {
	// DryRun reports problems without changing anything
	DryRun bool
}

// RepairOutput summarises a repair pass. Every list is sorted.
type RepairOutput struct {
	Checked int
	// Corrupted keys hold values that no longer decode as an army
	Corrupted []string
	// Reindexed IDs had a stored army but were missing from the index
	Reindexed []string
	// Dropped IDs were indexed without a stored army
	Dropped []string
}

// RepairRedis scans every stored army, deletes values that no longer decode
// and rebuilds the ID index from what remains.
func RepairRedis(ctx context.Context, client redisclient.Client, input RepairInput) (*RepairOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	indexed, err := client.SMembers(ctx, armyIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read army index")
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	out := &RepairOutput{}
	stored := make(map[string]bool)

	iter := client.Scan(ctx, 0, armyKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == armyIndexKey {
			continue
		}
		out.Checked++

		id := strings.TrimPrefix(key, armyKeyPrefix)
		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redisclient.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var a army.Army
		if err := json.Unmarshal(data, &a); err != nil || a.ID != id {
			slog.WarnContext(ctx, "corrupted army value", "key", key)
			out.Corrupted = append(out.Corrupted, key)
			continue
		}

		stored[id] = true
		if !inIndex[id] {
			out.Reindexed = append(out.Reindexed, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan armies")
	}

	for _, id := range indexed {
		if !stored[id] {
			out.Dropped = append(out.Dropped, id)
		}
	}

	sort.Strings(out.Corrupted)
	sort.Strings(out.Reindexed)
	sort.Strings(out.Dropped)

	if input.DryRun {
		return out, nil
	}

	pipe := client.TxPipeline()
	for _, key := range out.Corrupted {
		pipe.Del(ctx, key)
	}
	for _, id := range out.Reindexed {
		pipe.SAdd(ctx, armyIndexKey, id)
	}
	for _, id := range out.Dropped {
		pipe.SRem(ctx, armyIndexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to apply repair")
	}

	slog.InfoContext(ctx, "army storage repaired",
		"checked", out.Checked,
		"corrupted", len(out.Corrupted),
		"reindexed", len(out.Reindexed),
		"dropped", len(out.Dropped))

	return out, nil
}
