package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
)

// progressRepository implements ports.ProgressRepository on the kv table.
type progressRepository struct {
	kv *kvStore
}

// newProgressRepository creates a new progress repository.
func newProgressRepository(kv *kvStore) ports.ProgressRepository {
	return &progressRepository{kv: kv}
}

// Load returns the stored progress, or nil if none was saved.
func (r *progressRepository) Load(ctx context.Context) (*domain.Progress, error) {
	raw, ok, err := r.kv.get(ctx, ports.ProgressKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return decodeProgress(raw)
}

// Save replaces the stored progress.
func (r *progressRepository) Save(ctx context.Context, progress domain.Progress) error {
	if progress.Completed == nil {
		progress.Completed = []string{}
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	return r.kv.put(ctx, ports.ProgressKey, string(data))
}

// decodeProgress reads each field on its own so that one bad field does
// not throw away the other.
func decodeProgress(raw string) (*domain.Progress, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: not a JSON object", domain.ErrCorruptProgress)
	}

	p := &domain.Progress{Completed: []string{}}

	var items []json.RawMessage
	if data, ok := fields["completed"]; ok && json.Unmarshal(data, &items) == nil {
		for _, item := range items {
			var id *string
			if json.Unmarshal(item, &id) == nil && id != nil {
				p.Completed = append(p.Completed, *id)
			}
		}
	}

	var index float64
	if data, ok := fields["currentIndex"]; ok && json.Unmarshal(data, &index) == nil {
		// Out-of-range integers saturate so Progress.Clamp pins them to an end.
		if index == math.Trunc(index) {
			p.CurrentIndex = int(max(math.MinInt32, min(index, math.MaxInt32)))
		}
	}

	return p, nil
}
