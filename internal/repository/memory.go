package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

type memoryResult struct {
	mu      sync.RWMutex
	results map[string]*entity.Result
	order   []string
	keep    int
}

// NewMemoryResultRepository keeps results for the life of the process.
func NewMemoryResultRepository(keep int) ResultRepository {
	return &memoryResult{
		results: make(map[string]*entity.Result),
		keep:    keep,
	}
}

func (that *memoryResult) Save(_ context.Context, result *entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *result
	that.results[result.ID] = &stored
	that.order = append([]string{result.ID}, that.order...)

	if that.keep > 0 && len(that.order) > that.keep {
		for _, id := range that.order[that.keep:] {
			delete(that.results, id)
		}
		that.order = that.order[:that.keep]
	}

	return nil
}

func (that *memoryResult) GetByID(_ context.Context, id string) (*entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	result, ok := that.results[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrResultNotFound, id)
	}

	found := *result

	return &found, nil
}

func (that *memoryResult) ListRecent(_ context.Context, limit int) ([]*entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if limit < 0 {
		limit = 0
	}

	ids := that.order[:min(limit, len(that.order))]
	results := make([]*entity.Result, 0, len(ids))
	for _, id := range ids {
		found := *that.results[id]
		results = append(results, &found)
	}

	return results, nil
}
