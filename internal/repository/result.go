package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
}

type dbResult struct {
	client *redis.Client
	keep   int64
}

// NewResultRepository stores results as JSON and keeps the ids of the latest keep results in a list.
func NewResultRepository(client *redis.Client, keep int) ResultRepository {
	return &dbResult{
		client: client,
		keep:   int64(keep),
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LPush(ctx, resultsListKey, result.ID)
		if that.keep > 0 {
			pipe.LTrim(ctx, resultsListKey, 0, that.keep-1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrResultNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListRecent returns up to limit results, newest first. Ids whose record expired are skipped.
func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return []*entity.Result{}, nil
	}

	ids, err := that.client.LRange(ctx, resultsListKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list result ids: %w", err)
	}

	results := make([]*entity.Result, 0, len(ids))
	for _, id := range ids {
		result, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrResultNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
