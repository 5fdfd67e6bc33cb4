package redis

import (
	"context"
	"strconv"
	"time"

	redisclient "github.com/breightend/mykonos-inventory/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	displayedStockKeyPrefix = "stock:web:"
	idempotencyKeyPrefix    = "reserve:idem:"
	idempotencyKeyTTL       = 24 * time.Hour
)

// Repository mirrors the displayed-stock hint into Redis for the
// storefront and fences duplicate reserve requests. Everything here is
// best-effort: a nil client (Redis disabled) degrades to no-ops.
type Repository interface {
	SetDisplayedStock(ctx context.Context, variantID uint64, quantity int64) error
	GetDisplayedStock(ctx context.Context, variantID uint64) (int64, bool, error)
	DeleteDisplayedStock(ctx context.Context, variantID uint64) error
	SetIdempotency(ctx context.Context, key string) (bool, error)
}

type repo struct{}

func NewRepository() Repository {
	return &repo{}
}

func stockKey(variantID uint64) string {
	return displayedStockKeyPrefix + strconv.FormatUint(variantID, 10)
}

func (r *repo) SetDisplayedStock(ctx context.Context, variantID uint64, quantity int64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, stockKey(variantID), quantity, 0).Err()
}

func (r *repo) GetDisplayedStock(ctx context.Context, variantID uint64) (int64, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, false, nil
	}
	val, err := client.Get(ctx, stockKey(variantID)).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

func (r *repo) DeleteDisplayedStock(ctx context.Context, variantID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, stockKey(variantID)).Err()
}

// SetIdempotency returns false when the key was already claimed by an
// earlier reserve request.
func (r *repo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, idempotencyKeyPrefix+key, 1, idempotencyKeyTTL).Result()
}
