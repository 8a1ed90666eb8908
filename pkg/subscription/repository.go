package subscription

import "context"

// Repository keeps at most one subscription per key. Store overwrites.
type Repository interface {
	Store(ctx context.Context, key string, s Subscription) error
	Load(ctx context.Context, key string) (Subscription, error)
}
