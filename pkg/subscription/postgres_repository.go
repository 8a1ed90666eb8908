package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Store(ctx context.Context, key string, s Subscription) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal subscription: %w", err)
	}

	query := `INSERT INTO subscription (key, payload, updated_at)
				VALUES ($1, $2, now())
				ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, key, payload); err != nil {
		err = fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepository) Load(ctx context.Context, key string) (Subscription, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM subscription WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Subscription{}, ErrSubscriptionNotFound
		}
		return Subscription{}, fmt.Errorf("could not execute query: %w", err)
	}

	var s Subscription
	if err := json.Unmarshal(payload, &s); err != nil {
		return Subscription{}, fmt.Errorf("could not decode subscription: %w", err)
	}
	return s, nil
}
