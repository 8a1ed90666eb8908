package subscription

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/kasa/kasa-web/internal/database"
	"github.com/kasa/kasa-web/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func setupBoltRepository(t *testing.T) (*BoltRepository, *bolt.DB) {
	t.Helper()
	db, err := database.OpenBolt(filepath.Join(t.TempDir(), "data", "kasa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewBoltRepository(db)
	require.NoError(t, err)
	return repo, db
}

func testSubscription(email string) Subscription {
	return Subscription{
		Email:              email,
		EventNotifications: true,
		WeeklyDigest:       false,
		Timestamp:          time.Date(2025, time.October, 3, 9, 30, 0, 0, time.UTC),
	}
}

func TestBoltRepository_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	repo, db := setupBoltRepository(t)

	require.NoError(t, repo.Store(ctx, testKey, testSubscription("first@kent.edu")))
	require.NoError(t, repo.Store(ctx, testKey, testSubscription("second@kent.edu")))

	loaded, err := repo.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, testSubscription("second@kent.edu"), loaded)

	// the stored value is the plain JSON object
	err = db.View(func(tx *bolt.Tx) error {
		var raw map[string]any
		require.NoError(t, json.Unmarshal(tx.Bucket([]byte(boltBucket)).Get([]byte(testKey)), &raw))
		assert.Equal(t, "second@kent.edu", raw["email"])
		assert.Equal(t, true, raw["eventNotifications"])
		assert.Equal(t, false, raw["weeklyDigest"])
		assert.Equal(t, "2025-10-03T09:30:00Z", raw["timestamp"])
		assert.Equal(t, 1, tx.Bucket([]byte(boltBucket)).Stats().KeyN)
		return nil
	})
	require.NoError(t, err)
}

func TestBoltRepository_LoadMissing(t *testing.T) {
	repo, _ := setupBoltRepository(t)

	_, err := repo.Load(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestBoltRepository_CancelledContext(t *testing.T) {
	repo, _ := setupBoltRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Store(ctx, testKey, testSubscription("first@kent.edu"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPostgresRepository_StoreAndLoad(t *testing.T) {
	pool, _ := test_utils.StartPostgres(t)
	ctx := context.Background()
	repo := NewPostgresRepository(pool)

	_, err := repo.Load(ctx, testKey)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	require.NoError(t, repo.Store(ctx, testKey, testSubscription("first@kent.edu")))
	require.NoError(t, repo.Store(ctx, testKey, testSubscription("second@kent.edu")))

	loaded, err := repo.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, "second@kent.edu", loaded.Email)
	assert.True(t, loaded.Timestamp.Equal(testSubscription("").Timestamp))

	var rows int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM subscription").Scan(&rows))
	assert.Equal(t, 1, rows)
}
