package subscription

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const boltBucket = "kasa"

type BoltRepository struct {
	db     *bolt.DB
	bucket []byte
}

// NewBoltRepository creates the bucket if needed.
func NewBoltRepository(db *bolt.DB) (*BoltRepository, error) {
	r := &BoltRepository{db: db, bucket: []byte(boltBucket)}
	err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(r.bucket); err != nil {
			return fmt.Errorf("unable to create bucket %s: %w", r.bucket, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *BoltRepository) Store(ctx context.Context, key string, s Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal subscription: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		if b == nil {
			return fmt.Errorf("invalid bucket %s", r.bucket)
		}
		return b.Put([]byte(key), entry)
	})
	if err != nil {
		err = fmt.Errorf("could not store subscription under %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *BoltRepository) Load(ctx context.Context, key string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}

	var s Subscription
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		if b == nil {
			return fmt.Errorf("invalid bucket %s", r.bucket)
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return ErrSubscriptionNotFound
		}
		return json.Unmarshal(raw, &s)
	})
	if err != nil {
		return Subscription{}, err
	}
	return s, nil
}
