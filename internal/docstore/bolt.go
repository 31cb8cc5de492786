package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/erazemk/garderoba/internal/model"
)

// Bolt is a Store kept in a single bolt database file, one bucket per
// collection.
type Bolt struct {
	DB *bolt.DB
}

// OpenBolt opens or creates the database file at path.
func OpenBolt(path string) (*Bolt, error) {
	database, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}
	return &Bolt{DB: database}, nil
}

func (b *Bolt) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	if err := validCollection(collection); err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	value, err := json.Marshal(rec)
	if err != nil {
		return "", storeError(OpAppend, collection, fmt.Errorf("encoding record: %w", err))
	}

	key, err := NewKey()
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	err = b.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	return key, nil
}

func (b *Bolt) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}

	var out map[string]model.Record
	err := b.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var rec model.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decoding document %s: %w", k, err)
			}
			if out == nil {
				out = make(map[string]model.Record)
			}
			out[string(k)] = rec
			return nil
		})
	})
	if err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}
	return out, nil
}

func (b *Bolt) Close() error {
	return b.DB.Close()
}
