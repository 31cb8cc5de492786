package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// SQL is a Store backed by the documents table of a SQLite or PostgreSQL
// database.
type SQL struct {
	DB *db.DB
}

// OpenSQL opens the database and ensures its schema.
func OpenSQL(driver, dsn string) (*SQL, error) {
	database, err := db.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, err
	}
	return &SQL{DB: database}, nil
}

func (s *SQL) Append(ctx context.Context, collection string, rec model.Record) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", storeError(OpAppend, collection, fmt.Errorf("encoding record: %w", err))
	}

	key, err := NewKey()
	if err != nil {
		return "", storeError(OpAppend, collection, err)
	}

	if err := store.AppendDocument(ctx, s.DB, collection, key, data); err != nil {
		return "", storeError(OpAppend, collection, err)
	}
	return key, nil
}

func (s *SQL) ReadAll(ctx context.Context, collection string) (map[string]model.Record, error) {
	docs, err := store.ListDocuments(ctx, s.DB, collection)
	if err != nil {
		return nil, storeError(OpReadAll, collection, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	out := make(map[string]model.Record, len(docs))
	for _, doc := range docs {
		var rec model.Record
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			return nil, storeError(OpReadAll, collection, fmt.Errorf("decoding document %s: %w", doc.Key, err))
		}
		out[doc.Key] = rec
	}
	return out, nil
}

// SessionSecret returns the session secret persisted in the database.
func (s *SQL) SessionSecret(ctx context.Context) (string, error) {
	return store.GetSessionSecret(ctx, s.DB)
}

func (s *SQL) Close() error {
	return s.DB.Close()
}
