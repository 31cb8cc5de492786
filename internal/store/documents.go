package store

import (
	"context"
	"fmt"
	"time"

	"github.com/erazemk/garderoba/internal/db"
)

// Document is a stored record in its encoded form.
type Document struct {
	Key       string
	Data      []byte
	CreatedAt time.Time
}

// AppendDocument inserts a new document under the given key.
func AppendDocument(ctx context.Context, database *db.DB, collection, key string, data []byte) error {
	_, err := database.ExecContext(ctx,
		database.Rebind(`INSERT INTO documents (collection, key, data, created_at) VALUES (?, ?, ?, ?)`),
		collection, key, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending document: %w", err)
	}
	return nil
}

// ListDocuments returns every document of a collection ordered by key.
// An empty or unknown collection yields no documents and no error.
func ListDocuments(ctx context.Context, database *db.DB, collection string) ([]Document, error) {
	rows, err := database.QueryContext(ctx,
		database.Rebind(`SELECT key, data, created_at FROM documents WHERE collection = ? ORDER BY key`),
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var data, createdAt string
		if err := rows.Scan(&doc.Key, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Data = []byte(data)
		doc.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
