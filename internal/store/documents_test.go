package store

import (
	"context"
	"testing"

	"github.com/erazemk/garderoba/internal/db"
)

func TestAppendAndListDocuments(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := AppendDocument(ctx, database, "clothes", "k2", []byte(`{"color":"blue"}`)); err != nil {
		t.Fatalf("AppendDocument: %v", err)
	}
	if err := AppendDocument(ctx, database, "clothes", "k1", []byte(`{"color":"red"}`)); err != nil {
		t.Fatalf("AppendDocument: %v", err)
	}
	AppendDocument(ctx, database, "footwear", "k3", []byte(`{"color":"black"}`))

	docs, err := ListDocuments(ctx, database, "clothes")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Key != "k1" || docs[1].Key != "k2" {
		t.Errorf("expected documents ordered by key, got %q, %q", docs[0].Key, docs[1].Key)
	}
	if string(docs[1].Data) != `{"color":"blue"}` {
		t.Errorf("unexpected data %q", docs[1].Data)
	}
	if docs[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestListDocumentsEmptyCollection(t *testing.T) {
	database := db.NewTestDB(t)

	docs, err := ListDocuments(context.Background(), database, "accessories")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestAppendDocumentDuplicateKeyFails(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AppendDocument(ctx, database, "clothes", "k1", []byte(`{}`))
	if err := AppendDocument(ctx, database, "clothes", "k1", []byte(`{}`)); err == nil {
		t.Error("expected error appending a duplicate key")
	}

	docs, _ := ListDocuments(ctx, database, "clothes")
	if len(docs) != 1 {
		t.Errorf("expected 1 document, got %d", len(docs))
	}
}
