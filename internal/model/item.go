package model

import (
	"encoding/json"
	"maps"
	"sort"
)

// Record holds an item's field values keyed by field name.
type Record map[string]string

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Item is a persisted wardrobe item. ID is the key assigned by the document
// store; items are never updated or deleted once written.
type Item struct {
	ID       string
	Category Category
	Fields   Record
}

// Get returns the value of the named field.
func (i Item) Get(field string) string {
	return i.Fields[field]
}

// MarshalJSON encodes the item as a flat object: its fields plus "id".
func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(i.Fields)+1)
	for k, v := range i.Fields {
		out[k] = v
	}
	out["id"] = i.ID
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat item object.
func (i *Item) UnmarshalJSON(data []byte) error {
	var in map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	i.ID = in["id"]
	delete(in, "id")
	i.Fields = Record(in)
	return nil
}

// ItemsFromSnapshot converts a collection snapshot into items ordered by key.
// Store keys sort in creation order, so the result is oldest first.
func ItemsFromSnapshot(c Category, snapshot map[string]Record) []Item {
	items := make([]Item, 0, len(snapshot))
	for key, rec := range snapshot {
		items = append(items, Item{ID: key, Category: c, Fields: rec.Clone()})
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items
}
