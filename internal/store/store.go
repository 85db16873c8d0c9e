// Package store is a self-hosted generic record store: named collections
// of schemaless JSON documents keyed by opaque string ids, with optional
// JSON-file persistence. It implements the store contract the API
// consumes (POST assigns ids, PUT replaces, PATCH merges) so the system
// runs end to end without an external service.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// ErrIDConflict is returned when a create supplies an id that already
// exists in the collection.
var ErrIDConflict = errors.New("id already exists")

// Document is one schemaless record.
type Document = map[string]any

type collection struct {
	order []string // insertion order, preserved by List
	docs  map[string]Document
}

// Store holds the collections. All operations serialize on one mutex;
// the store is the single writer the clients assume.
type Store struct {
	mu          sync.Mutex
	file        string // empty = in-memory only
	collections map[string]*collection
	names       []string
}

// New creates a store with the given collections, loading the dataset
// from file when it exists. An empty file path keeps the store in
// memory only.
func New(file string, names ...string) (*Store, error) {
	s := &Store{
		file:        file,
		collections: make(map[string]*collection, len(names)),
		names:       names,
	}
	for _, name := range names {
		s.collections[name] = &collection{docs: map[string]Document{}}
	}
	if file == "" {
		return s, nil
	}
	raw, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", file, err)
	}
	var dataset map[string][]Document
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", file, err)
	}
	for name, docs := range dataset {
		col, ok := s.collections[name]
		if !ok {
			col = &collection{docs: map[string]Document{}}
			s.collections[name] = col
			s.names = append(s.names, name)
		}
		for _, doc := range docs {
			id, _ := doc["id"].(string)
			if id == "" {
				id = uuid.NewString()
				doc["id"] = id
			}
			col.docs[id] = doc
			col.order = append(col.order, id)
		}
	}
	return s, nil
}

// Has reports whether the collection exists.
func (s *Store) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.collections[name]
	return ok
}

// List returns copies of the collection's documents in insertion order.
// Returned documents never alias store state; callers may hold and read
// them while other requests mutate the collection.
func (s *Store) List(name string) ([]Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	out := make([]Document, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, cloneDoc(col.docs[id]))
	}
	return out, true
}

// Get returns a copy of one document.
func (s *Store) Get(name, id string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	doc, ok := col.docs[id]
	if !ok {
		return nil, false
	}
	return cloneDoc(doc), true
}

// Create inserts a document, assigning an opaque id unless the caller
// supplied one. Supplied ids that collide fail with ErrIDConflict.
func (s *Store) Create(name string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("store: unknown collection %q", name)
	}
	id, _ := doc["id"].(string)
	if id == "" {
		id = uuid.NewString()
	} else if _, exists := col.docs[id]; exists {
		return nil, ErrIDConflict
	}
	doc["id"] = id
	col.docs[id] = cloneDoc(doc)
	col.order = append(col.order, id)
	return doc, s.persistLocked()
}

// Replace overwrites the document wholesale, keeping its id. The second
// return is false when the document does not exist.
func (s *Store) Replace(name, id string, doc Document) (Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, false, nil
	}
	if _, exists := col.docs[id]; !exists {
		return nil, false, nil
	}
	doc["id"] = id
	col.docs[id] = cloneDoc(doc)
	return doc, true, s.persistLocked()
}

// Merge shallow-merges fields into the document. The id field cannot be
// overwritten.
func (s *Store) Merge(name, id string, fields Document) (Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, false, nil
	}
	doc, exists := col.docs[id]
	if !exists {
		return nil, false, nil
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		doc[k] = cloneValue(v)
	}
	return cloneDoc(doc), true, s.persistLocked()
}

// Delete removes the document. The first return is false when it did
// not exist.
func (s *Store) Delete(name, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return false, nil
	}
	if _, exists := col.docs[id]; !exists {
		return false, nil
	}
	delete(col.docs, id)
	for i, oid := range col.order {
		if oid == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return true, s.persistLocked()
}

// cloneDoc deep-copies a document so no map or slice is shared between
// store state and callers. Handlers serialize responses after the mutex
// is released; sharing would race with concurrent merges.
func cloneDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the JSON value shapes a decoded document can
// hold (maps, slices, scalars).
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneDoc(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// persistLocked writes the whole dataset to the backing file. Caller
// holds the mutex.
func (s *Store) persistLocked() error {
	if s.file == "" {
		return nil
	}
	dataset := make(map[string][]Document, len(s.names))
	for _, name := range s.names {
		col := s.collections[name]
		docs := make([]Document, 0, len(col.order))
		for _, id := range col.order {
			docs = append(docs, col.docs[id])
		}
		dataset[name] = docs
	}
	raw, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode dataset: %w", err)
	}
	if err := os.WriteFile(s.file, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.file, err)
	}
	return nil
}
