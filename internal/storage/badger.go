// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package storage provides the BadgerDB-backed content store that feeds the
// document loader. It is the "real" source behind the simulated expensive
// fetch: the driver seeds it once, and lazy chains pull from it on first
// capability use.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefix for stored document records.
const documentKeyPrefix = "document:"

// ErrNoSuchDocument is returned when a document id has no stored content.
var ErrNoSuchDocument = errors.New("no such document")

// record is the stored form of a document's content.
type record struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ContentStore stores document content in BadgerDB and implements
// document.Loader for chain terminals.
type ContentStore struct {
	db *badger.DB
}

// Open opens (or creates) a content store at the given directory.
func Open(dir string) (*ContentStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open content store: %w", err)
	}
	return &ContentStore{db: db}, nil
}

// NewContentStore wraps an already-open BadgerDB.
func NewContentStore(db *badger.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Close closes the underlying database.
func (s *ContentStore) Close() error {
	return s.db.Close()
}

// Put stores content for a document id.
func (s *ContentStore) Put(ctx context.Context, id, content string) error {
	data, err := json.Marshal(record{ID: id, Content: content})
	if err != nil {
		return fmt.Errorf("marshal document record: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(documentKeyPrefix+id), data); err != nil {
			return fmt.Errorf("set document record: %w", err)
		}
		return nil
	})
}

// Load fetches content for a document id. Implements document.Loader.
func (s *ContentStore) Load(ctx context.Context, id string) (string, error) {
	var rec record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(documentKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNoSuchDocument, id)
		}
		if err != nil {
			return fmt.Errorf("get document record: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return "", err
	}
	return rec.Content, nil
}

// Delete removes stored content for a document id. Deleting a missing id is
// not an error.
func (s *ContentStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(documentKeyPrefix + id)); err != nil {
			return fmt.Errorf("delete document record: %w", err)
		}
		return nil
	})
}
