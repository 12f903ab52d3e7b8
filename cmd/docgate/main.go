// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package main is the demonstration driver for the Docgate mediation chain.
//
// The driver assembles a chain of mediators around a document and walks the
// full capability sequence (describe, view, mutate, remove, view), printing
// each result or error verbatim. Role and actor identity are literal
// construction arguments below; configuration covers ambient concerns only:
//
//	DOCGATE_LOGGING_LEVEL=debug     verbose mediator logging
//	DOCGATE_CHAIN_ORDER=access,audit,lazy   alternate stacking
//	DOCGATE_DOCUMENT_DATA_DIR=/data/docgate  BadgerDB-backed content
//	DOCGATE_AUDIT_STORE=badger      persistent audit trail
//
// The default chain is audit outermost, so denied attempts always land in
// the audit trail. Stacking access outermost instead changes what gets
// observed, not what is allowed.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/docgate/docgate/internal/audit"
	"github.com/docgate/docgate/internal/authz"
	"github.com/docgate/docgate/internal/config"
	"github.com/docgate/docgate/internal/document"
	"github.com/docgate/docgate/internal/logging"
	"github.com/docgate/docgate/internal/mediator"
	"github.com/docgate/docgate/internal/storage"
)

// The demonstration scenario: alice edits doc-1. Literal by design; the
// driver takes no flags.
const (
	actorID    = "alice"
	actorRole  = authz.RoleEditor
	documentID = "doc-1"

	seedContent = "quarterly report draft"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	if err := run(context.Background(), cfg); err != nil {
		logging.Error().Err(err).Msg("Driver failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	order, err := mediator.ParseOrder(cfg.Chain.Order)
	if err != nil {
		return err
	}

	loader, cleanup, err := buildLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := authz.NewEnforcer(nil)
	if err != nil {
		return err
	}

	store, closeStore, err := buildAuditStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	recorder := audit.NewRecorder(store)

	res, err := mediator.Build(ctx, mediator.Spec{
		DocumentID: documentID,
		Order:      order,
		Loader:     loader,
		Role:       actorRole,
		Table:      table,
		Actor:      actorID,
		Recorder:   recorder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("chain: %s, actor: %s, role: %s\n\n", cfg.Chain.Order, actorID, actorRole)
	exercise(ctx, res)

	return printTrail(ctx, store)
}

// exercise walks the capability sequence, printing results and errors
// verbatim. Errors are part of the demonstration, not reasons to stop.
func exercise(ctx context.Context, res document.Resource) {
	fmt.Printf("describe  -> %s\n", res.Describe())

	if content, err := res.View(ctx); err != nil {
		fmt.Printf("view      -> error: %v\n", err)
	} else {
		fmt.Printf("view      -> %q\n", content)
	}

	if err := res.Mutate(ctx, "quarterly report, final"); err != nil {
		fmt.Printf("mutate    -> error: %v\n", err)
	} else {
		fmt.Printf("mutate    -> ok\n")
	}

	if err := res.Remove(ctx); err != nil {
		fmt.Printf("remove    -> error: %v\n", err)
	} else {
		fmt.Printf("remove    -> ok\n")
	}

	if content, err := res.View(ctx); err != nil {
		fmt.Printf("view      -> error: %v\n", err)
	} else {
		fmt.Printf("view      -> %q\n", content)
	}
}

// buildLoader selects the content source: a BadgerDB store seeded with the
// demonstration document, or the static in-process loader. Either way the
// configured delay simulates the expensive fetch.
func buildLoader(ctx context.Context, cfg *config.Config) (document.Loader, func(), error) {
	var inner document.Loader = document.StaticLoader{}
	cleanup := func() {}

	if cfg.Document.DataDir != "" {
		contentStore, err := storage.Open(cfg.Document.DataDir)
		if err != nil {
			return nil, nil, err
		}
		if err := contentStore.Put(ctx, documentID, seedContent); err != nil {
			_ = contentStore.Close()
			return nil, nil, err
		}
		inner = contentStore
		cleanup = func() {
			if err := contentStore.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing content store")
			}
		}
	}

	return &document.DelayedLoader{Delay: cfg.Document.LoadDelay, Next: inner}, cleanup, nil
}

// buildAuditStore selects the audit sink per configuration.
func buildAuditStore(cfg *config.Config) (audit.Store, func(), error) {
	switch cfg.Audit.Store {
	case "memory":
		return audit.NewMemoryStore(cfg.Audit.MaxEvents), func() {}, nil
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(cfg.Audit.DataDir).WithLogger(nil))
		if err != nil {
			return nil, nil, fmt.Errorf("open audit store: %w", err)
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing audit store")
			}
		}
		return audit.NewBadgerStore(db), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown audit store %q", cfg.Audit.Store)
	}
}

// printTrail prints the recorded audit events, most recent last.
func printTrail(ctx context.Context, store audit.Store) error {
	events, err := store.Query(ctx, audit.QueryFilter{})
	if err != nil {
		return fmt.Errorf("query audit trail: %w", err)
	}

	fmt.Printf("\naudit trail (%d events):\n", len(events))
	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]
		line := fmt.Sprintf("  %s  %-8s  %-8s  %s",
			event.Timestamp.Format("15:04:05.000"), event.Actor, event.Operation, event.Outcome)
		if event.ErrorKind != "" {
			line += " (" + event.ErrorKind + ")"
		}
		fmt.Println(line)
	}
	return nil
}
