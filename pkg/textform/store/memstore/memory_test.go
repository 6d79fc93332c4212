package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/internalerr"
	"github.com/cognicore/textform/pkg/textform/store"
)

func record(id, hash string, format catalog.Format, at time.Time) store.Record {
	return store.Record{
		ID:         id,
		InputHash:  hash,
		Format:     format,
		Confidence: 72,
		Duration:   3 * time.Millisecond,
		CreatedAt:  at,
	}
}

func TestSaveAndGet(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	r := record("a1", "hash-1", catalog.FormatMeetingNotes, time.Now())
	if err := s.SaveRecord(ctx, r); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	got, err := s.GetRecord(ctx, "a1")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got.InputHash != "hash-1" || got.Format != catalog.FormatMeetingNotes {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, err := s.GetRecord(context.Background(), "nope")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetByHashPicksNewest(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Now()

	s.SaveRecord(ctx, record("old", "h", catalog.FormatTaskLists, base.Add(-time.Hour)))
	s.SaveRecord(ctx, record("new", "h", catalog.FormatTaskLists, base))

	got, found, err := s.GetByHash(ctx, "h")
	if err != nil || !found {
		t.Fatalf("GetByHash: found=%v err=%v", found, err)
	}
	if got.ID != "new" {
		t.Errorf("Expected the newest record, got %s", got.ID)
	}

	_, found, _ = s.GetByHash(ctx, "missing")
	if found {
		t.Error("Missing hash should not be found")
	}
}

func TestListRecent(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"r1", "r2", "r3"} {
		s.SaveRecord(ctx, record(id, "h"+id, catalog.FormatJournalNotes, base.Add(time.Duration(i)*time.Minute)))
	}

	got, err := s.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].ID != "r3" || got[1].ID != "r2" {
		t.Errorf("Expected newest first, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestCountByFormat(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	s.SaveRecord(ctx, record("a", "h1", catalog.FormatMeetingNotes, now))
	s.SaveRecord(ctx, record("b", "h2", catalog.FormatMeetingNotes, now))
	s.SaveRecord(ctx, record("c", "h3", catalog.FormatStudyNotes, now))

	counts, err := s.CountByFormat(ctx)
	if err != nil {
		t.Fatalf("CountByFormat: %v", err)
	}
	if counts[catalog.FormatMeetingNotes] != 2 || counts[catalog.FormatStudyNotes] != 1 {
		t.Errorf("Counts wrong: %v", counts)
	}
}

func TestHashInputStability(t *testing.T) {
	a := store.HashInput("text", catalog.FormatTaskLists)
	b := store.HashInput("text", catalog.FormatTaskLists)
	c := store.HashInput("text", catalog.FormatStudyNotes)

	if a != b {
		t.Error("Same input should hash identically")
	}
	if a == c {
		t.Error("Different format hints should hash differently")
	}
}
