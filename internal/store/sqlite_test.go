package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newRecord(t *testing.T, subject curriculum.Subject, topic string, answer attempt.Option) *attempt.Record {
	t.Helper()
	rec, err := attempt.New(
		"mcq-1",
		"Which cells produce surfactant?",
		attempt.Options{A: "Type I pneumocytes", B: "Type II pneumocytes", C: "Clara cells", D: "Goblet cells"},
		attempt.OptionB,
		"Type II pneumocytes secrete pulmonary surfactant.",
		answer, subject, topic,
	)
	if err != nil {
		t.Fatalf("failed to build record: %v", err)
	}
	return rec
}

func TestAppendAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AppendAttempt(ctx, "user-1", newRecord(t, curriculum.SubjectPhysiology, "Respiratory System", attempt.OptionB))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	records, err := s.ListAttemptsByOwner(ctx, "user-1", store.ListFilter{}, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.ID != id {
		t.Errorf("expected id %q, got %q", id, got.ID)
	}
	if got.OwnerID != "user-1" {
		t.Errorf("expected owner user-1, got %q", got.OwnerID)
	}
	if !got.IsCorrect {
		t.Error("expected stored record to keep derived IsCorrect")
	}
	if got.Options.B != "Type II pneumocytes" {
		t.Errorf("options snapshot not persisted: %+v", got.Options)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected store-assigned timestamp")
	}
}

func TestAppend_RejectsMalformedRecord(t *testing.T) {
	s := newTestStore(t)

	rec := newRecord(t, curriculum.SubjectPhysiology, "Blood", attempt.OptionA)
	rec.UserAnswer = "Z"

	_, err := s.AppendAttempt(context.Background(), "user-1", rec)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *attempt.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	records, err := s.ListAttemptsByOwner(context.Background(), "user-1", store.ListFilter{}, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Error("rejected write must have no side effect")
	}
}

func TestList_NewestFirstAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.AppendAttempt(ctx, "user-1", newRecord(t, curriculum.SubjectAnatomy, "Thorax", attempt.OptionA))
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		ids = append(ids, id)
	}

	records, err := s.ListAttemptsByOwner(ctx, "user-1", store.ListFilter{}, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(records))
	}
	// Newest first: the last three appended, in reverse append order.
	for i := 0; i < 3; i++ {
		want := ids[len(ids)-1-i]
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, want)
		}
	}
}

func TestList_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustAppend := func(rec *attempt.Record) {
		t.Helper()
		if _, err := s.AppendAttempt(ctx, "user-1", rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	mustAppend(newRecord(t, curriculum.SubjectPhysiology, "Blood", attempt.OptionB))     // correct
	mustAppend(newRecord(t, curriculum.SubjectPhysiology, "Blood", attempt.OptionA))     // incorrect
	mustAppend(newRecord(t, curriculum.SubjectAnatomy, "Abdomen", attempt.OptionC))      // incorrect
	mustAppend(newRecord(t, curriculum.SubjectBiochemistry, "Molecular Biology & Genetics", attempt.OptionB)) // correct

	physiology := curriculum.SubjectPhysiology
	records, err := s.ListAttemptsByOwner(ctx, "user-1", store.ListFilter{Subject: &physiology}, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 Physiology records, got %d", len(records))
	}

	wrong := false
	records, err = s.ListAttemptsByOwner(ctx, "user-1", store.ListFilter{Correct: &wrong}, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 incorrect records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.IsCorrect {
			t.Errorf("correct record leaked through incorrect filter: %+v", rec.ID)
		}
	}

	records, err = s.ListAttemptsByOwner(ctx, "user-1", store.ListFilter{Subject: &physiology, Correct: &wrong}, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 incorrect Physiology record, got %d", len(records))
	}
}

func TestOwnerIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Interleave writes from two owners.
	for i := 0; i < 3; i++ {
		if _, err := s.AppendAttempt(ctx, "alice", newRecord(t, curriculum.SubjectPhysiology, "Blood", attempt.OptionB)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if _, err := s.AppendAttempt(ctx, "bob", newRecord(t, curriculum.SubjectAnatomy, "Thorax", attempt.OptionA)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	for _, owner := range []string{"alice", "bob"} {
		records, err := s.ListAttemptsByOwner(ctx, owner, store.ListFilter{}, 0)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(records) != 3 {
			t.Errorf("expected 3 records for %s, got %d", owner, len(records))
		}
		for _, rec := range records {
			if rec.OwnerID != owner {
				t.Errorf("record %s owned by %q returned for %q", rec.ID, rec.OwnerID, owner)
			}
		}
	}

	deleted, err := s.DeleteAttemptsByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}

	records, _ := s.ListAttemptsByOwner(ctx, "alice", store.ListFilter{}, 0)
	if len(records) != 0 {
		t.Errorf("expected alice's log cleared, got %d records", len(records))
	}
	records, _ = s.ListAttemptsByOwner(ctx, "bob", store.ListFilter{}, 0)
	if len(records) != 3 {
		t.Errorf("expected bob's log untouched, got %d records", len(records))
	}
}

func TestListAll_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	topics := []string{"Blood", "Respiratory System", "Cardiovascular System"}
	for _, topic := range topics {
		if _, err := s.AppendAttempt(ctx, "user-1", newRecord(t, curriculum.SubjectPhysiology, topic, attempt.OptionB)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	records, err := s.ListAllAttemptsByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, topic := range topics {
		if records[i].Topic != topic {
			t.Errorf("records[%d].Topic = %q, want %q (insertion order)", i, records[i].Topic, topic)
		}
	}
}

func TestDelete_EmptyLog(t *testing.T) {
	s := newTestStore(t)

	deleted, err := s.DeleteAttemptsByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
}
