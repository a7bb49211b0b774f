// ABOUTME: Tests for script history persistence
// ABOUTME: Verifies save, round-trip, listing order, and deletion
package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/harper/scriptwriter/internal/models"
)

func testRecord(id, personaID string, createdAt time.Time) *models.ScriptRecord {
	return &models.ScriptRecord{
		ID:        id,
		PersonaID: personaID,
		Request:   models.ContentRequest{Topic: "morning routines", Duration: 30},
		Text:      "HOOK: test script",
		Scores: models.ScoreBreakdown{
			Quality:         92.5,
			Personalization: 15,
			Viral:           71.2,
			ViralGrade:      "C",
			ViralDimensions: map[string]float64{"hook_strength": 18},
		},
		Polished:  true,
		Attempts:  3,
		CreatedAt: createdAt,
	}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewHistoryStore(db)
	ctx := context.Background()

	record := testRecord("rec-1", "p1", time.Now())
	if err := store.Save(ctx, record); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded == nil {
		t.Fatal("record not found after save")
	}
	if loaded.Request.Topic != "morning routines" || loaded.Request.Duration != 30 {
		t.Errorf("request round-trip failed: %+v", loaded.Request)
	}
	if loaded.Scores.Quality != 92.5 || loaded.Scores.ViralGrade != "C" {
		t.Errorf("scores round-trip failed: %+v", loaded.Scores)
	}
	if loaded.Scores.ViralDimensions["hook_strength"] != 18 {
		t.Errorf("viral dimensions round-trip failed: %v", loaded.Scores.ViralDimensions)
	}
	if !loaded.Polished || loaded.Attempts != 3 {
		t.Errorf("flags round-trip failed: polished=%v attempts=%d", loaded.Polished, loaded.Attempts)
	}
}

func TestHistoryStore_GetMissing(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	loaded, err := NewHistoryStore(db).GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded != nil {
		t.Error("missing record should return nil")
	}
}

func TestHistoryStore_ListOrderAndFilter(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewHistoryStore(db)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		personaID := "p1"
		if i == 2 {
			personaID = "p2"
		}
		record := testRecord(fmt.Sprintf("rec-%d", i), personaID, base.Add(time.Duration(i)*time.Hour))
		if err := store.Save(ctx, record); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	all, err := store.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	if all[0].ID != "rec-2" || all[2].ID != "rec-0" {
		t.Errorf("records not newest-first: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}

	filtered, err := store.List(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("got %d p1 records, want 2", len(filtered))
	}

	limited, err := store.List(ctx, "", 1)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d records with limit 1", len(limited))
	}
}

func TestHistoryStore_Delete(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewHistoryStore(db)
	ctx := context.Background()

	if err := store.Save(ctx, testRecord("rec-1", "p1", time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "rec-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "rec-1"); err == nil {
		t.Error("deleting twice should fail")
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}
