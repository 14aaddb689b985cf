package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "smartedit_store_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	db, err := Open(filepath.Join(tmpDir, "nested", "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestWordStore_AddListRemove(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewWordStore(db)

	added, err := store.Add(ctx, "  goroutine ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !added {
		t.Error("expected first add to report added")
	}

	added, err = store.Add(ctx, "goroutine")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added {
		t.Error("expected duplicate add to report not added")
	}

	if _, err := store.Add(ctx, "defer"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	words, err := store.Words(ctx)
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if len(words) != 2 || words[0] != "defer" || words[1] != "goroutine" {
		t.Errorf("expected [defer goroutine], got %v", words)
	}

	removed, err := store.Remove(ctx, "defer")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("expected remove to report removed")
	}

	removed, _ = store.Remove(ctx, "defer")
	if removed {
		t.Error("expected second remove to report not removed")
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].AddedAt.IsZero() {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestWordStore_RejectsEmpty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := NewWordStore(db).Add(context.Background(), "   "); err == nil {
		t.Error("expected error for empty word")
	}
}

func TestRecentStore_Order(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewRecentStore(db)
	now := time.Now()

	if err := store.touchAt(ctx, "/a.txt", 10, now.Add(-3*time.Minute)); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	if err := store.touchAt(ctx, "/b.txt", 20, now.Add(-2*time.Minute)); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	if err := store.touchAt(ctx, "/a.txt", 15, now.Add(-1*time.Minute)); err != nil {
		t.Fatalf("touch failed: %v", err)
	}

	files, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "/a.txt" || files[0].Size != 15 {
		t.Errorf("expected /a.txt (15 bytes) first, got %+v", files[0])
	}
	if files[1].Path != "/b.txt" {
		t.Errorf("expected /b.txt second, got %+v", files[1])
	}
}

func TestRecentStore_Bounded(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewRecentStore(db)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < maxRecentFiles+5; i++ {
		path := fmt.Sprintf("/f%03d.txt", i)
		if err := store.touchAt(ctx, path, int64(i), base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("touch failed: %v", err)
		}
	}

	files, err := store.Recent(ctx, 1000)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(files) != maxRecentFiles {
		t.Errorf("expected %d files, got %d", maxRecentFiles, len(files))
	}
	if files[0].Path != fmt.Sprintf("/f%03d.txt", maxRecentFiles+4) {
		t.Errorf("newest file missing, got %s", files[0].Path)
	}
}
