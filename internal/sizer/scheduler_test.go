package sizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

func TestScheduleDeliversOneResultPerFolder(t *testing.T) {
	tmp := t.TempDir()
	mustWriteSized(t, filepath.Join(tmp, "A", "one.bin"), 200)
	mustWriteSized(t, filepath.Join(tmp, "A", "two.bin"), 100)
	if err := os.MkdirAll(filepath.Join(tmp, "B"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	folders := []*model.Entry{
		{Name: "A", Path: filepath.Join(tmp, "A"), Kind: model.KindFolder, Size: model.SizePending},
		{Name: "B", Path: filepath.Join(tmp, "B"), Kind: model.KindFolder, Size: model.SizePending},
	}

	s := NewScheduler(2)
	results := make(map[string]int64)
	for r := range s.Schedule(context.Background(), folders) {
		if _, dup := results[r.Path]; dup {
			t.Fatalf("duplicate result for %s", r.Path)
		}
		results[r.Path] = r.Size
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if got := results[filepath.Join(tmp, "A")]; got != 300 {
		t.Errorf("A size = %d, want 300", got)
	}
	if got := results[filepath.Join(tmp, "B")]; got != 0 {
		t.Errorf("B size = %d, want 0", got)
	}
}

func TestScheduleMissingFolderPublishesZero(t *testing.T) {
	tmp := t.TempDir()
	mustWriteSized(t, filepath.Join(tmp, "ok", "f.bin"), 50)

	folders := []*model.Entry{
		{Name: "gone", Path: filepath.Join(tmp, "gone"), Kind: model.KindFolder},
		{Name: "ok", Path: filepath.Join(tmp, "ok"), Kind: model.KindFolder},
	}

	s := NewScheduler(2)
	results := make(map[string]int64)
	for r := range s.Schedule(context.Background(), folders) {
		results[r.Path] = r.Size
	}

	if len(results) != 2 {
		t.Fatalf("one folder's failure must not abort the batch: got %d results", len(results))
	}
	if results[filepath.Join(tmp, "gone")] != 0 {
		t.Errorf("missing folder should publish 0")
	}
	if results[filepath.Join(tmp, "ok")] != 50 {
		t.Errorf("ok size = %d, want 50", results[filepath.Join(tmp, "ok")])
	}
}

func TestScheduleSupersededRoundPublishesNothing(t *testing.T) {
	tmp := t.TempDir()
	var folders []*model.Entry
	for _, name := range []string{"a", "b", "c", "d"} {
		mustWriteSized(t, filepath.Join(tmp, name, "f.bin"), 10)
		folders = append(folders, &model.Entry{
			Name: name, Path: filepath.Join(tmp, name), Kind: model.KindFolder,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // superseded before the round starts

	s := NewScheduler(2)
	ch := s.Schedule(ctx, folders)

	count := 0
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				if count != 0 {
					t.Fatalf("cancelled round published %d results, want 0", count)
				}
				return
			}
			count++
		case <-timeout:
			t.Fatal("scheduler did not close the result channel")
		}
	}
}

func TestScheduleCancelMidRoundStopsDispatch(t *testing.T) {
	tmp := t.TempDir()
	var folders []*model.Entry
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("f%02d", i)
		mustWriteSized(t, filepath.Join(tmp, name, "f.bin"), 10)
		folders = append(folders, &model.Entry{
			Name: name, Path: filepath.Join(tmp, name), Kind: model.KindFolder,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(1)
	ch := s.Schedule(ctx, folders)

	if _, ok := <-ch; !ok {
		t.Fatal("round closed before delivering any result")
	}
	cancel()

	// A worker already past its context check may still publish, but
	// dispatch stops: the round must close well short of 40 results.
	received := 1
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				if received >= len(folders) {
					t.Fatalf("cancelled round still published all %d results", received)
				}
				return
			}
			received++
		case <-timeout:
			t.Fatal("scheduler did not close the result channel after cancel")
		}
	}
}

func TestScheduleEmptyRound(t *testing.T) {
	s := NewScheduler(0) // defaults to core count
	ch := s.Schedule(context.Background(), nil)

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("empty round should publish nothing")
		}
	case <-time.After(time.Second):
		t.Fatal("empty round did not close its channel")
	}
}
