package selection

import (
	"sort"
	"testing"
)

func TestRectNormalizedForAllDragDirections(t *testing.T) {
	cases := []struct {
		name     string
		from, to Point
	}{
		{"down-right", Point{2, 3}, Point{10, 8}},
		{"up-left", Point{10, 8}, Point{2, 3}},
		{"down-left", Point{10, 3}, Point{2, 8}},
		{"up-right", Point{2, 8}, Point{10, 3}},
	}

	want := Rect{X: 2, Y: 3, W: 8, H: 5}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Region
			r.Begin(tc.from, false)
			got := r.Update(tc.to)
			if got != want {
				t.Errorf("Update rect = %+v, want %+v", got, want)
			}
			if final := r.End(); final != want {
				t.Errorf("End rect = %+v, want %+v", final, want)
			}
			if r.Active() {
				t.Error("region still active after End")
			}
		})
	}
}

func TestCoveredTouchingEdgesCount(t *testing.T) {
	rect := Rect{X: 0, Y: 0, W: 10, H: 10}
	boxes := map[string]Rect{
		"corner":  {X: 10, Y: 10, W: 5, H: 5},
		"outside": {X: 10.1, Y: 10.1, W: 5, H: 5},
		"inside":  {X: 2, Y: 2, W: 1, H: 1},
	}

	got := Covered(rect, boxes)
	sort.Strings(got)
	want := []string{"corner", "inside"}

	if len(got) != len(want) {
		t.Fatalf("Covered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Covered = %v, want %v", got, want)
		}
	}
}

func TestResolveReplaceAndAdditive(t *testing.T) {
	prior := map[string]struct{}{"old": {}}
	covered := []string{"new1", "new2"}

	replaced := Resolve(prior, covered, false)
	if len(replaced) != 2 {
		t.Fatalf("replace: got %d keys, want 2", len(replaced))
	}
	if _, ok := replaced["old"]; ok {
		t.Error("replace should drop the prior selection")
	}

	unioned := Resolve(prior, covered, true)
	if len(unioned) != 3 {
		t.Fatalf("additive: got %d keys, want 3", len(unioned))
	}
	for _, key := range []string{"old", "new1", "new2"} {
		if _, ok := unioned[key]; !ok {
			t.Errorf("additive selection missing %q", key)
		}
	}
}

func TestAdditiveCapturedAtBegin(t *testing.T) {
	var r Region
	r.Begin(Point{0, 0}, true)
	r.Update(Point{5, 5})
	if !r.Additive() {
		t.Error("additive flag lost during drag")
	}

	r.Begin(Point{0, 0}, false)
	if r.Additive() {
		t.Error("additive flag should reset on a new gesture")
	}
}

func TestZeroAreaRectStillCovers(t *testing.T) {
	// A click without movement is a degenerate rectangle that still
	// hits the row under the pointer.
	var r Region
	r.Begin(Point{3, 4}, false)
	rect := r.End()

	boxes := map[string]Rect{"row": {X: 0, Y: 4, W: 10, H: 0}}
	if got := Covered(rect, boxes); len(got) != 1 {
		t.Fatalf("zero-area rect should cover the row under it, got %v", got)
	}
}
