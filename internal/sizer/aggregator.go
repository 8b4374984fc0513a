// Package sizer computes recursive folder sizes in the background.
package sizer

import (
	"context"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/Prathameshp2025/WrapExplorer/internal/logging"
)

// TreeSize returns the total byte size of all regular files under
// root. Unreadable entries and subtrees contribute 0; the traversal is
// best-effort and never fails for partial errors. The context is
// checked on every walk callback, so cancellation returns whatever
// partial sum has accumulated.
func TreeSize(ctx context.Context, root string) int64 {
	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// Permission denied, race-deleted entry, unreadable
			// reparse point: this subtree counts as zero.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})

	if err != nil && ctx.Err() == nil {
		// Root itself was unenumerable. The partial sum (zero) stands.
		logging.Sizer.Printf("walk %s: %v", root, err)
	}

	return total.Load()
}
