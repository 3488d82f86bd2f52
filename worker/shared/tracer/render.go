// Package tracer provides ray-tracing functionality shared by the distributed and sequential workers.
package tracer

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/screen"
)

// Render traces the band of image rows [yStart, yStart+img.Height) into img,
// spread across the given number of goroutines. Row 0 of img holds image row
// yStart. The sequential worker renders the whole frame as one band, and the
// distributed workers render the bands they're ordered to.
//
// Goroutines claim rows dynamically, so for a fixed scene the output bytes
// are identical no matter how many workers render it. If non-nil, progress is
// called after every finished row, possibly from several goroutines at once.
//
// If ctx ends before the band does, rendering stops early and the context's
// error is returned; the band's contents are then unusable.
func Render(ctx context.Context, scn *scene.Scene, img *screen.Image, yStart, workers int, progress func(done, total int)) error {
	if workers < 1 {
		workers = 1
	}
	total := img.Height
	var nextRow, rowsDone int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				row := int(atomic.AddInt64(&nextRow, 1)) - 1
				if row >= total {
					return
				}

				// The framebuffer counts rows from the top, the viewport from the bottom.
				y := scn.Cam.Height - 1 - (yStart + row)
				for x := 0; x < scn.Cam.Width; x++ {
					img.Set(x, row, Trace(scn.Cam.GetRay(x, y), scn, scn.MaxDepth))
				}

				if done := atomic.AddInt64(&rowsDone, 1); progress != nil {
					progress(int(done), total)
				}
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}
