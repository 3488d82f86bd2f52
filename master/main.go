package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"google.golang.org/grpc"

	"github.com/alycolumbres/GDEV32-FinalProject/master/pool"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/comms"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/screen"
)

// bandHeight controls how many rows of the frame each work order covers.
const bandHeight int = 32

// retryFrequency controls how long the master waits before re-offering a band nobody could take.
const retryFrequency uint = 500

// traceTimeout controls how long the master waits before rejecting a BulkTrace call.
// This is a variable because the master may want to dynamically change it.
var traceTimeout uint = 30000

// system represents the whole distributed system as the master sees it.
type system struct {
	// The scene is never mutated after loading, so the registrar and
	// coordinator read it without locking.
	scene *scene.Scene

	workers pool.Pool
}

// band is a horizontal slice of the frame, traced by a single work order.
type band struct {
	y      int
	height int
}

// renderFrame farms the frame's rows out to the worker pool band by band.
// Bands whose workers fail or time out are handed to other workers until the whole frame lands.
func renderFrame(sys *system, img *screen.Image, progress *tracker) {
	bands := (img.Height + bandHeight - 1) / bandHeight

	// The buffers fit every band so a failed band can always be requeued without blocking.
	pending := make(chan band, bands)
	landed := make(chan band, bands)
	for y := 0; y < img.Height; y += bandHeight {
		h := bandHeight
		if y+h > img.Height {
			h = img.Height - y
		}
		pending <- band{y: y, height: h}
	}

	for remaining := bands; remaining > 0; {
		select {
		case b := <-pending:
			resultCh, err := sys.workers.Assign(&comms.WorkOrder{Y: uint32(b.y), Height: uint32(b.height)}, traceTimeout)
			if err != nil {
				log.Printf("No workers in pool, will retry rows %d through %d.\n", b.y, b.y+b.height-1)
				time.AfterFunc(time.Millisecond*time.Duration(retryFrequency), func() {
					pending <- b
				})
				continue
			}
			go collect(b, resultCh, img, pending, landed)
		case b := <-landed:
			progress.addRows(b.height)
			remaining--
			log.Printf("Traced rows %d through %d, %d bands remaining.\n", b.y, b.y+b.height-1, remaining)
		}
	}
}

// collect waits on one band's results and lands them in the frame.
// Bands cover disjoint rows, so no lock is needed around the image.
// This function should be spun off as a goroutine.
func collect(b band, resultCh <-chan *comms.TraceResults, img *screen.Image, pending chan<- band, landed chan<- band) {
	results, ok := <-resultCh
	if !ok {
		// The worker failed or timed out, so hand the band to another one.
		pending <- b
		return
	}

	pix, err := comms.UnpackPixels(results.GetPixels())
	if err != nil {
		log.Printf("Could not unpack rows %d through %d: %v.\n", b.y, b.y+b.height-1, err)
		pending <- b
		return
	}
	if len(pix) != 3*img.Width*b.height {
		log.Printf("Discarding wrongly sized results for rows %d through %d.\n", b.y, b.y+b.height-1)
		pending <- b
		return
	}
	if err := img.SetRows(b.y, pix); err != nil {
		log.Printf("Discarding malformed results for rows %d through %d: %v.\n", b.y, b.y+b.height-1, err)
		pending <- b
		return
	}

	landed <- b
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 5 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) scene file path" +
			"\n\t(2) output image path" +
			"\n\t(3) worker registration port" +
			"\n\t(4) status port")
	}

	// Parse the command line parameters.
	scn, err := scene.SceneFromFile(os.Args[1])
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", os.Args[1], err)
	}
	outputPath := os.Args[2]
	registrationPort, err := strconv.ParseUint(os.Args[3], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse registration port \"%s\": %v.\n", os.Args[3], err)
	}
	statusPort, err := strconv.ParseUint(os.Args[4], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse status port \"%s\": %v.\n", os.Args[4], err)
	}

	// Set up the system's state.
	sys := system{scene: scn, workers: pool.NewPool(8)}
	defer sys.workers.Destroy()

	img := screen.NewImage(scn.Cam.Width, scn.Cam.Height)

	// Spin off the registration server.
	registrar := grpc.NewServer()
	defer registrar.GracefulStop()
	go newRegistrar(&sys, registrar, uint(registrationPort))

	// Spin off the status feed.
	progress := newTracker(&sys.workers, scn.Cam.Height)
	go serveStatus(progress, uint(statusPort))

	log.Printf("Waiting for workers on port %d.\n", registrationPort)
	renderFrame(&sys, img, progress)
	progress.finish()

	if err := img.WritePNG(outputPath); err != nil {
		log.Fatalf("Could not write image \"%s\": %v.\n", outputPath, err)
	}
	log.Printf("Wrote %dx%d image to \"%s\".\n", img.Width, img.Height, outputPath)
}
