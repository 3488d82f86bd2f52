package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/comms"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/screen"
	"github.com/alycolumbres/GDEV32-FinalProject/worker/shared/tracer"
)

// registerFrequency controls the minimum amount of time this worker will wait before trying to re-register itself after a failure.
const registerFrequency uint = 500

// traceTimeout controls how long this worker will wait for trace requests and heartbeats before closing its trace server.
const traceTimeout uint = 2000

// Tracer implements the comms.TraceServer interface.
type Tracer struct {
	// No lock here because we never mutate this data.
	scene             *scene.Scene
	resetTraceTimeout chan struct{}
}

// timeoutReset resets a tracer's trace timeout.
func (t *Tracer) timeoutReset() {
	defer func() {
		recover()
	}()

	// Try to reset the trace timeout.
	// If the channel is closed, this will panic and return immediately.
	t.resetTraceTimeout <- struct{}{}
}

// BulkTrace traces a band of whole rows and returns their packed pixels.
func (t *Tracer) BulkTrace(ctx context.Context, req *comms.WorkOrder) (*comms.TraceResults, error) {
	t.timeoutReset()

	y, height := int(req.GetY()), int(req.GetHeight())
	if height == 0 || y+height > t.scene.Cam.Height {
		return nil, fmt.Errorf("rows %d through %d fall outside the %d row frame", y, y+height-1, t.scene.Cam.Height)
	}

	// Trace the band with every core available.
	band := screen.NewImage(t.scene.Cam.Width, height)
	if err := tracer.Render(ctx, t.scene, band, y, runtime.NumCPU(), nil); err != nil {
		return nil, err
	}

	return &comms.TraceResults{Pixels: comms.PackPixels(band.Pix)}, nil
}

// Heartbeat keeps the worker from disconnecting from the master.
func (t *Tracer) Heartbeat(ctx context.Context, req *empty.Empty) (*empty.Empty, error) {
	t.timeoutReset()

	return &empty.Empty{}, nil
}

// register registers this worker with the master at registerAddr for later communication on listenPort using the tracer it returns.
func register(registerAddr string, listenPort uint32) (Tracer, error) {
	// Connect to the master.
	conn, err := grpc.Dial(registerAddr, grpc.WithInsecure())
	if err != nil {
		return Tracer{}, err
	}
	defer conn.Close()

	// Attempt to register.
	client := comms.NewRegistrationClient(conn)
	sceneMsg, err := client.Register(context.Background(), &comms.WorkerLink{Port: listenPort})
	if err != nil {
		return Tracer{}, err
	}

	// Unpack the master's scene.
	if sceneMsg.GetScene() == nil {
		return Tracer{}, fmt.Errorf("no scene data received")
	}
	scn, err := comms.UnpackScene(sceneMsg.GetScene())
	if err != nil {
		return Tracer{}, err
	}

	return Tracer{scene: scn, resetTraceTimeout: make(chan struct{})}, nil
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 3 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) master address (including port)" +
			"\n\t(2) work order listening port")
	}

	// Parse the command line parameters.
	masterAddr := os.Args[1]
	orderPort, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse port number \"%s\": %v.\n", os.Args[2], err)
	}

	for {
		// Try to register.
		worker, err := register(masterAddr, uint32(orderPort))
		if err == nil {
			// Set up the worker.
			server := grpc.NewServer()
			comms.RegisterTraceServer(server, &worker)

			// Create a listener for the master.
			listener, err := net.Listen("tcp", fmt.Sprintf(":%d", orderPort))
			if err != nil {
				log.Fatalf("Failed to listen on port \"%d\": %v.\n", orderPort, err)
			}

			// Spin off a goroutine which closes the trace server if no requests come in within a timeout.
			go func() {
				for {
					select {
					case <-worker.resetTraceTimeout:
					case <-time.After(time.Millisecond * time.Duration(traceTimeout)):
						close(worker.resetTraceTimeout)
						server.GracefulStop()
						return
					}
				}
			}()

			// Serve incoming work orders.
			if err = server.Serve(listener); err != nil {
				log.Printf("Tracer interrupted: %v.\n", err)
			} else {
				log.Printf("Tracer timed out after receiving no orders or heartbeats.\n")
			}
		} else {
			log.Printf("Failed to register: %v.\n", err)
		}

		// Wait before trying to register again.
		time.Sleep(time.Millisecond * time.Duration(registerFrequency))
	}
}
