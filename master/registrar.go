package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/comms"
)

// Registrar implements the comms.RegistrationServer interface.
type Registrar struct {
	sys *system

	// The scene never changes once rendering starts, so it's packed once up front.
	packedScene []byte
}

// Register registers a worker with the master and hands it the scene.
func (r *Registrar) Register(ctx context.Context, req *comms.WorkerLink) (*comms.MasterScene, error) {
	// Get the worker's sending address.
	worker, exists := peer.FromContext(ctx)
	if !exists {
		return nil, fmt.Errorf("could not derive worker address")
	}

	// Compute the worker's receiving address by swapping in its serving port.
	addr := strings.TrimRightFunc(worker.Addr.String(), unicode.IsNumber) + strconv.FormatUint(uint64(req.GetPort()), 10)

	if err := r.sys.workers.Add(addr); err != nil {
		return nil, err
	}
	log.Printf("Worker %s joined the pool.\n", addr)

	return &comms.MasterScene{Scene: r.packedScene}, nil
}

// newRegistrar sets up a new registration server.
func newRegistrar(sys *system, server *grpc.Server, registrationPort uint) {
	packed, err := comms.PackScene(sys.scene)
	if err != nil {
		log.Fatalf("Could not pack scene for workers: %v.\n", err)
	}
	comms.RegisterRegistrationServer(server, &Registrar{sys: sys, packedScene: packed})

	// Create a listener for the workers.
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", registrationPort))
	if err != nil {
		log.Fatalf("Failed to listen on port \"%d\": %v.\n", registrationPort, err)
	}

	// Serve incoming registration orders.
	if err = server.Serve(listener); err != nil {
		log.Fatalf("Registrar interrupted: %v.\n", err)
	}
}
