// Package pool provides the master's pool of render workers.
package pool

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/comms"
)

// HeartbeatFrequency controls how often heartbeats are sent to each worker in a pool.
const HeartbeatFrequency uint = 500

// HeartbeatTimeout controls how long heartbeats are waited on before the associated worker is assumed to be disconnected.
const HeartbeatTimeout uint = 1000

// worker represents an entry in a pool.
type worker struct {
	connection     *grpc.ClientConn
	stopHeartbeats chan struct{}
	closing        bool

	tasks uint
	index int
}

// Pool represents a threadsafe worker pool.
//
// Workers are kept in a min-heap ordered by outstanding tasks, so the least
// busy worker is always at the root.
type Pool struct {
	mu        sync.RWMutex
	heap      []*worker
	addresses map[string]*worker
}

// NewPool creates a new worker pool with a given initial capacity.
func NewPool(c uint) Pool {
	return Pool{
		heap:      make([]*worker, 0, c),
		addresses: make(map[string]*worker),
	}
}

// Destroy cleans up a worker pool.
func (p *Pool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for a, w := range p.addresses {
		p.remove(a, w)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() uint {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return uint(len(p.heap))
}

// swap swaps two workers in the heap.
// This function assumes that the heap has already been locked.
func (p *Pool) swap(i, j int) {
	p.heap[i], p.heap[j] = p.heap[j], p.heap[i]
	p.heap[i].index = i
	p.heap[j].index = j
}

// bubbleUp pushes a worker up the heap as long as it has fewer tasks than its parent.
// This function assumes that the heap has already been locked.
func (p *Pool) bubbleUp(w *worker) {
	if w == nil || w.index >= len(p.heap) || p.heap[w.index] != w {
		return
	}

	for i := w.index; i > 0; {
		parent := (i - 1) / 2
		if p.heap[i].tasks >= p.heap[parent].tasks {
			break
		}
		p.swap(i, parent)
		i = parent
	}
}

// bubbleDown pushes a worker down the heap as long as it has more tasks than one of its children.
// This function assumes that the heap has already been locked.
func (p *Pool) bubbleDown(w *worker) {
	if w == nil || w.index >= len(p.heap) || p.heap[w.index] != w {
		return
	}

	for i := w.index; 2*i+1 < len(p.heap); {
		// Compare against the child with fewer tasks.
		child := 2*i + 1
		if right := child + 1; right < len(p.heap) && p.heap[right].tasks < p.heap[child].tasks {
			child = right
		}

		if p.heap[i].tasks <= p.heap[child].tasks {
			break
		}
		p.swap(i, child)
		i = child
	}
}

// Assign assigns a work order to the worker who is the least busy.
// The returned channel yields the order's results, or closes without a value if the worker failed.
func (p *Pool) Assign(order *comms.WorkOrder, timeout uint) (<-chan *comms.TraceResults, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.heap) == 0 {
		return nil, fmt.Errorf("no workers to trace rows %d through %d", order.GetY(), order.GetY()+order.GetHeight()-1)
	}

	assignee := p.heap[0]
	assignee.tasks++
	p.bubbleDown(assignee)

	out := make(chan *comms.TraceResults)
	go p.work(assignee, order, timeout, out)
	return out, nil
}

// work runs a single work order on a worker and reports its results.
// This function should be spun off as a goroutine.
func (p *Pool) work(assignee *worker, order *comms.WorkOrder, timeout uint, out chan<- *comms.TraceResults) {
	defer close(out)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*time.Duration(timeout))
	defer cancel()

	results, err := comms.NewTraceClient(assignee.connection).BulkTrace(ctx, order)
	if err != nil {
		log.Printf("Failed to trace rows %d through %d: %v.\n", order.GetY(), order.GetY()+order.GetHeight()-1, err)
	} else {
		out <- results
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Complete the task and re-arrange the heap (if the assignee is still in it).
	assignee.tasks--
	if assignee.index < len(p.heap) && p.heap[assignee.index] == assignee {
		p.bubbleUp(assignee)
	}

	// If this was the worker's last task, close the connection.
	if assignee.closing && assignee.tasks == 0 {
		assignee.connection.Close()
	}
}

// remove removes a worker with some address from a pool.
// This function assumes that the pool has already been locked.
// This function also assumes that address refers to w, and that w is in the pool.
func (p *Pool) remove(address string, w *worker) {
	i := w.index

	delete(p.addresses, address)
	p.swap(len(p.heap)-1, i)
	p.heap = p.heap[:len(p.heap)-1]

	// The worker that took the removed one's place can move in either direction.
	if i < len(p.heap) {
		moved := p.heap[i]
		p.bubbleUp(moved)
		p.bubbleDown(moved)
	}

	// Close the worker and disconnect if there are no remaining tasks.
	w.closing = true
	if w.tasks == 0 {
		w.connection.Close()
	}
}

// heartbeat periodically sends out heartbeat messages to a worker.
// This function should be spun off as a goroutine.
func (p *Pool) heartbeat(w *worker) {
	// Because ClientConn objects are threadsafe, we don't need to lock.
	client := comms.NewTraceClient(w.connection)

	for {
		select {
		case <-w.stopHeartbeats:
			return
		case <-time.After(time.Millisecond * time.Duration(HeartbeatFrequency)):
			ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*time.Duration(HeartbeatTimeout))
			_, err := client.Heartbeat(ctx, &empty.Empty{})
			cancel()
			if err == nil {
				continue
			}
			log.Printf("Failed to send heartbeat: %v.\n", err)

			p.mu.Lock()
			// Find whether the worker is still in the pool, then remove it if it is.
			for a, other := range p.addresses {
				if other == w {
					p.remove(a, w)
					break
				}
			}
			p.mu.Unlock()
			return
		}
	}
}

// Add adds a new worker to the pool.
func (p *Pool) Add(address string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.addresses[address]; !exists {
		// This ClientConn is threadsafe.
		conn, err := grpc.Dial(address, grpc.WithInsecure())
		if err != nil {
			return err
		}

		w := &worker{connection: conn, stopHeartbeats: make(chan struct{}), index: len(p.heap)}
		p.addresses[address] = w
		p.heap = append(p.heap, w)
		p.bubbleUp(w)

		go p.heartbeat(w)
	}

	return nil
}

// Remove removes a worker from the pool.
func (p *Pool) Remove(address string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, exists := p.addresses[address]; exists {
		close(w.stopHeartbeats)
		p.remove(address, w)
	}
}
