package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alycolumbres/GDEV32-FinalProject/master/pool"
)

// statusFrequency controls how often status updates are pushed to websocket clients.
const statusFrequency uint = 500

// status is one point-in-time view of the render, as served to clients.
type status struct {
	RowsDone  int   `json:"rowsDone"`
	RowsTotal int   `json:"rowsTotal"`
	Workers   uint  `json:"workers"`
	ElapsedMs int64 `json:"elapsedMs"`
	Done      bool  `json:"done"`
}

// tracker accumulates the render's progress for the status feed.
type tracker struct {
	start     time.Time
	rowsTotal int
	workers   *pool.Pool

	// Accessed atomically.
	rowsDone int64
	done     int32
}

// newTracker starts tracking a render of rowsTotal rows.
func newTracker(workers *pool.Pool, rowsTotal int) *tracker {
	return &tracker{start: time.Now(), rowsTotal: rowsTotal, workers: workers}
}

// addRows records that n more rows have landed in the frame.
func (t *tracker) addRows(n int) {
	atomic.AddInt64(&t.rowsDone, int64(n))
}

// finish marks the render complete.
func (t *tracker) finish() {
	atomic.StoreInt32(&t.done, 1)
}

// snapshot captures the render's progress at this moment.
func (t *tracker) snapshot() status {
	return status{
		RowsDone:  int(atomic.LoadInt64(&t.rowsDone)),
		RowsTotal: t.rowsTotal,
		Workers:   t.workers.Size(),
		ElapsedMs: time.Since(t.start).Milliseconds(),
		Done:      atomic.LoadInt32(&t.done) != 0,
	}
}

// The feed is an operator tool, so connections from any origin are allowed.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleStatus answers plain requests with one status snapshot,
// and websocket requests with a stream of them until the render completes.
func (t *tracker) handleStatus(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Could not upgrade status connection: %v.\n", err)
			return
		}
		defer conn.Close()

		for {
			snap := t.snapshot()
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
			if snap.Done {
				return
			}
			time.Sleep(time.Millisecond * time.Duration(statusFrequency))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(t.snapshot()); err != nil {
		log.Printf("Could not write status: %v.\n", err)
	}
}

// serveStatus serves the render's progress on the given port.
func serveStatus(t *tracker, port uint) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", t.handleStatus)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Fatalf("Status server interrupted: %v.\n", err)
	}
}
