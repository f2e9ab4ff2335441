package monitoring

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// A ProgressBar is a tracker of the progress of a long-running part of the
// simulation, e.g., the transfers currently in flight.
type ProgressBar struct {
	sync.Mutex
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
}

// IncrementTotal adds to the total number of elements tracked by the bar.
func (b *ProgressBar) IncrementTotal(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Total += amount
}

// IncrementInProgress adds to the number of in-progress elements.
func (b *ProgressBar) IncrementInProgress(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress += amount
}

// IncrementFinished adds a certain amount to the finished elements.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// MoveInProgressToFinished reduces the number of in-progress items by a
// certain amount and increases the finished items by the same amount.
func (b *ProgressBar) MoveInProgressToFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress -= amount
	b.Finished += amount
}

// MarshalJSONInto writes the JSON form of the bar into w.
func (b *ProgressBar) MarshalJSONInto(w io.Writer) {
	b.Lock()
	defer b.Unlock()

	err := json.NewEncoder(w).Encode(b)
	if err != nil {
		panic(err)
	}
}
