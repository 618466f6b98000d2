package history

import (
	"time"

	"github.com/nbarden/edict/internal/llm"
)

// Recorder is an llm.Observer that persists call events. Recording is
// best effort: a failed insert never fails the conversion that produced
// the event.
type Recorder struct {
	store *Store
}

// NewRecorder creates a Recorder over the given store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) OnCallComplete(event llm.CallEvent) {
	_ = r.store.Record(Entry{
		ID:        event.ConversionID,
		Task:      string(event.Task),
		Model:     event.Model,
		Attempts:  event.Attempts,
		LatencyMs: event.LatencyMs,
		Success:   event.Success,
		ErrorCode: event.ErrorCode,
		CreatedAt: time.Now(),
	})
}
