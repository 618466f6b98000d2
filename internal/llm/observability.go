package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about one validated conversion call,
// covering all oracle attempts it made. It never carries oracle output.
type CallEvent struct {
	ConversionID string
	Task         TaskType
	Model        string
	Attempts     int
	LatencyMs    int64
	Success      bool
	ErrorCode    string
}

// Observer receives events about oracle calls for logging and history.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] oracle_call id=%s task=%s model=%s attempts=%d latency_ms=%d status=%s\n",
		ts, event.ConversionID, event.Task, event.Model, event.Attempts, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// MultiObserver fans one event out to several observers.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m {
		o.OnCallComplete(event)
	}
}
