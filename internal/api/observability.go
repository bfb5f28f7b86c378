package api

import (
	"fmt"
	"io"
	"time"
)

// RequestEvent records metadata about a single backend request.
type RequestEvent struct {
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	Err       error
}

// Observer receives events about backend requests for logging and
// diagnostics. Secondary failures of composite loads are reported here
// instead of being surfaced as alerts.
type Observer interface {
	OnRequestComplete(event RequestEvent)
}

// LogObserver writes request events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnRequestComplete(event RequestEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := fmt.Sprintf("%d", event.Status)
	if event.Err != nil {
		status = "err:" + event.Err.Error()
	}
	fmt.Fprintf(o.w, "[%s] api_call method=%s path=%s latency_ms=%d status=%s\n",
		ts, event.Method, event.Path, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnRequestComplete(RequestEvent) {}
