package notion

import (
	"fmt"
	"io"
	"time"
)

// QueryEvent records metadata about a single database query, covering
// all pages of the pagination loop.
type QueryEvent struct {
	DatabaseID string
	Pages      int
	Records    int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// QueryObserver receives events about Notion queries for logging.
type QueryObserver interface {
	OnQueryComplete(event QueryEvent)
}

// LogObserver writes query events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates a QueryObserver that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnQueryComplete(event QueryEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] notion_query db=%s pages=%d records=%d latency_ms=%d status=%s\n",
		ts, event.DatabaseID, event.Pages, event.Records, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnQueryComplete(QueryEvent) {}
