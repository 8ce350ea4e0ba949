package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent is emitted once per Generate call, success or failure. ErrorCode
// is empty on success and carries the sentinel's code otherwise.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives call events. Services take an Observer instead of a
// logger so tests can capture events and production can choose stderr.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver drops every event.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes one line per call to w. Enabled in main with
// FORWARD_LLM_LOG_CALLS.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "%s luna task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}
