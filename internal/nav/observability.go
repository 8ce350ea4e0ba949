package nav

import (
	"fmt"
	"io"
	"time"
)

// LogGateObserver writes gate decisions to an io.Writer.
type LogGateObserver struct {
	w io.Writer
}

func NewLogGateObserver(w io.Writer) *LogGateObserver {
	return &LogGateObserver{w: w}
}

func (o *LogGateObserver) OnGateDecision(d GateDecision) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if d.Err != nil {
		status = "err:" + d.Err.Error()
	}
	fmt.Fprintf(o.w, "[%s] auth_gate event=%s branch=%s stage=%s status=%s\n",
		ts, d.Event, d.Branch, d.Stage, status)
}
