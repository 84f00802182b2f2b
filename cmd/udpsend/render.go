package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sequencer"
)

const clockLayout = "03:04:05 PM"

// formatTimestamp renders t as hh:mm:ss AM.mmm in the local zone.
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s.%03d", t.Format(clockLayout), t.Nanosecond()/int(time.Millisecond))
}

func formatEntry(e sequencer.LogEntry) string {
	label := "Success"
	if e.Outcome == sequencer.OutcomeError {
		label = "Error"
	}

	return fmt.Sprintf("#%d %s  %s [%s]", e.Index, e.Message, formatTimestamp(e.Timestamp), label)
}

// render writes one line per event until events is closed.
func render(w io.Writer, events <-chan sequencer.Event) {
	for ev := range events {
		fmt.Fprintln(w, formatEntry(ev.Entry))
	}
}
