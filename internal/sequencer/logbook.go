package sequencer

import "sync"

// LogBook is the in-memory, append-only list of entries for the current
// session. Entries are copied out, never handed back by reference.
type LogBook struct {
	mu      sync.RWMutex
	entries []LogEntry
}

func NewLogBook() *LogBook {
	return &LogBook{}
}

func (b *LogBook) Append(entry LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
}

func (b *LogBook) List() []LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *LogBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

func (b *LogBook) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
}
