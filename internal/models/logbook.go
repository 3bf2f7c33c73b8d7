package models

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const logTimestampFormat = "2006-01-02 15:04:05"

// LogEntry is a single timestamped message in the application log.
type LogEntry struct {
	Time    time.Time
	Message string
}

// String renders the entry the way it appears in the panel and in saved
// log files.
func (e LogEntry) String() string {
	return fmt.Sprintf("%s - %s", e.Time.Format(logTimestampFormat), e.Message)
}

// LogBook is the in-memory application log backing the UI log panel.
// The panel shows entries newest first; files are written oldest first.
type LogBook struct {
	mu      sync.RWMutex
	entries []LogEntry
	now     func() time.Time
}

// NewLogBook creates an empty log book.
func NewLogBook() *LogBook {
	return &LogBook{now: time.Now}
}

// Append adds a timestamped message to the log.
func (lb *LogBook) Append(message string) LogEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	entry := LogEntry{Time: lb.now(), Message: message}
	lb.entries = append(lb.entries, entry)
	return entry
}

// Entries returns a newest-first copy of the log for the UI table.
func (lb *LogBook) Entries() []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	out := make([]LogEntry, len(lb.entries))
	for i, e := range lb.entries {
		out[len(lb.entries)-1-i] = e
	}
	return out
}

// Len returns the number of entries.
func (lb *LogBook) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return len(lb.entries)
}

// Clear empties the log. Console output already emitted is unaffected.
func (lb *LogBook) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries = nil
}

// WriteTo writes the current contents oldest first, one line per entry,
// exactly as the panel holds them.
func (lb *LogBook) WriteTo(w io.Writer) (int64, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	var written int64
	for _, e := range lb.entries {
		n, err := fmt.Fprintf(w, "%s\n", e.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
