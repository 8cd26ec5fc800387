package fleet

// LogEntry is one line of the deployment log.
type LogEntry struct {
	Text  string
	Class int // ship class the entry is about, colors the line
}

// DeployLog is a bounded FIFO of deployment entries.
type DeployLog struct {
	Entries []LogEntry
	maxSize int
}

// NewDeployLog creates a log that keeps the most recent maxSize entries.
func NewDeployLog(maxSize int) *DeployLog {
	return &DeployLog{
		Entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entry, evicting the oldest if full.
func (l *DeployLog) Add(text string, class int) {
	if l.maxSize <= 0 {
		return
	}
	e := LogEntry{Text: text, Class: class}
	if len(l.Entries) >= l.maxSize {
		copy(l.Entries, l.Entries[1:])
		l.Entries[len(l.Entries)-1] = e
		return
	}
	l.Entries = append(l.Entries, e)
}

// Recent returns the last n entries (or fewer if the log is shorter).
func (l *DeployLog) Recent(n int) []LogEntry {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	return l.Entries[len(l.Entries)-n:]
}
