package diag

import "fmt"

// Entry is one diagnostic accumulated during ingestion. Entries are
// informational: a failed input file aborts that file only, and the rest of
// the batch continues.
type Entry struct {
	Context string `json:"context"`
	Message string `json:"message"`
}

// Log is an ordered collection of diagnostic entries. The zero value is
// ready to use.
type Log struct {
	entries []Entry
}

func (l *Log) Add(context, message string) {
	l.entries = append(l.entries, Entry{Context: context, Message: message})
}

func (l *Log) Addf(context, format string, args ...any) {
	l.Add(context, fmt.Sprintf(format, args...))
}

// Entries returns the accumulated entries in insertion order.
func (l *Log) Entries() []Entry {
	return l.entries
}

func (l *Log) Empty() bool {
	return len(l.entries) == 0
}
