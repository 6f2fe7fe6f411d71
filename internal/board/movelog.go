package board

import "fmt"

// LogEntry records one pick-up or drop: the piece and the cell involved.
type LogEntry struct {
	Piece Piece
	Cell  Cell
}

// String returns the entry as "code@cell", e.g. "wp@e2".
func (e LogEntry) String() string {
	return fmt.Sprintf("%s@%s", e.Piece.Code(), e.Cell)
}

// MoveLog is the ordered sequence of pick-up and drop entries.
// A completed move occupies two consecutive entries: pick-up, then drop.
type MoveLog struct {
	entries []LogEntry
}

// Append adds an entry to the end of the log.
func (l *MoveLog) Append(p Piece, c Cell) {
	l.entries = append(l.entries, LogEntry{Piece: p, Cell: c})
}

// Len returns the number of entries.
func (l *MoveLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log.
func (l *MoveLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry.
func (l *MoveLog) Last() (LogEntry, bool) {
	if len(l.entries) == 0 {
		return LogEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// PopPair removes the last two entries and returns them as (pickUp, drop).
func (l *MoveLog) PopPair() (pickUp, drop LogEntry, err error) {
	n := len(l.entries)
	if n < 2 {
		return LogEntry{}, LogEntry{}, ErrNothingToUndo
	}
	drop = l.entries[n-1]
	pickUp = l.entries[n-2]
	l.entries = l.entries[:n-2]
	return pickUp, drop, nil
}
