package nav

// Memory is an in-process Navigator backed by a history slice, mirroring how
// browser history behaves: Push truncates any forward entries, Replace
// rewrites in place, Back and Forward step through what was pushed.
//
// Memory is driven from the single event-handling goroutine and does not
// lock.
type Memory struct {
	history []Location
	idx     int
}

// NewMemory starts history at the given location.
func NewMemory(start Location) *Memory {
	return &Memory{history: []Location{start.clone()}}
}

func (m *Memory) Location() Location {
	return m.history[m.idx].clone()
}

// Push appends a new history entry, discarding any forward entries.
func (m *Memory) Push(l Location) {
	m.history = append(m.history[:m.idx+1], l.clone())
	m.idx++
}

// Replace rewrites the current entry without growing history.
func (m *Memory) Replace(l Location) {
	m.history[m.idx] = l.clone()
}

// Back steps to the previous entry. Returns false at the beginning.
func (m *Memory) Back() bool {
	if m.idx == 0 {
		return false
	}
	m.idx--
	return true
}

// Forward steps to the next entry. Returns false at the end.
func (m *Memory) Forward() bool {
	if m.idx == len(m.history)-1 {
		return false
	}
	m.idx++
	return true
}

// Len reports the number of history entries.
func (m *Memory) Len() int {
	return len(m.history)
}
