package nav

// Navigator is the machine's view of location: read the current path, push
// or replace an entry, or hard-assign (reset) the whole history. History is
// the production implementation; tests substitute a recording fake.
type Navigator interface {
	Path() string
	Push(path string)
	Replace(path string)
	Assign(path string)
	Back() bool
	Forward() bool
}

// History is a browser-like entry stack with a cursor. Push drops any
// forward entries, Replace swaps the current one, Back/Forward move the
// cursor, Assign resets the stack entirely (the "full page redirect").
type History struct {
	entries []string
	idx     int
}

func NewHistory(initial string) *History {
	if initial == "" {
		initial = RootPath
	}
	return &History{entries: []string{initial}}
}

func (h *History) Path() string {
	return h.entries[h.idx]
}

func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.idx+1], path)
	h.idx++
}

func (h *History) Replace(path string) {
	h.entries[h.idx] = path
}

func (h *History) Assign(path string) {
	h.entries = []string{path}
	h.idx = 0
}

// Back moves the cursor one entry back, reporting whether it moved.
func (h *History) Back() bool {
	if h.idx == 0 {
		return false
	}
	h.idx--
	return true
}

// Forward moves the cursor one entry forward, reporting whether it moved.
func (h *History) Forward() bool {
	if h.idx >= len(h.entries)-1 {
		return false
	}
	h.idx++
	return true
}

// Len returns the number of entries currently held.
func (h *History) Len() int {
	return len(h.entries)
}
