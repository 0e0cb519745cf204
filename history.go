package readline

// HistoryProvider is the navigation contract the editing loop uses.
// A persistent history only needs to satisfy this interface.
type HistoryProvider interface {
	// Add appends a submitted line and resets navigation to the live
	// edit.
	Add(input string)
	// Clear resets navigation to the live edit without discarding
	// entries. It runs at the start of every read.
	Clear()
	// Older moves toward earlier entries. The current buffer's text is
	// preserved so navigating back returns to it unchanged.
	Older(buf *Buffer) (*Buffer, bool)
	// Newer moves toward the live edit.
	Newer(buf *Buffer) (*Buffer, bool)
}

// History holds previously submitted lines plus per-entry working
// copies, so edits made while browsing the history survive navigation
// within one read and are discarded by the next.
type History struct {
	histories []string
	tmp       []string
	selected  int
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{
		tmp:      []string{""},
		selected: 0,
	}
}

// Add appends a line and resets navigation to the live edit.
func (h *History) Add(input string) {
	h.histories = append(h.histories, input)
	h.Clear()
}

// Clear resets the working copies and moves navigation to the live
// edit. Submitted entries are retained.
func (h *History) Clear() {
	h.tmp = make([]string, len(h.histories), len(h.histories)+1)
	copy(h.tmp, h.histories)
	h.tmp = append(h.tmp, "")
	h.selected = len(h.histories)
}

// Older saves the buffer into the current slot and returns a buffer
// for the previous entry. It reports false at the oldest entry.
func (h *History) Older(buf *Buffer) (*Buffer, bool) {
	if len(h.tmp) == 1 || h.selected == 0 {
		return buf, false
	}
	h.tmp[h.selected] = buf.Text()
	h.selected--
	return NewBufferWithText(h.tmp[h.selected]), true
}

// Newer saves the buffer into the current slot and returns a buffer
// for the next entry. It reports false at the live edit.
func (h *History) Newer(buf *Buffer) (*Buffer, bool) {
	if h.selected >= len(h.tmp)-1 {
		return buf, false
	}
	h.tmp[h.selected] = buf.Text()
	h.selected++
	return NewBufferWithText(h.tmp[h.selected]), true
}

// Entries returns a copy of the submitted lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.histories))
	copy(out, h.histories)
	return out
}

var _ HistoryProvider = (*History)(nil)
