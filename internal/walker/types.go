// Package walker lists the files under a root directory
package walker

// SkippedReason clarifies why a path was not emitted.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore Rule)"
	ReasonOutputFile        SkippedReason = "Skipped (Output File)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
}

// SkippedTracker collects skipped items in the order they are seen.
// A nil *SkippedTracker discards everything.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason) {
	if st == nil {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	return st.items
}

// Len returns the number of tracked items.
func (st *SkippedTracker) Len() int {
	if st == nil {
		return 0
	}
	return len(st.items)
}
