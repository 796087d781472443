package reconcile

// Sink is the display surface the reconciler mutates. Implementations own an
// ordered list of rows; every index refers to the list as it stands when the
// call is made. All calls for one Apply happen on the caller's goroutine and
// never interleave with another Apply.
type Sink interface {
	// InsertRow places a newly created row at index.
	InsertRow(index int, row *Row)
	// UpdateRow signals that the row at index changed fields in place. The
	// row pointer is the same one InsertRow delivered.
	UpdateRow(index int, row *Row)
	// RemoveRow deletes the row at index.
	RemoveRow(index int)
	// MoveRow relocates the row at from so it ends up at to.
	MoveRow(from, to int)

	// SelectRow marks the row at index as the selection.
	SelectRow(index int)
	// ClearSelection removes any selection mark.
	ClearSelection()

	// ScrollFraction reports the current scroll position in [0,1].
	ScrollFraction() float64
	// SetScrollFraction restores a previously captured scroll position.
	SetScrollFraction(f float64)
	// EnsureVisible scrolls so the row at index is on screen. When both
	// apply, this wins over SetScrollFraction.
	EnsureVisible(index int)
}
