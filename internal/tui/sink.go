package tui

import "github.com/sweeptools/memsweep/internal/reconcile"

// tableSink adapts the bubbles table to the reconciler's display surface.
// The reconciler mutates the ordered row slice through the interface; after
// each reconcile the model pushes the result into the table widget and
// honors the recorded selection/scroll requests (see syncTable).
type tableSink struct {
	rows []*reconcile.Row

	selected int // requested selection index, -1 for none
	scroll   float64
	visible  int // requested scroll-into-view index, -1 for none
}

func newTableSink() *tableSink {
	return &tableSink{selected: -1, visible: -1}
}

// begin captures the pre-reconcile scroll position and resets the requests.
func (s *tableSink) begin(scroll float64) {
	s.scroll = scroll
	s.selected = -1
	s.visible = -1
}

func (s *tableSink) InsertRow(index int, row *reconcile.Row) {
	s.rows = append(s.rows, nil)
	copy(s.rows[index+1:], s.rows[index:])
	s.rows[index] = row
}

func (s *tableSink) UpdateRow(index int, row *reconcile.Row) {
	// Rows are mutated in place; re-rendering happens in syncTable.
}

func (s *tableSink) RemoveRow(index int) {
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
}

func (s *tableSink) MoveRow(from, to int) {
	row := s.rows[from]
	s.rows = append(s.rows[:from], s.rows[from+1:]...)
	s.rows = append(s.rows, nil)
	copy(s.rows[to+1:], s.rows[to:])
	s.rows[to] = row
}

func (s *tableSink) SelectRow(index int)         { s.selected = index }
func (s *tableSink) ClearSelection()             { s.selected = -1 }
func (s *tableSink) ScrollFraction() float64     { return s.scroll }
func (s *tableSink) SetScrollFraction(f float64) { s.scroll = f }
func (s *tableSink) EnsureVisible(index int)     { s.visible = index }
