// Package reconcile keeps a displayed, user-interactive process list in sync
// with repeatedly re-sampled snapshots. Rows are keyed by PID and survive
// across refreshes: a PID present in consecutive samples keeps its row (and
// whatever per-row state the sink hung off it), rows for vanished PIDs are
// removed, and the final on-screen order always matches the sample sorted by
// resident memory descending.
//
// Known limitation: a PID freed and reused by an unrelated process within one
// refresh interval is indistinguishable from the original process persisting,
// so the new process inherits the old row for that cycle. Identity is the PID
// value alone.
package reconcile

import (
	"sort"

	"github.com/sweeptools/memsweep/pkg/model"
)

// Row is one displayed process. The pointer stays stable for as long as the
// PID remains in consecutive samples.
type Row struct {
	PID           int32
	Name          string
	ResidentBytes uint64
	Essential     bool
}

// Stats counts the mutations one Apply performed. Reconciling the same
// sample twice in a row yields a zero Stats on the second call.
type Stats struct {
	Inserted int
	Updated  int
	Removed  int
	Moved    int
}

// Zero reports whether Apply changed nothing.
func (s Stats) Zero() bool {
	return s == Stats{}
}

// NoSelection is the sentinel for "no row selected". PIDs are non-negative.
const NoSelection int32 = -1

// State owns the row map, the display order, and the selection. All mutation
// goes through Apply on a single goroutine; State is not safe for concurrent
// use.
type State struct {
	rows     map[int32]*Row
	order    []int32
	selected int32
}

// NewState returns an empty display state with no selection.
func NewState() *State {
	return &State{
		rows:     make(map[int32]*Row),
		selected: NoSelection,
	}
}

// Select marks pid as the selection. Selection is tracked by identity, never
// by position, so it survives reordering.
func (s *State) Select(pid int32) {
	s.selected = pid
}

// ClearSelection drops any selection.
func (s *State) ClearSelection() {
	s.selected = NoSelection
}

// Selected returns the selected PID, if any.
func (s *State) Selected() (int32, bool) {
	return s.selected, s.selected != NoSelection
}

// Len reports the number of displayed rows.
func (s *State) Len() int {
	return len(s.order)
}

// Rows returns the displayed rows in display order. The slice is a copy; the
// row pointers are the live rows.
func (s *State) Rows() []*Row {
	out := make([]*Row, len(s.order))
	for i, pid := range s.order {
		out[i] = s.rows[pid]
	}
	return out
}

// Row returns the row for pid, if displayed.
func (s *State) Row(pid int32) (*Row, bool) {
	r, ok := s.rows[pid]
	return r, ok
}

// RowAt returns the row at a display index, if valid.
func (s *State) RowAt(index int) (*Row, bool) {
	if index < 0 || index >= len(s.order) {
		return nil, false
	}
	return s.rows[s.order[index]], true
}

func (s *State) indexOf(pid int32) int {
	for i, p := range s.order {
		if p == pid {
			return i
		}
	}
	return -1
}

// Apply brings the sink in line with a fresh sample. procs may arrive in any
// order; Apply sorts by resident memory descending (stable, so equal-memory
// neighbors keep their sampled order) and that defines the target layout.
// essential is consulted for every row on every cycle, so a renamed process
// is re-classified rather than keeping a stale tag.
func (s *State) Apply(sink Sink, procs []model.ProcessRecord, essential func(pid int32, name string) bool) Stats {
	var st Stats

	scroll := sink.ScrollFraction()

	target := make([]model.ProcessRecord, len(procs))
	copy(target, procs)
	sort.SliceStable(target, func(i, j int) bool {
		return target[i].ResidentBytes > target[j].ResidentBytes
	})

	live := make(map[int32]struct{}, len(target))
	for _, p := range target {
		live[p.PID] = struct{}{}
	}

	// Drop stale rows back to front so earlier indices stay valid.
	for i := len(s.order) - 1; i >= 0; i-- {
		pid := s.order[i]
		if _, ok := live[pid]; ok {
			continue
		}
		sink.RemoveRow(i)
		s.order = append(s.order[:i], s.order[i+1:]...)
		delete(s.rows, pid)
		st.Removed++
	}

	// Walk the target order; everything before index i is already final, so
	// a surviving row can only sit at or after its target slot.
	for i, p := range target {
		ess := essential(p.PID, p.Name)

		row, ok := s.rows[p.PID]
		if !ok {
			row = &Row{
				PID:           p.PID,
				Name:          p.Name,
				ResidentBytes: p.ResidentBytes,
				Essential:     ess,
			}
			s.rows[p.PID] = row
			s.order = append(s.order, 0)
			copy(s.order[i+1:], s.order[i:])
			s.order[i] = p.PID
			sink.InsertRow(i, row)
			st.Inserted++
			continue
		}

		if row.Name != p.Name || row.ResidentBytes != p.ResidentBytes || row.Essential != ess {
			row.Name = p.Name
			row.ResidentBytes = p.ResidentBytes
			row.Essential = ess
			sink.UpdateRow(s.indexOf(p.PID), row)
			st.Updated++
		}

		if j := s.indexOf(p.PID); j != i {
			sink.MoveRow(j, i)
			copy(s.order[i+1:j+1], s.order[i:j])
			s.order[i] = p.PID
			st.Moved++
		}
	}

	// Selection survives only if its PID is still displayed. It must never
	// transfer to whichever row now occupies the old position.
	selIdx := -1
	if s.selected != NoSelection {
		if _, ok := s.rows[s.selected]; ok {
			selIdx = s.indexOf(s.selected)
		} else {
			s.selected = NoSelection
		}
	}

	sink.SetScrollFraction(scroll)
	if selIdx >= 0 {
		sink.SelectRow(selIdx)
		sink.EnsureVisible(selIdx)
	} else {
		sink.ClearSelection()
	}

	return st
}
