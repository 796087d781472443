package guard

// DefaultNames is the built-in protected-name list. It mirrors the set of
// low-level system daemons that must survive a sweep; operators extend it
// through the config file.
var DefaultNames = []string{
	"kernel_task",
	"launchd",
	"WindowServer",
	"hidd",
	"distnoted",
	"powerd",
	"loginwindow",
	"systemstats",
	"notifyd",
	"syslogd",
	"mdworker",
	"mds",
	"mds_stores",
	"bluetoothd",
	"configd",
}

// DefaultPIDs protects the kernel (0) and the init process (1).
var DefaultPIDs = []int32{0, 1}

// List classifies processes as essential by fixed PID or exact name match.
// It is a pure value; classification does no I/O and is recomputed from the
// current pid/name pair on every cycle, so a renamed process is re-judged.
type List struct {
	pids  map[int32]struct{}
	names map[string]struct{}
}

// New builds a List from the given protected PIDs and names.
func New(pids []int32, names []string) *List {
	l := &List{
		pids:  make(map[int32]struct{}, len(pids)),
		names: make(map[string]struct{}, len(names)),
	}
	for _, pid := range pids {
		l.pids[pid] = struct{}{}
	}
	for _, name := range names {
		l.names[name] = struct{}{}
	}
	return l
}

// Default returns a List with the built-in protected sets.
func Default() *List {
	return New(DefaultPIDs, DefaultNames)
}

// Essential reports whether the process may not be terminated.
func (l *List) Essential(pid int32, name string) bool {
	if _, ok := l.pids[pid]; ok {
		return true
	}
	_, ok := l.names[name]
	return ok
}
