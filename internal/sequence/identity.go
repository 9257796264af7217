package sequence

// ID identifies a plugin as a (theme, name) pair. IDs are compared by value;
// two IDs are the same plugin exactly when both fields match.
type ID struct {
	Theme string
	Name  string
}

// Sentinel identities standing in for omitted operands. They carry no theme
// and compare equal only to themselves; the sequencer strips them from the
// final order.
var (
	Head = ID{Name: "HEAD"}
	Tail = ID{Name: "TAIL"}
)

// IsSentinel reports whether the ID is one of the HEAD/TAIL bookkeeping
// anchors.
func (id ID) IsSentinel() bool {
	return id == Head || id == Tail
}

// String renders the ID as "theme.name", or the bare name for sentinels.
func (id ID) String() string {
	if id.Theme == "" {
		return id.Name
	}
	return id.Theme + "." + id.Name
}

// Key returns the total ordering key for the ID. The NUL separator sorts
// below every identifier character, so the key compares exactly like the
// (theme, name) tuple and stays unambiguous even for host-supplied theme
// labels that contain dots; grouping and tie-breaks built on it are
// reproducible across runs and processes.
func (id ID) Key() string {
	return id.Theme + "\x00" + id.Name
}
