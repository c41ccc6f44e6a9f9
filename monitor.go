package rankit

// Monitor provides hooks to observe a search call. Implement this
// interface to track per-item scoring during search, for instance to
// drive debug output in a development tool. Hooks are invoked in input
// order: Start once, ItemScored once per input item, Finish once.
type Monitor interface {
	Start(query string)
	ItemScored(index int, score float64, matchedFields []string)
	Finish(retained, total int)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) ItemScored(_ int, _ float64, _ []string) {}
func (n *noopMonitor) Finish(_, _ int)                         {}
