package clauses

import "sync/atomic"

// LiveSelector is a Selector whose catalog can be replaced while requests
// are being served. Each call reads one catalog snapshot.
type LiveSelector struct {
	current atomic.Pointer[Selector]
}

// NewLiveSelector creates a live selector starting from catalog
func NewLiveSelector(catalog *Catalog) *LiveSelector {
	l := &LiveSelector{}
	l.current.Store(NewSelector(catalog))
	return l
}

// Swap installs catalog and returns the catalog it replaced
func (l *LiveSelector) Swap(catalog *Catalog) *Catalog {
	return l.current.Swap(NewSelector(catalog)).Catalog()
}

// Catalog returns the catalog currently in use
func (l *LiveSelector) Catalog() *Catalog {
	return l.current.Load().Catalog()
}

// Select runs Selector.Select against the current catalog
func (l *LiveSelector) Select(assignment Assignment, opts SelectOptions) (*Selection, error) {
	return l.current.Load().Select(assignment, opts)
}

// SelectSafe runs Selector.SelectSafe against the current catalog
func (l *LiveSelector) SelectSafe(assignment Assignment, opts SelectOptions) (*Selection, error) {
	return l.current.Load().SelectSafe(assignment, opts)
}
