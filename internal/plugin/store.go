package plugin

// Item is one unit of content moving through the pipeline.
type Item struct {
	// Name is the item's path-like identifier, unique within the store.
	Name string
	// Meta carries free-form string metadata set by plugins.
	Meta map[string]string
	Body []byte
}

// Store is the shared content state handed to every plugin in turn. It also
// carries per-theme string options from the host configuration. The pipeline
// is synchronous, so the store needs no locking.
type Store struct {
	items   []*Item
	options map[string]map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{options: make(map[string]map[string]string)}
}

// Add appends an item to the store.
func (s *Store) Add(it *Item) {
	if it.Meta == nil {
		it.Meta = make(map[string]string)
	}
	s.items = append(s.items, it)
}

// Items returns the current items in insertion order. The slice is shared;
// plugins mutate items in place.
func (s *Store) Items() []*Item {
	return s.items
}

// Replace swaps the store's entire item list.
func (s *Store) Replace(items []*Item) {
	s.items = items
}

// SetOptions installs the option map for a theme. The empty theme name holds
// host-wide defaults.
func (s *Store) SetOptions(theme string, opts map[string]string) {
	s.options[theme] = opts
}

// Option looks up a configuration option for a theme, falling back to the
// host-wide defaults under the empty theme name.
func (s *Store) Option(theme, name string) (string, bool) {
	if v, ok := s.options[theme][name]; ok {
		return v, true
	}
	v, ok := s.options[""][name]
	return v, ok
}
