package engine

// AttributeMap is the key → ValueCell mapping owned exclusively by one
// host object. Its zero value is ready to use: Get on an unpopulated
// map returns found=false without error, and Set lazily allocates the
// backing map on first insert.
type AttributeMap struct {
	cells map[int]*ValueCell
}

// NewAttributeMap returns an empty, ready-to-use attribute map. Using
// the zero value directly works too; this constructor exists for
// symmetry with the rest of the package's exported types.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{}
}

// Len returns the number of attributes currently cached.
func (m *AttributeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.cells)
}

func (m *AttributeMap) lookup(key int) (*ValueCell, bool) {
	if m == nil || m.cells == nil {
		return nil, false
	}
	c, ok := m.cells[key]
	return c, ok
}

func (m *AttributeMap) insert(cell *ValueCell) {
	if m.cells == nil {
		m.cells = make(map[int]*ValueCell)
	}
	m.cells[cell.key] = cell
}

func (m *AttributeMap) remove(key int) {
	delete(m.cells, key)
}

// snapshot returns every cell currently in the map, in unspecified
// order; callers that need a deterministic order (DeleteAll) sort it
// themselves.
func (m *AttributeMap) snapshot() []*ValueCell {
	if m == nil || len(m.cells) == 0 {
		return nil
	}
	out := make([]*ValueCell, 0, len(m.cells))
	for _, c := range m.cells {
		out = append(out, c)
	}
	return out
}
