package material

import "fmt"

// CollectionOption configures behavior of a Collection before creation.
type CollectionOption func(c *Collection)

// WithReplacement makes Add silently replace an earlier material carrying
// the same symbol instead of rejecting it. The replaced material keeps its
// original position in iteration order.
func WithReplacement() CollectionOption {
	return func(c *Collection) { c.replace = true }
}

// Collection is a registry of materials keyed by their unique symbol,
// iterable in insertion order. It allows grouping materials, e.g. elements
// separately from compositions.
//
// A Collection is built once by a loader and then treated as read-only by
// consumers; it does not lock internally. By default, adding a second
// material with a previously used symbol is rejected with
// ErrDuplicateSymbol (construct with WithReplacement for the historical
// silent-overwrite behavior).
type Collection struct {
	replace bool

	order []string             // symbols in insertion order
	items map[string]*Material // symbol → material
}

// NewCollection creates an empty Collection with the given options.
// Complexity: O(1)
func NewCollection(opts ...CollectionOption) *Collection {
	c := &Collection{items: make(map[string]*Material)}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add registers a material under its symbol.
//
// The symbol must be a non-empty identifier-like token (letters, digits,
// underscore; no leading digit); violations yield ErrEmptySymbol or
// ErrInvalidSymbol. A symbol already present yields ErrDuplicateSymbol
// unless the collection was built with WithReplacement.
func (c *Collection) Add(m *Material) error {
	if m == nil {
		return ErrNilMaterial
	}
	if m.Symbol == "" {
		return ErrEmptySymbol
	}
	if !validSymbol(m.Symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, m.Symbol)
	}
	if _, ok := c.items[m.Symbol]; ok {
		if !c.replace {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, m.Symbol)
		}
		c.items[m.Symbol] = m

		return nil
	}

	c.order = append(c.order, m.Symbol)
	c.items[m.Symbol] = m

	return nil
}

// Get returns the material registered under symbol (case-sensitive), or
// ErrNotFound.
func (c *Collection) Get(symbol string) (*Material, error) {
	m, ok := c.items[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}

	return m, nil
}

// Materials returns the registered materials in insertion order.
func (c *Collection) Materials() []*Material {
	out := make([]*Material, len(c.order))
	for i, symbol := range c.order {
		out[i] = c.items[symbol]
	}

	return out
}

// Symbols returns the registered symbols in insertion order.
func (c *Collection) Symbols() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len reports the number of registered materials.
func (c *Collection) Len() int {
	return len(c.order)
}

// validSymbol reports whether symbol is an identifier-like token:
// ASCII letters, digits, and underscore, not starting with a digit.
func validSymbol(symbol string) bool {
	for i, r := range symbol {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return symbol != ""
}
