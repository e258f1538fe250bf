package varcell

import (
	"fmt"
	"sync"
	"unsafe"
)

// Unit is a named group of kinds contributed together, such as the built-in
// scalars or the kinds of one host environment. Units do not know about each
// other; the width of a composed cell is the max over the units it links.
type Unit struct {
	name  string
	kinds []Descriptor
	width int
}

func NewUnit(name string, kinds ...Descriptor) Unit {
	u := Unit{name: name, kinds: make([]Descriptor, len(kinds))}
	copy(u.kinds, kinds)
	for _, k := range kinds {
		u.width = max(u.width, k.Size())
	}
	return u
}

func (u Unit) Name() string { return u.name }

// Kinds returns a copy of the unit's kinds in declaration order.
func (u Unit) Kinds() []Descriptor {
	out := make([]Descriptor, len(u.kinds))
	copy(out, u.kinds)
	return out
}

// Width is the size of the unit's widest kind.
func (u Unit) Width() int { return u.width }

// Catalog assembles units into the registered kind set. Its width only
// grows: there is no way to remove a unit once added.
type Catalog struct {
	mu     sync.RWMutex
	units  []Unit
	kinds  []Descriptor
	byName map[string]Descriptor
	width  int
}

// NewCatalog returns a catalog holding units, in order.
func NewCatalog(units ...Unit) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Descriptor)}
	for _, u := range units {
		if _, err := c.Add(u); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers every kind of u. It reports whether the catalog width grew.
// A unit holding a kind name already present is rejected as a whole.
func (c *Catalog) Add(u Unit) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{}, len(u.kinds))
	for _, k := range u.kinds {
		if _, ok := c.byName[k.Name()]; ok {
			return false, fmt.Errorf("%w: %s (unit %s)", ErrDuplicateKind, k.Name(), u.name)
		}
		if _, ok := seen[k.Name()]; ok {
			return false, fmt.Errorf("%w: %s (unit %s)", ErrDuplicateKind, k.Name(), u.name)
		}
		seen[k.Name()] = struct{}{}
	}

	for _, k := range u.kinds {
		c.byName[k.Name()] = k
		c.kinds = append(c.kinds, k)
	}
	c.units = append(c.units, u)

	if u.width > c.width {
		c.width = u.width
		return true, nil
	}
	return false, nil
}

// Width is the backing width a cell needs to hold every catalogued kind.
func (c *Catalog) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

func (c *Catalog) Lookup(name string) (Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return d, nil
}

// Kinds returns every catalogued kind in registration order.
func (c *Catalog) Kinds() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Descriptor, len(c.kinds))
	copy(out, c.kinds)
	return out
}

func (c *Catalog) Units() []Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Fits checks that every kind in c fits a cell built on S.
func Fits[S Storage](c *Catalog) error {
	var s S
	w := int(unsafe.Sizeof(s))
	for _, k := range c.Kinds() {
		if k.Size() > w {
			return fmt.Errorf("%w: %s needs %d bytes, cell has %d", ErrKindTooWide, k.Name(), k.Size(), w)
		}
	}
	return nil
}
