// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"

	"gioui.org/flowkit/internal/warn"
	"gioui.org/flowkit/widget"
)

var (
	// ErrNotChild is returned by the child property accessors when
	// the child is not a direct child of the parent.
	ErrNotChild = errors.New("layout: not a child of the manager")
	// ErrUnknownProperty is returned for property names the manager
	// does not define.
	ErrUnknownProperty = errors.New("layout: unknown property")
	// ErrPropertyType is returned when a property value has the
	// wrong type.
	ErrPropertyType = errors.New("layout: wrong property type")
)

type property struct {
	name string
	get  func(m Manager) interface{}
	set  func(m Manager, v interface{}) error
}

type childProperty struct {
	name string
	get  func(parent, child Manager) interface{}
	set  func(parent, child Manager, v interface{}) error
}

var managerProperties = []property{
	{
		name: "border-width",
		get:  func(m Manager) interface{} { return m.BorderWidth() },
		set: func(m Manager, v interface{}) error {
			w, ok := v.(int)
			if !ok {
				return fmt.Errorf("%w: border-width is an int, not %T", ErrPropertyType, v)
			}
			m.SetBorderWidth(w)
			return nil
		},
	},
}

var adaptorProperties = append(managerProperties[:len(managerProperties):len(managerProperties)],
	property{
		name: "child",
		get: func(m Manager) interface{} {
			if w := m.(*Adaptor).Child(); w != nil {
				return w
			}
			return nil
		},
		set: func(m Manager, v interface{}) error {
			if v == nil {
				m.(*Adaptor).SetChild(nil)
				return nil
			}
			w, ok := v.(widget.Widget)
			if !ok {
				return fmt.Errorf("%w: child is a widget.Widget, not %T", ErrPropertyType, v)
			}
			m.(*Adaptor).SetChild(w)
			return nil
		},
	},
)

var compositeChildProperties = []childProperty{
	{
		name: "position",
		get: func(parent, child Manager) interface{} {
			return parent.(positioner).position(child)
		},
		set: func(parent, child Manager, v interface{}) error {
			pos, ok := v.(int)
			if !ok {
				return fmt.Errorf("%w: position is an int, not %T", ErrPropertyType, v)
			}
			parent.(positioner).reorder(child, pos)
			return nil
		},
	},
}

type positioner interface {
	position(child Manager) int
	reorder(child Manager, pos int)
}

func lookup(props []property, name string) (property, bool) {
	for _, p := range props {
		if p.name == name {
			return p, true
		}
	}
	return property{}, false
}

func lookupChild(props []childProperty, name string) (childProperty, bool) {
	for _, p := range props {
		if p.name == name {
			return p, true
		}
	}
	return childProperty{}, false
}

// Set assigns properties given as name, value pairs. Notifications
// are emitted once all pairs are applied. Invalid pairs are reported
// as warnings and skipped.
func Set(m Manager, pairs ...interface{}) {
	e := m.embed()
	e.Notified.Freeze()
	defer e.Notified.Thaw()
	forPairs(m, pairs, func(name string, v interface{}) {
		p, ok := lookup(m.properties(), name)
		if !ok {
			warn.Printf("%T has no property named %q", m, name)
			return
		}
		if err := p.set(m, v); err != nil {
			warn.Printf("%T: %v", m, err)
		}
	})
}

// Get returns the value of the named property.
func Get(m Manager, name string) (interface{}, error) {
	p, ok := lookup(m.properties(), name)
	if !ok {
		return nil, fmt.Errorf("%w %q for %T", ErrUnknownProperty, name, m)
	}
	return p.get(m), nil
}

// Properties lists the property names of m.
func Properties(m Manager) []string {
	var names []string
	for _, p := range m.properties() {
		names = append(names, p.name)
	}
	return names
}

// ChildSet assigns child properties of child, which must be a direct
// child of parent.
func ChildSet(parent, child Manager, pairs ...interface{}) error {
	if child == nil || child.Parent() != parent {
		return ErrNotChild
	}
	ce := child.embed()
	ce.ChildNotified.Freeze()
	defer ce.ChildNotified.Thaw()
	var err error
	forPairs(parent, pairs, func(name string, v interface{}) {
		p, ok := lookupChild(parent.childProperties(), name)
		if !ok {
			warn.Printf("%T has no child property named %q", parent, name)
			err = fmt.Errorf("%w %q for children of %T", ErrUnknownProperty, name, parent)
			return
		}
		if e := p.set(parent, child, v); e != nil {
			err = e
		}
	})
	return err
}

// ChildGet returns the value of a child property of child.
func ChildGet(parent, child Manager, name string) (interface{}, error) {
	if child == nil || child.Parent() != parent {
		return nil, ErrNotChild
	}
	p, ok := lookupChild(parent.childProperties(), name)
	if !ok {
		return nil, fmt.Errorf("%w %q for children of %T", ErrUnknownProperty, name, parent)
	}
	return p.get(parent, child), nil
}

// AddWithProperties adds child to parent and sets child properties
// given as name, value pairs.
func AddWithProperties(parent, child Manager, pairs ...interface{}) {
	parent.Add(child)
	if child == nil || child.Parent() != parent {
		return
	}
	if err := ChildSet(parent, child, pairs...); err != nil {
		warn.Printf("%T: %v", parent, err)
	}
}

// Children returns the direct children of m in order.
func Children(m Manager) []Manager {
	var children []Manager
	m.Foreach(func(c Manager) {
		children = append(children, c)
	})
	return children
}

func forPairs(m Manager, pairs []interface{}, fn func(name string, v interface{})) {
	if len(pairs)%2 != 0 {
		warn.Printf("%T: odd number of property arguments", m)
		pairs = pairs[:len(pairs)-1]
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			warn.Printf("%T: property name %v is not a string", m, pairs[i])
			continue
		}
		fn(name, pairs[i+1])
	}
}
