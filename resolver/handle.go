// Package resolver provides typeexpr.Resolver implementations: static
// tables, a table of common JDK types, a classpath scanner, and the Cache
// and Chain combinators.
package resolver

import (
	"errors"
	"fmt"

	"github.com/dhamidi/jtype/classfile"
	"github.com/dhamidi/jtype/typeexpr"
)

// ErrNotFound is returned, wrapped, when a resolver does not know a name.
var ErrNotFound = errors.New("type not found")

func notFound(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ClassHandle identifies a class known to a resolver.
type ClassHandle struct {
	ClassName string
	// Kind is class, interface, enum, annotation or empty when unknown.
	Kind  string
	Flags classfile.AccessFlags
	// Source says where the class was found: "builtin", a YAML file, a
	// directory or a jar.
	Source string
}

func (h *ClassHandle) Name() string { return h.ClassName }

func (h *ClassHandle) String() string {
	if h.Kind == "" {
		return h.ClassName
	}
	return h.Kind + " " + h.ClassName
}

// ArrayHandle identifies an array type by its descriptor name. Exactly one
// of Primitive and Component is set.
type ArrayHandle struct {
	Descriptor string
	Dimensions int
	Primitive  typeexpr.Primitive
	Component  *ClassHandle
}

func (h *ArrayHandle) Name() string { return h.Descriptor }

// resolveArray resolves an array name by looking up its component class
// with lookup.
func resolveArray(name string, lookup func(string) (*ClassHandle, error)) (*ArrayHandle, error) {
	ac, err := typeexpr.ParseArrayName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	h := &ArrayHandle{Descriptor: name, Dimensions: ac.Dimensions, Primitive: ac.Primitive}
	if ac.ClassName == "" {
		return h, nil
	}
	component, err := lookup(ac.ClassName)
	if err != nil {
		return nil, err
	}
	h.Component = component
	return h, nil
}
