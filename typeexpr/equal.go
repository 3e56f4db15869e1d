package typeexpr

// Equal reports whether a and b are structurally identical. Handles are
// compared by name.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Primitive:
		return x == b.(Primitive)
	case *Class:
		return handleName(x.Handle) == handleName(b.(*Class).Handle)
	case *Parameterized:
		y := b.(*Parameterized)
		if !Equal(x.Raw, y.Raw) || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Array:
		y := b.(*Array)
		return x.Dimensions == y.Dimensions &&
			handleName(x.Handle) == handleName(y.Handle) &&
			Equal(x.Component, y.Component)
	case *GenericArray:
		return Equal(x.Component, b.(*GenericArray).Component)
	case *Wildcard:
		y := b.(*Wildcard)
		return x.Bound == y.Bound && Equal(x.Type, y.Type)
	}
	return false
}

func handleName(h Handle) string {
	if h == nil {
		return ""
	}
	return h.Name()
}

// Walk visits t and its children in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(t Type, fn func(Type) bool) {
	if t == nil || !fn(t) {
		return
	}
	switch x := t.(type) {
	case *Parameterized:
		Walk(x.Raw, fn)
		for _, arg := range x.Args {
			Walk(arg, fn)
		}
	case *Array:
		Walk(x.Component, fn)
	case *GenericArray:
		Walk(x.Component, fn)
	case *Wildcard:
		Walk(x.Type, fn)
	}
}

// ClassNames returns the distinct class names referenced by t in the order
// they first appear.
func ClassNames(t Type) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(t, func(n Type) bool {
		if c, ok := n.(*Class); ok && !seen[c.Name()] {
			seen[c.Name()] = true
			names = append(names, c.Name())
		}
		return true
	})
	return names
}
