package typeexpr

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of t to w, one node per line.
func Fprint(w io.Writer, t Type) error {
	return fprint(w, t, 0)
}

// Tree returns the outline Fprint would write.
func Tree(t Type) string {
	var sb strings.Builder
	fprint(&sb, t, 0)
	return sb.String()
}

func fprint(w io.Writer, t Type, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	switch x := t.(type) {
	case Primitive:
		_, err = fmt.Fprintf(w, "%sprimitive %s\n", indent, x)
	case *Class:
		_, err = fmt.Fprintf(w, "%sclass %s\n", indent, x.Name())
	case *Parameterized:
		if _, err = fmt.Fprintf(w, "%sparameterized %s\n", indent, x.Raw.Name()); err != nil {
			return err
		}
		for _, arg := range x.Args {
			if err = fprint(w, arg, depth+1); err != nil {
				return err
			}
		}
	case *Array:
		if _, err = fmt.Fprintf(w, "%sarray %s dimensions=%d\n", indent, handleName(x.Handle), x.Dimensions); err != nil {
			return err
		}
		err = fprint(w, x.Component, depth+1)
	case *GenericArray:
		if _, err = fmt.Fprintf(w, "%sgeneric array\n", indent); err != nil {
			return err
		}
		err = fprint(w, x.Component, depth+1)
	case *Wildcard:
		if x.Bound == BoundNone {
			_, err = fmt.Fprintf(w, "%swildcard\n", indent)
			break
		}
		if _, err = fmt.Fprintf(w, "%swildcard %s\n", indent, x.Bound); err != nil {
			return err
		}
		err = fprint(w, x.Type, depth+1)
	}
	return err
}
