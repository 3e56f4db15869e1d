package typeexpr

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jtype/classfile"
)

// ArrayName builds the reflective name of an array type, one '[' per
// dimension followed by the primitive code or L<dotted.Name>;. This is the
// name a Resolver receives for int[][] ("[[I") or String[] ("[Ljava.lang.String;").
func ArrayName(component Type, dims int) (string, error) {
	if dims < 1 {
		return "", fmt.Errorf("array name: dimensions must be at least 1, got %d", dims)
	}
	prefix := strings.Repeat("[", dims)
	switch c := component.(type) {
	case Primitive:
		if c == Void {
			return "", fmt.Errorf("array name: void cannot be an array component")
		}
		return prefix + string(c.Descriptor()), nil
	case *Class:
		return prefix + "L" + c.Name() + ";", nil
	}
	return "", fmt.Errorf("array name: %s component %s has no flat array name", component.Kind(), component)
}

// IsArrayName reports whether name looks like an array descriptor name.
func IsArrayName(name string) bool {
	return strings.HasPrefix(name, "[")
}

// ArrayComponent is the decoded form of an array name: exactly one of
// Primitive and ClassName is set.
type ArrayComponent struct {
	Primitive  Primitive
	ClassName  string
	Dimensions int
}

// ParseArrayName decodes an array name produced by ArrayName. Class names
// are returned in dotted form.
func ParseArrayName(name string) (ArrayComponent, error) {
	if !IsArrayName(name) {
		return ArrayComponent{}, fmt.Errorf("parse array name %q: not an array", name)
	}
	ft, err := classfile.ParseFieldDescriptor(name)
	if err != nil {
		return ArrayComponent{}, fmt.Errorf("parse array name: %w", err)
	}
	ac := ArrayComponent{Dimensions: ft.ArrayDepth}
	if ft.BaseType != "" {
		ac.Primitive = Primitive(ft.BaseType)
	} else {
		ac.ClassName = classfile.InternalToSourceName(ft.ClassName)
	}
	return ac, nil
}

// Descriptor returns the erased JVM field descriptor of t, e.g.
// "Ljava/util/List;" for java.util.List<java.lang.String>. Wildcards erase
// to their upper bound, or java.lang.Object.
func Descriptor(t Type) string {
	var sb strings.Builder
	writeDescriptor(&sb, t)
	return sb.String()
}

func writeDescriptor(sb *strings.Builder, t Type) {
	switch x := t.(type) {
	case Primitive:
		sb.WriteByte(x.Descriptor())
	case *Class:
		writeClassRef(sb, x.Name())
		sb.WriteByte(';')
	case *Parameterized:
		writeDescriptor(sb, x.Raw)
	case *Array:
		sb.WriteString(strings.Repeat("[", x.Dimensions))
		writeDescriptor(sb, x.Component)
	case *GenericArray:
		sb.WriteByte('[')
		writeDescriptor(sb, x.Component)
	case *Wildcard:
		if x.Bound == BoundExtends && x.Type != nil {
			writeDescriptor(sb, x.Type)
			return
		}
		sb.WriteString("Ljava/lang/Object;")
	}
}

// Signature returns the JVM generic signature of t as stored in a
// Signature attribute, e.g. "Ljava/util/List<+Ljava/lang/Number;>;".
func Signature(t Type) string {
	var sb strings.Builder
	writeSignature(&sb, t)
	return sb.String()
}

func writeSignature(sb *strings.Builder, t Type) {
	switch x := t.(type) {
	case Primitive:
		sb.WriteByte(x.Descriptor())
	case *Class:
		writeClassRef(sb, x.Name())
		sb.WriteByte(';')
	case *Parameterized:
		writeClassRef(sb, x.Raw.Name())
		sb.WriteByte('<')
		for _, arg := range x.Args {
			writeSignature(sb, arg)
		}
		sb.WriteString(">;")
	case *Array:
		sb.WriteString(strings.Repeat("[", x.Dimensions))
		writeSignature(sb, x.Component)
	case *GenericArray:
		sb.WriteByte('[')
		writeSignature(sb, x.Component)
	case *Wildcard:
		switch x.Bound {
		case BoundExtends:
			sb.WriteByte('+')
			writeSignature(sb, x.Type)
		case BoundSuper:
			sb.WriteByte('-')
			writeSignature(sb, x.Type)
		default:
			sb.WriteByte('*')
		}
	}
}

func writeClassRef(sb *strings.Builder, name string) {
	sb.WriteByte('L')
	sb.WriteString(classfile.SourceToInternalName(name))
}
