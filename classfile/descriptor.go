package classfile

import (
	"fmt"
	"strings"
)

// FieldType is a decoded field descriptor such as "[[I" or
// "Ljava/lang/String;".
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

func (ft *FieldType) String() string {
	var sb strings.Builder
	if ft.BaseType != "" {
		sb.WriteString(ft.BaseType)
	} else {
		sb.WriteString(InternalToSourceName(ft.ClassName))
	}
	for i := 0; i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ft *FieldType) IsArray() bool {
	return ft.ArrayDepth > 0
}

func (ft *FieldType) IsPrimitive() bool {
	return ft.BaseType != "" && ft.ArrayDepth == 0
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// ParseFieldDescriptor decodes a complete field descriptor. The class name
// is kept as written, so both "Ljava/lang/String;" and the reflective form
// "Ljava.lang.String;" are accepted.
func ParseFieldDescriptor(desc string) (*FieldType, error) {
	ft := &FieldType{}
	i := 0
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return nil, fmt.Errorf("invalid descriptor %q: missing component type", desc)
	}

	if base, ok := baseTypes[desc[i]]; ok {
		if i+1 != len(desc) {
			return nil, fmt.Errorf("invalid descriptor %q: trailing characters", desc)
		}
		ft.BaseType = base
		return ft, nil
	}

	if desc[i] != 'L' {
		return nil, fmt.Errorf("invalid descriptor %q: unexpected %q", desc, desc[i])
	}
	semicolon := strings.IndexByte(desc[i:], ';')
	if semicolon <= 1 {
		return nil, fmt.Errorf("invalid descriptor %q: unterminated class name", desc)
	}
	if i+semicolon+1 != len(desc) {
		return nil, fmt.Errorf("invalid descriptor %q: trailing characters", desc)
	}
	ft.ClassName = desc[i+1 : i+semicolon]
	return ft, nil
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
