package resolver

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns a new table holding common java.lang, java.util, java.io
// and java.time types. Callers may add to it freely.
func Builtin() *Table {
	t, err := parseTable(builtinYAML, "builtin")
	if err != nil {
		panic(fmt.Sprintf("resolver: embedded builtin table: %v", err))
	}
	return t
}
