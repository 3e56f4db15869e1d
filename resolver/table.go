package resolver

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/jtype/typeexpr"
)

// Table resolves names from an in-memory set of known classes. Array names
// resolve when their component class is known.
type Table struct {
	mu      sync.RWMutex
	classes map[string]*ClassHandle
}

// NewTable returns a table containing the given dotted class names.
func NewTable(names ...string) *Table {
	t := &Table{classes: make(map[string]*ClassHandle)}
	for _, name := range names {
		t.Add(&ClassHandle{ClassName: name, Source: "table"})
	}
	return t
}

func (t *Table) Add(h *ClassHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.classes[h.ClassName] = h
}

// Merge copies every class of other into t.
func (t *Table) Merge(other *Table) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, h := range other.classes {
		t.classes[name] = h
	}
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.classes)
}

// Names returns the known class names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.classes))
	for name := range t.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) Resolve(name string) (typeexpr.Handle, error) {
	if typeexpr.IsArrayName(name) {
		return resolveArray(name, t.lookup)
	}
	return t.lookup(name)
}

func (t *Table) lookup(name string) (*ClassHandle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.classes[name]
	if !ok {
		return nil, notFound(name)
	}
	return h, nil
}

// tableFile is the YAML layout of a type table:
//
//	packages:
//	  java.util: [List, Map, Map$Entry]
//	classes:
//	  com.acme.Widget: interface
type tableFile struct {
	Packages map[string][]string `yaml:"packages"`
	Classes  map[string]string   `yaml:"classes"`
}

// LoadTable reads a YAML type table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read type table: %w", err)
	}
	t, err := parseTable(data, path)
	if err != nil {
		return nil, fmt.Errorf("parse type table %s: %w", path, err)
	}
	return t, nil
}

// ParseTable decodes a YAML type table.
func ParseTable(data []byte) (*Table, error) {
	return parseTable(data, "table")
}

func parseTable(data []byte, source string) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	t := NewTable()
	for pkg, simpleNames := range file.Packages {
		for _, simple := range simpleNames {
			name := pkg + "." + simple
			if !validClassName(name) {
				return nil, fmt.Errorf("invalid class name %q", name)
			}
			t.Add(&ClassHandle{ClassName: name, Source: source})
		}
	}
	for name, kind := range file.Classes {
		if !validClassName(name) {
			return nil, fmt.Errorf("invalid class name %q", name)
		}
		switch kind {
		case "", "class", "interface", "enum", "annotation":
		default:
			return nil, fmt.Errorf("class %s: unknown kind %q", name, kind)
		}
		t.Add(&ClassHandle{ClassName: name, Kind: kind, Source: source})
	}
	return t, nil
}

func validClassName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return false
	}
	return !strings.Contains(name, "..") && !strings.ContainsAny(name, " \t<>[],?;/")
}
