package resolver

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jtype/classfile"
	"github.com/dhamidi/jtype/typeexpr"
)

// location is where a class file lives: a plain file, or an entry inside a
// jar when archive is set.
type location struct {
	archive string
	path    string
}

func (l location) String() string {
	if l.archive == "" {
		return l.path
	}
	return l.archive + "!" + l.path
}

// Classpath resolves names against class files in directories and jars.
// Entries are indexed by file name on first use; a class header is only
// read when its name is resolved.
type Classpath struct {
	entries []string
	log     commonlog.Logger

	scanOnce sync.Once
	index    map[string]location

	mu      sync.Mutex
	handles map[string]*ClassHandle
}

func NewClasspath(entries ...string) *Classpath {
	return &Classpath{
		entries: entries,
		log:     commonlog.GetLogger("jtype.resolver.classpath"),
		handles: make(map[string]*ClassHandle),
	}
}

// SplitClasspath splits a classpath string on the OS list separator and
// expands glob entries such as lib/*.jar. A trailing "*" matches jars only,
// as in java -cp.
func SplitClasspath(cp string) ([]string, error) {
	var entries []string
	for _, entry := range filepath.SplitList(cp) {
		if entry == "" {
			continue
		}
		if entry == "*" || strings.HasSuffix(entry, string(filepath.Separator)+"*") || strings.HasSuffix(entry, "/*") {
			entry += ".jar"
		}
		if !strings.ContainsAny(entry, "*?[") {
			entries = append(entries, entry)
			continue
		}
		matches, err := filepath.Glob(entry)
		if err != nil {
			return nil, fmt.Errorf("expand classpath entry %s: %w", entry, err)
		}
		entries = append(entries, matches...)
	}
	return entries, nil
}

func (c *Classpath) Entries() []string {
	return c.entries
}

// Len returns the number of indexed classes.
func (c *Classpath) Len() int {
	c.scan()
	return len(c.index)
}

func (c *Classpath) Resolve(name string) (typeexpr.Handle, error) {
	c.scan()
	if typeexpr.IsArrayName(name) {
		return resolveArray(name, c.lookup)
	}
	return c.lookup(name)
}

// lookup reads class headers without holding c.mu, so lookups of different
// names proceed in parallel. The first handle stored for a name wins.
func (c *Classpath) lookup(name string) (*ClassHandle, error) {
	c.mu.Lock()
	h, ok := c.handles[name]
	c.mu.Unlock()
	if ok {
		return h, nil
	}
	loc, ok := c.index[name]
	if !ok {
		return nil, notFound(name)
	}

	header, err := readHeader(loc)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}
	if header.ClassName() != name {
		return nil, fmt.Errorf("resolve %s: %s declares %s", name, loc, header.ClassName())
	}

	h = &ClassHandle{
		ClassName: name,
		Kind:      header.Kind(),
		Flags:     header.AccessFlags,
		Source:    loc.String(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.handles[name]; ok {
		return existing, nil
	}
	c.handles[name] = h
	return h, nil
}

func (c *Classpath) scan() {
	c.scanOnce.Do(func() {
		c.index = make(map[string]location)
		for _, entry := range c.entries {
			info, err := os.Stat(entry)
			if err != nil {
				c.log.Warningf("skipping classpath entry %s: %v", entry, err)
				continue
			}
			if info.IsDir() {
				err = c.scanDir(entry)
			} else {
				err = c.scanJar(entry)
			}
			if err != nil {
				c.log.Warningf("skipping classpath entry %s: %v", entry, err)
			}
		}
		c.log.Debugf("indexed %d classes from %d classpath entries", len(c.index), len(c.entries))
	})
}

func (c *Classpath) scanDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		c.add(filepath.ToSlash(rel), location{path: path})
		return nil
	})
}

func (c *Classpath) scanJar(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open jar: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		c.add(f.Name, location{archive: path, path: f.Name})
	}
	return nil
}

// add indexes a class file by its path relative to the classpath root.
// Earlier entries win, as on the JVM.
func (c *Classpath) add(rel string, loc location) {
	if !strings.HasSuffix(rel, ".class") {
		return
	}
	internal := strings.TrimSuffix(rel, ".class")
	if base := filepath.Base(internal); base == "module-info" || base == "package-info" {
		return
	}
	if strings.HasPrefix(internal, "META-INF/") {
		return
	}
	name := classfile.InternalToSourceName(internal)
	if _, exists := c.index[name]; !exists {
		c.index[name] = loc
	}
}

func readHeader(loc location) (*classfile.Header, error) {
	if loc.archive == "" {
		return classfile.ParseHeaderFile(loc.path)
	}

	r, err := zip.OpenReader(loc.archive)
	if err != nil {
		return nil, fmt.Errorf("open jar: %w", err)
	}
	defer r.Close()

	f, err := r.Open(loc.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	defer f.Close()
	return classfile.ParseHeader(f)
}
