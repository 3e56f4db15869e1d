// Package classfile reads just enough of a JVM .class file to identify the
// class it declares.
package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Header is the fixed part of a class file: everything up to and including
// the super class, with names already looked up in the constant pool.
type Header struct {
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  AccessFlags
	// ThisClass and SuperClass are internal names (java/lang/String).
	ThisClass  string
	SuperClass string
}

// ClassName returns the dotted name of the declared class.
func (h *Header) ClassName() string {
	return InternalToSourceName(h.ThisClass)
}

func (h *Header) IsInterface() bool {
	return h.AccessFlags.IsInterface() && !h.AccessFlags.IsAnnotation()
}

func (h *Header) IsAnnotation() bool { return h.AccessFlags.IsAnnotation() }
func (h *Header) IsEnum() bool       { return h.AccessFlags.IsEnum() }
func (h *Header) IsModule() bool     { return h.AccessFlags.IsModule() }

// Kind names the declaration: class, interface, enum, annotation or module.
func (h *Header) Kind() string {
	switch {
	case h.IsModule():
		return "module"
	case h.IsAnnotation():
		return "annotation"
	case h.IsInterface():
		return "interface"
	case h.IsEnum():
		return "enum"
	}
	return "class"
}

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func (r *reader) skip(n int) {
	if r.err != nil {
		return
	}
	_, r.err = io.CopyN(io.Discard, r.r, int64(n))
}

// pool keeps only the constants needed to name classes.
type pool struct {
	utf8    map[uint16]string
	classes map[uint16]uint16
}

func (p *pool) className(index uint16) string {
	nameIndex, ok := p.classes[index]
	if !ok {
		return ""
	}
	return p.utf8[nameIndex]
}

func ParseHeaderFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open class file: %w", err)
	}
	defer f.Close()
	return ParseHeader(f)
}

// ParseHeader reads the class file header from rd. It stops after the super
// class index; interfaces, members and attributes are not read.
func ParseHeader(rd io.Reader) (*Header, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	h := &Header{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("read version: %w", r.err)
	}

	count := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("read constant pool count: %w", r.err)
	}

	cp := &pool{
		utf8:    make(map[uint16]string),
		classes: make(map[uint16]uint16),
	}
	for i := uint16(1); i < count; i++ {
		tag := ConstantTag(r.readU1())
		switch tag {
		case ConstantUtf8:
			length := r.readU2()
			cp.utf8[i] = decodeModifiedUtf8(r.readBytes(int(length)))
		case ConstantClass:
			cp.classes[i] = r.readU2()
		default:
			size, ok := tag.payloadSize()
			if !ok && r.err == nil {
				return nil, fmt.Errorf("read constant pool entry %d: unknown tag %d", i, tag)
			}
			r.skip(size)
			if tag.wide() {
				i++
			}
		}
		if r.err != nil {
			return nil, fmt.Errorf("read constant pool entry %d: %w", i, r.err)
		}
	}

	h.AccessFlags = AccessFlags(r.readU2())
	thisClass := r.readU2()
	superClass := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("read class info: %w", r.err)
	}

	h.ThisClass = cp.className(thisClass)
	if h.ThisClass == "" {
		return nil, fmt.Errorf("read class info: this_class %d is not a class constant", thisClass)
	}
	if superClass != 0 {
		h.SuperClass = cp.className(superClass)
	}

	return h, nil
}

// decodeModifiedUtf8 decodes the JVM's modified UTF-8, including surrogate
// pairs encoded as two three-byte sequences.
func decodeModifiedUtf8(b []byte) string {
	runes := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			runes = append(runes, rune(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			runes = append(runes, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF && i+5 < len(b) && b[i+3] == 0xED {
				low := rune(b[i+3]&0x0F)<<12 | rune(b[i+4]&0x3F)<<6 | rune(b[i+5]&0x3F)
				if low >= 0xDC00 && low <= 0xDFFF {
					runes = append(runes, 0x10000+((r-0xD800)<<10)+(low-0xDC00))
					i += 6
					continue
				}
			}
			runes = append(runes, r)
			i += 3
		default:
			runes = append(runes, rune(c))
			i++
		}
	}
	return string(runes)
}
