// Package classfiletest assembles class files for tests.
package classfiletest

import (
	"encoding/binary"
	"math"
)

// Java 8 class file version, the default for built classes.
const defaultMajorVersion = 52

// Default access flags: ACC_PUBLIC | ACC_SUPER.
const defaultAccess = 0x0021

// Builder assembles a class file. Constants are interned as attributes and members are
// added, so every helper must run before Bytes.
type Builder struct {
	major      uint16
	access     uint16
	pool       []byte
	next       uint16
	utf8s      map[string]uint16
	classes    map[string]uint16
	this       uint16
	super      uint16
	interfaces []uint16
	fields     [][]byte
	methods    [][]byte
	attributes [][]byte
}

// Attribute serializes one attribute, interning the constants it needs.
type Attribute func(b *Builder) []byte

// New starts a class with the given internal name and superclass. An empty super leaves
// super_class at 0, as for java/lang/Object.
func New(name, super string) *Builder {
	b := &Builder{
		major:   defaultMajorVersion,
		access:  defaultAccess,
		next:    1,
		utf8s:   make(map[string]uint16),
		classes: make(map[string]uint16),
	}
	b.this = b.Class(name)
	if super != "" {
		b.super = b.Class(super)
	}
	return b
}

// Version sets the class file major version.
func (b *Builder) Version(major uint16) *Builder {
	b.major = major
	return b
}

// Access sets the class access flags.
func (b *Builder) Access(flags uint16) *Builder {
	b.access = flags
	return b
}

// Implements adds superinterfaces.
func (b *Builder) Implements(names ...string) *Builder {
	for _, name := range names {
		b.interfaces = append(b.interfaces, b.Class(name))
	}
	return b
}

// Field adds a field with the given descriptor and attributes.
func (b *Builder) Field(name, desc string, attrs ...Attribute) *Builder {
	b.fields = append(b.fields, b.member(name, desc, attrs))
	return b
}

// Method adds a method with the given descriptor and attributes.
func (b *Builder) Method(name, desc string, attrs ...Attribute) *Builder {
	b.methods = append(b.methods, b.member(name, desc, attrs))
	return b
}

// Attribute adds class level attributes.
func (b *Builder) Attribute(attrs ...Attribute) *Builder {
	for _, attr := range attrs {
		b.attributes = append(b.attributes, attr(b))
	}
	return b
}

func (b *Builder) member(name, desc string, attrs []Attribute) []byte {
	var out []byte
	out = u2(out, 0x0001)
	out = u2(out, b.Utf8(name))
	out = u2(out, b.Utf8(desc))
	out = u2(out, uint16(len(attrs)))
	for _, attr := range attrs {
		out = append(out, attr(b)...)
	}
	return out
}

// Utf8 interns a Utf8 constant.
func (b *Builder) Utf8(s string) uint16 {
	if idx, found := b.utf8s[s]; found {
		return idx
	}
	entry := []byte{1}
	entry = u2(entry, uint16(len(s)))
	entry = append(entry, s...)
	idx := b.add(entry, 1)
	b.utf8s[s] = idx
	return idx
}

// Class interns a Class constant for an internal name or array descriptor.
func (b *Builder) Class(name string) uint16 {
	if idx, found := b.classes[name]; found {
		return idx
	}
	nameIdx := b.Utf8(name)
	idx := b.add(u2([]byte{7}, nameIdx), 1)
	b.classes[name] = idx
	return idx
}

// NameAndType adds a NameAndType constant.
func (b *Builder) NameAndType(name, desc string) uint16 {
	nameIdx, descIdx := b.Utf8(name), b.Utf8(desc)
	return b.add(u2(u2([]byte{12}, nameIdx), descIdx), 1)
}

// FieldRef adds a Fieldref constant.
func (b *Builder) FieldRef(owner, name, desc string) uint16 {
	return b.memberRef(9, owner, name, desc)
}

// MethodRef adds a Methodref constant.
func (b *Builder) MethodRef(owner, name, desc string) uint16 {
	return b.memberRef(10, owner, name, desc)
}

func (b *Builder) memberRef(tag byte, owner, name, desc string) uint16 {
	classIdx, natIdx := b.Class(owner), b.NameAndType(name, desc)
	return b.add(u2(u2([]byte{tag}, classIdx), natIdx), 1)
}

// MethodType adds a MethodType constant.
func (b *Builder) MethodType(desc string) uint16 {
	descIdx := b.Utf8(desc)
	return b.add(u2([]byte{16}, descIdx), 1)
}

// Long adds a Long constant, which takes two pool slots.
func (b *Builder) Long(v int64) uint16 {
	entry := binary.BigEndian.AppendUint64([]byte{5}, uint64(v))
	return b.add(entry, 2)
}

// Double adds a Double constant, which takes two pool slots.
func (b *Builder) Double(v float64) uint16 {
	entry := binary.BigEndian.AppendUint64([]byte{6}, math.Float64bits(v))
	return b.add(entry, 2)
}

// String adds a String constant.
func (b *Builder) String(s string) uint16 {
	idx := b.Utf8(s)
	return b.add(u2([]byte{8}, idx), 1)
}

// RawConstant appends pre-serialized constant bytes occupying the given number of slots.
func (b *Builder) RawConstant(entry []byte, slots uint16) uint16 {
	return b.add(entry, slots)
}

func (b *Builder) add(entry []byte, slots uint16) uint16 {
	idx := b.next
	b.pool = append(b.pool, entry...)
	b.next += slots
	return idx
}

// Bytes serializes the class file.
func (b *Builder) Bytes() []byte {
	out := binary.BigEndian.AppendUint32(nil, 0xCAFEBABE)
	out = u2(out, 0)
	out = u2(out, b.major)
	out = u2(out, b.next)
	out = append(out, b.pool...)
	out = u2(out, b.access)
	out = u2(out, b.this)
	out = u2(out, b.super)
	out = u2(out, uint16(len(b.interfaces)))
	for _, idx := range b.interfaces {
		out = u2(out, idx)
	}
	for _, section := range [][][]byte{b.fields, b.methods, b.attributes} {
		out = u2(out, uint16(len(section)))
		for _, item := range section {
			out = append(out, item...)
		}
	}
	return out
}

func u2(out []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(out, v)
}

func u4(out []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(out, v)
}
