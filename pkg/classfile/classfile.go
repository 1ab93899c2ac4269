package classfile

import (
	"errors"
	"fmt"

	"github.com/lerenn/dependency-analyzer/pkg/classname"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=classfile.go -destination=mocks/classfile.gen.go -package=mocks

const (
	// Magic is the leading four bytes of every class file.
	Magic = 0xCAFEBABE
	// MinMajorVersion is the oldest class file major version accepted (JDK 1.0.2).
	MinMajorVersion = 45
	// Suffix is the file name suffix identifying a compiled class unit.
	Suffix = ".class"

	// AccModule marks a module descriptor (module-info.class).
	AccModule = 0x8000
)

// ClassFile holds what was recovered from one compiled class.
type ClassFile struct {
	// Name is the dotted name of the class itself. Empty when it could not be recovered.
	Name string
	// SuperName is the dotted name of the superclass, empty for java.lang.Object and modules.
	SuperName    string
	Interfaces   []string
	AccessFlags  uint16
	MajorVersion uint16
	// References holds every referenced class except the class itself.
	References classname.Set
	// Anomaly is set when parsing stopped or skipped a region because of inconsistent data.
	// References recovered before the anomaly are still reported.
	Anomaly error
}

// IsModule reports whether the class file is a module descriptor.
func (cf *ClassFile) IsModule() bool {
	return cf.AccessFlags&AccModule != 0
}

// Reader parses class files.
type Reader interface {
	// Parse reads a class file, recovering as much as possible from inconsistent data.
	// It only fails with ErrMalformedInput when the header cannot be read.
	Parse(data []byte) (*ClassFile, error)

	// ExtractReferences returns the classes referenced by a class file, excluding itself.
	ExtractReferences(data []byte) (classname.Set, error)

	// ReadClassName returns the dotted name of the class defined by a class file.
	ReadClassName(data []byte) (string, error)

	// ReadDeclaration reads the access flags, name, superclass and interfaces of a class
	// file without visiting its members or attributes. References is left empty.
	ReadDeclaration(data []byte) (*ClassFile, error)
}

type realReader struct {
	// No fields needed, parsing is stateless
}

// NewReader creates a new Reader instance.
func NewReader() Reader {
	return &realReader{}
}

// ExtractReferences returns the classes referenced by a class file, excluding itself.
func (r *realReader) ExtractReferences(data []byte) (classname.Set, error) {
	cf, err := r.Parse(data)
	if err != nil {
		return nil, err
	}
	return cf.References, nil
}

// ReadClassName returns the dotted name of the class defined by a class file.
func (r *realReader) ReadClassName(data []byte) (string, error) {
	cf, err := r.ReadDeclaration(data)
	if err != nil {
		return "", err
	}
	return cf.Name, nil
}

// ReadDeclaration reads the declaration part of a class file.
func (r *realReader) ReadDeclaration(data []byte) (*ClassFile, error) {
	cur := &cursor{data: data}
	major, err := readHeader(cur)
	if err != nil {
		return nil, err
	}

	pool, err := readConstantPool(cur)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoClassName, err)
	}

	cf := &ClassFile{
		MajorVersion: major,
		References:   classname.NewSet(),
	}
	readDeclaration(cur, pool, cf, func(string) {})
	if cf.Name == "" {
		return nil, ErrNoClassName
	}
	cf.Anomaly = cur.err
	return cf, nil
}

// Parse reads a class file, recovering as much as possible from inconsistent data.
func (r *realReader) Parse(data []byte) (*ClassFile, error) {
	cur := &cursor{data: data}
	major, err := readHeader(cur)
	if err != nil {
		return nil, err
	}

	cf := &ClassFile{
		MajorVersion: major,
		References:   classname.NewSet(),
	}
	col := &collector{refs: cf.References}

	col.pool, err = readConstantPool(cur)
	col.addPoolReferences()
	if err != nil {
		cf.Anomaly = fmt.Errorf("constant pool: %w", err)
		return cf, nil
	}

	cf.Anomaly = parseBody(cur, col, cf)

	if cf.Name != "" {
		cf.References.Remove(cf.Name)
	}
	return cf, nil
}

func readHeader(cur *cursor) (uint16, error) {
	magic := cur.u4()
	cur.u2() // minor
	major := cur.u2()
	switch {
	case cur.err != nil:
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, cur.err)
	case magic != Magic:
		return 0, fmt.Errorf("%w: bad magic 0x%08X", ErrMalformedInput, magic)
	case major < MinMajorVersion:
		return 0, fmt.Errorf("%w: unsupported major version %d", ErrMalformedInput, major)
	}
	return major, nil
}

// parseBody reads everything after the constant pool and returns the anomalies met, joined.
func parseBody(cur *cursor, col *collector, cf *ClassFile) error {
	var anomalies []error

	readDeclaration(cur, col.pool, cf, col.addInternal)
	if cur.err == nil && cf.Name == "" {
		anomalies = append(anomalies, ErrNoClassName)
	}

	// Fields then methods share the member_info layout.
	for section := 0; section < 2 && cur.err == nil; section++ {
		members := int(cur.u2())
		for i := 0; i < members && cur.err == nil; i++ {
			cur.u2() // access flags
			cur.u2() // name
			col.addDescriptor(col.pool.utf8(cur.u2()))
			if err := col.attributes(cur); err != nil {
				anomalies = append(anomalies, err)
			}
		}
	}

	if cur.err == nil {
		if err := col.attributes(cur); err != nil {
			anomalies = append(anomalies, err)
		}
	}

	if cur.err != nil {
		anomalies = append(anomalies, cur.err)
	}
	return errors.Join(anomalies...)
}

// readDeclaration reads access flags, this_class, super_class and the interfaces table.
// add receives the internal names of the supertypes.
func readDeclaration(cur *cursor, pool constantPool, cf *ClassFile, add func(string)) {
	cf.AccessFlags = cur.u2()
	cf.Name = classname.FromInternal(pool.className(cur.u2()))
	if super := pool.className(cur.u2()); super != "" {
		cf.SuperName = classname.FromInternal(super)
		add(super)
	}

	interfaces := int(cur.u2())
	for i := 0; i < interfaces && cur.err == nil; i++ {
		name := pool.className(cur.u2())
		if name == "" {
			continue
		}
		cf.Interfaces = append(cf.Interfaces, classname.FromInternal(name))
		add(name)
	}
}
