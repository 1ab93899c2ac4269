package classfile

import (
	"unicode/utf16"
)

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

type constant struct {
	tag  uint8
	ref1 uint16
	ref2 uint16
	text string
}

// constantPool is indexed from 1, slot 0 is always empty.
type constantPool []constant

// readConstantPool reads the pool. On an anomaly it returns the entries read so far
// together with the cursor error.
func readConstantPool(c *cursor) (constantPool, error) {
	count := int(c.u2())
	if c.err != nil {
		return nil, c.err
	}

	pool := make(constantPool, count)
	for i := 1; i < count; i++ {
		e := &pool[i]
		e.tag = c.u1()
		switch e.tag {
		case tagUtf8:
			e.text = decodeModifiedUTF8(c.take(int(c.u2())))
		case tagInteger, tagFloat:
			c.skip(4)
		case tagLong, tagDouble:
			c.skip(8)
			i++
		case tagClass, tagString, tagMethodType, tagModule, tagPackage:
			e.ref1 = c.u2()
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			e.ref1 = c.u2()
			e.ref2 = c.u2()
		case tagMethodHandle:
			c.skip(1)
			e.ref1 = c.u2()
		default:
			c.fail("unknown constant pool tag %d at index %d", e.tag, i)
		}
		if c.err != nil {
			// Drop the partially read entry.
			*e = constant{}
			return pool[:i], c.err
		}
	}
	return pool, nil
}

func (p constantPool) entry(index uint16, tag uint8) (constant, bool) {
	if index == 0 || int(index) >= len(p) || p[index].tag != tag {
		return constant{}, false
	}
	return p[index], true
}

// utf8 returns the text of a Utf8 constant, or "" when index does not point at one.
func (p constantPool) utf8(index uint16) string {
	e, ok := p.entry(index, tagUtf8)
	if !ok {
		return ""
	}
	return e.text
}

// className returns the internal name (or array descriptor) of a Class constant.
func (p constantPool) className(index uint16) string {
	e, ok := p.entry(index, tagClass)
	if !ok {
		return ""
	}
	return p.utf8(e.ref1)
}

// nameAndTypeDescriptor returns the descriptor of a NameAndType constant.
func (p constantPool) nameAndTypeDescriptor(index uint16) string {
	e, ok := p.entry(index, tagNameAndType)
	if !ok {
		return ""
	}
	return p.utf8(e.ref2)
}

// decodeModifiedUTF8 decodes the JVM flavour of UTF-8: NUL is encoded on two bytes and
// supplementary characters as surrogate pairs of three bytes each.
func decodeModifiedUTF8(b []byte) string {
	ascii := true
	for _, ch := range b {
		if ch == 0 || ch >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}

	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		x := b[i]
		switch {
		case x < 0x80:
			units = append(units, uint16(x))
			i++
		case x&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(x&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case x&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(x&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, 0xFFFD)
			i++
		}
	}
	return string(utf16.Decode(units))
}
