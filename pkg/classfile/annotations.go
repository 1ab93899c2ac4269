package classfile

// annotations reads a u2 counted list of annotations.
func (c *collector) annotations(cur *cursor) {
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		c.annotation(cur)
	}
}

func (c *collector) parameterAnnotations(cur *cursor) {
	n := int(cur.u1())
	for i := 0; i < n && cur.err == nil; i++ {
		c.annotations(cur)
	}
}

func (c *collector) annotation(cur *cursor) {
	c.addDescriptor(c.pool.utf8(cur.u2()))
	pairs := int(cur.u2())
	for i := 0; i < pairs && cur.err == nil; i++ {
		cur.u2() // element name
		c.elementValue(cur)
	}
}

func (c *collector) elementValue(cur *cursor) {
	tag := cur.u1()
	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		cur.u2()
	case 'e':
		c.addDescriptor(c.pool.utf8(cur.u2()))
		cur.u2()
	case 'c':
		c.addDescriptor(c.pool.utf8(cur.u2()))
	case '@':
		c.annotation(cur)
	case '[':
		n := int(cur.u2())
		for i := 0; i < n && cur.err == nil; i++ {
			c.elementValue(cur)
		}
	default:
		cur.fail("unknown annotation element tag %q", tag)
	}
}

// typeAnnotations reads a list of type_annotation structures, skipping their target
// information and type path before reading the annotation itself.
func (c *collector) typeAnnotations(cur *cursor) {
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		target := cur.u1()
		switch {
		case target == 0x00 || target == 0x01 || target == 0x16:
			cur.skip(1)
		case target == 0x10 || target == 0x17 || target == 0x42:
			cur.skip(2)
		case target == 0x11 || target == 0x12:
			cur.skip(2)
		case target >= 0x13 && target <= 0x15:
		case target == 0x40 || target == 0x41:
			cur.skip(6 * int(cur.u2()))
		case target >= 0x43 && target <= 0x46:
			cur.skip(2)
		case target >= 0x47 && target <= 0x4B:
			cur.skip(3)
		default:
			cur.fail("unknown type annotation target 0x%02x", target)
			return
		}
		cur.skip(2 * int(cur.u1())) // type_path
		c.annotation(cur)
	}
}
