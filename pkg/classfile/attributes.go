package classfile

import "fmt"

// attributes reads a u2 counted attribute table. Each attribute body is parsed through its
// own cursor so that garbage inside one attribute cannot desynchronise the outer structure.
// The first anomaly found inside an attribute body is returned; parsing continues with the
// next attribute.
func (c *collector) attributes(cur *cursor) error {
	var anomaly error
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		name := c.pool.utf8(cur.u2())
		body := cur.take(int(cur.u4()))
		if cur.err != nil {
			break
		}

		sub := &cursor{data: body}
		if err := c.attribute(name, sub); err != nil && anomaly == nil {
			anomaly = err
		}
	}
	return anomaly
}

func (c *collector) attribute(name string, cur *cursor) error {
	var nested error
	switch name {
	case "Signature":
		c.addSignature(c.pool.utf8(cur.u2()))
	case "Exceptions", "NestMembers", "PermittedSubclasses":
		c.classList(cur)
	case "NestHost":
		c.addClassConstant(cur.u2())
	case "InnerClasses":
		n := int(cur.u2())
		for i := 0; i < n && cur.err == nil; i++ {
			c.addClassConstant(cur.u2()) // inner
			c.addClassConstant(cur.u2()) // outer
			cur.skip(4)                  // simple name, flags
		}
	case "EnclosingMethod":
		c.addClassConstant(cur.u2())
		c.addDescriptor(c.pool.nameAndTypeDescriptor(cur.u2()))
	case "RuntimeVisibleAnnotations", "RuntimeInvisibleAnnotations":
		c.annotations(cur)
	case "RuntimeVisibleParameterAnnotations", "RuntimeInvisibleParameterAnnotations":
		c.parameterAnnotations(cur)
	case "RuntimeVisibleTypeAnnotations", "RuntimeInvisibleTypeAnnotations":
		c.typeAnnotations(cur)
	case "AnnotationDefault":
		c.elementValue(cur)
	case "Record":
		n := int(cur.u2())
		for i := 0; i < n && cur.err == nil; i++ {
			cur.u2() // name
			c.addDescriptor(c.pool.utf8(cur.u2()))
			if err := c.attributes(cur); err != nil && nested == nil {
				nested = err
			}
		}
	case "Code":
		nested = c.code(cur)
	case "LocalVariableTable":
		c.localVariables(cur, c.addDescriptor)
	case "LocalVariableTypeTable":
		c.localVariables(cur, c.addSignature)
	}

	if cur.err != nil {
		return fmt.Errorf("attribute %s: %w", name, cur.err)
	}
	return nested
}

func (c *collector) classList(cur *cursor) {
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		c.addClassConstant(cur.u2())
	}
}

// code reads a Code attribute. Instructions are not decoded: every class they touch is a
// Class constant already recorded from the constant pool.
func (c *collector) code(cur *cursor) error {
	cur.skip(4) // max_stack, max_locals
	cur.skip(int(cur.u4()))
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		cur.skip(6) // start_pc, end_pc, handler_pc
		if catchType := cur.u2(); catchType != 0 {
			c.addClassConstant(catchType)
		}
	}
	if cur.err != nil {
		return nil
	}
	return c.attributes(cur)
}

func (c *collector) localVariables(cur *cursor, add func(string)) {
	n := int(cur.u2())
	for i := 0; i < n && cur.err == nil; i++ {
		cur.skip(6) // start_pc, length, name
		add(c.pool.utf8(cur.u2()))
		cur.skip(2) // index
	}
}
