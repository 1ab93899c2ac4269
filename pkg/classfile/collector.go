package classfile

import (
	"strings"

	"github.com/lerenn/dependency-analyzer/pkg/classname"
)

// collector accumulates the dotted names of every class referenced by one class file.
type collector struct {
	pool constantPool
	refs classname.Set
}

// addInternal adds an internal class name. Array descriptors contribute their element class.
func (c *collector) addInternal(name string) {
	if name == "" {
		return
	}
	if strings.HasPrefix(name, "[") {
		c.addDescriptor(name)
		return
	}
	c.refs.Add(classname.FromInternal(name))
}

func (c *collector) addClassConstant(index uint16) {
	c.addInternal(c.pool.className(index))
}

func (c *collector) addDescriptor(desc string) {
	descriptorClasses(desc, c.addInternal)
}

func (c *collector) addSignature(sig string) {
	signatureClasses(sig, c.addInternal)
}

// addPoolReferences records the class names reachable from the constant pool alone: class
// constants (casts, instantiations, static and member owners) and the descriptors of
// NameAndType and MethodType constants.
func (c *collector) addPoolReferences() {
	for _, e := range c.pool {
		switch e.tag {
		case tagClass:
			c.addInternal(c.pool.utf8(e.ref1))
		case tagNameAndType:
			c.addDescriptor(c.pool.utf8(e.ref2))
		case tagMethodType:
			c.addDescriptor(c.pool.utf8(e.ref1))
		}
	}
}
