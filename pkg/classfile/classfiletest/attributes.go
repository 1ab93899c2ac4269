package classfiletest

// Raw builds an attribute from a name and an already serialized body.
func Raw(name string, body []byte) Attribute {
	return func(b *Builder) []byte {
		return attribute(b, name, body)
	}
}

func attribute(b *Builder, name string, body []byte) []byte {
	out := u2(nil, b.Utf8(name))
	out = u4(out, uint32(len(body)))
	return append(out, body...)
}

// Signature builds a Signature attribute.
func Signature(sig string) Attribute {
	return func(b *Builder) []byte {
		return attribute(b, "Signature", u2(nil, b.Utf8(sig)))
	}
}

func classList(name string, classes []string) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, uint16(len(classes)))
		for _, class := range classes {
			body = u2(body, b.Class(class))
		}
		return attribute(b, name, body)
	}
}

// Exceptions builds an Exceptions attribute.
func Exceptions(classes ...string) Attribute {
	return classList("Exceptions", classes)
}

// NestMembers builds a NestMembers attribute.
func NestMembers(classes ...string) Attribute {
	return classList("NestMembers", classes)
}

// PermittedSubclasses builds a PermittedSubclasses attribute.
func PermittedSubclasses(classes ...string) Attribute {
	return classList("PermittedSubclasses", classes)
}

// NestHost builds a NestHost attribute.
func NestHost(class string) Attribute {
	return func(b *Builder) []byte {
		return attribute(b, "NestHost", u2(nil, b.Class(class)))
	}
}

// InnerClass describes one InnerClasses entry. An empty Outer is written as index 0.
type InnerClass struct {
	Inner string
	Outer string
	Name  string
}

// InnerClasses builds an InnerClasses attribute.
func InnerClasses(entries ...InnerClass) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, uint16(len(entries)))
		for _, e := range entries {
			body = u2(body, b.Class(e.Inner))
			var outer, name uint16
			if e.Outer != "" {
				outer = b.Class(e.Outer)
			}
			if e.Name != "" {
				name = b.Utf8(e.Name)
			}
			body = u2(body, outer)
			body = u2(body, name)
			body = u2(body, 0x0009)
		}
		return attribute(b, "InnerClasses", body)
	}
}

// EnclosingMethod builds an EnclosingMethod attribute. An empty method name writes index 0.
func EnclosingMethod(class, method, desc string) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, b.Class(class))
		var nat uint16
		if method != "" {
			nat = b.NameAndType(method, desc)
		}
		return attribute(b, "EnclosingMethod", u2(body, nat))
	}
}

// Annotation is an annotation with its type descriptor and element values.
type Annotation struct {
	Type     string
	Elements []Element
}

// Element is a named annotation element.
type Element struct {
	Name  string
	Value ElementValue
}

// ElementValue serializes an annotation element value.
type ElementValue func(b *Builder) []byte

func (a Annotation) bytes(b *Builder) []byte {
	out := u2(nil, b.Utf8(a.Type))
	out = u2(out, uint16(len(a.Elements)))
	for _, e := range a.Elements {
		out = u2(out, b.Utf8(e.Name))
		out = append(out, e.Value(b)...)
	}
	return out
}

// StringValue is a String constant element value.
func StringValue(s string) ElementValue {
	return func(b *Builder) []byte {
		return u2([]byte{'s'}, b.Utf8(s))
	}
}

// EnumValue is an enum constant element value.
func EnumValue(typeDesc, constName string) ElementValue {
	return func(b *Builder) []byte {
		return u2(u2([]byte{'e'}, b.Utf8(typeDesc)), b.Utf8(constName))
	}
}

// ClassValue is a class literal element value, given as a return descriptor.
func ClassValue(desc string) ElementValue {
	return func(b *Builder) []byte {
		return u2([]byte{'c'}, b.Utf8(desc))
	}
}

// AnnotationValue is a nested annotation element value.
func AnnotationValue(a Annotation) ElementValue {
	return func(b *Builder) []byte {
		return append([]byte{'@'}, a.bytes(b)...)
	}
}

// ArrayValue is an array element value.
func ArrayValue(values ...ElementValue) ElementValue {
	return func(b *Builder) []byte {
		out := u2([]byte{'['}, uint16(len(values)))
		for _, v := range values {
			out = append(out, v(b)...)
		}
		return out
	}
}

func annotationsName(visible bool, kind string) string {
	if visible {
		return "RuntimeVisible" + kind
	}
	return "RuntimeInvisible" + kind
}

// Annotations builds a Runtime(In)VisibleAnnotations attribute.
func Annotations(visible bool, annotations ...Annotation) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, uint16(len(annotations)))
		for _, a := range annotations {
			body = append(body, a.bytes(b)...)
		}
		return attribute(b, annotationsName(visible, "Annotations"), body)
	}
}

// ParameterAnnotations builds a Runtime(In)VisibleParameterAnnotations attribute with one
// annotation list per parameter.
func ParameterAnnotations(visible bool, params ...[]Annotation) Attribute {
	return func(b *Builder) []byte {
		body := []byte{byte(len(params))}
		for _, annotations := range params {
			body = u2(body, uint16(len(annotations)))
			for _, a := range annotations {
				body = append(body, a.bytes(b)...)
			}
		}
		return attribute(b, annotationsName(visible, "ParameterAnnotations"), body)
	}
}

// TypeAnnotation describes one type_annotation: target type, raw target info, raw type
// path entries (two bytes each) and the annotation.
type TypeAnnotation struct {
	TargetType byte
	TargetInfo []byte
	TypePath   []byte
	Annotation Annotation
}

// TypeAnnotations builds a Runtime(In)VisibleTypeAnnotations attribute.
func TypeAnnotations(visible bool, annotations ...TypeAnnotation) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, uint16(len(annotations)))
		for _, ta := range annotations {
			body = append(body, ta.TargetType)
			body = append(body, ta.TargetInfo...)
			body = append(body, byte(len(ta.TypePath)/2))
			body = append(body, ta.TypePath...)
			body = append(body, ta.Annotation.bytes(b)...)
		}
		return attribute(b, annotationsName(visible, "TypeAnnotations"), body)
	}
}

// AnnotationDefault builds an AnnotationDefault attribute.
func AnnotationDefault(v ElementValue) Attribute {
	return func(b *Builder) []byte {
		return attribute(b, "AnnotationDefault", v(b))
	}
}

// RecordComponent is one component of a Record attribute.
type RecordComponent struct {
	Name       string
	Descriptor string
	Attributes []Attribute
}

// Record builds a Record attribute.
func Record(components ...RecordComponent) Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, uint16(len(components)))
		for _, rc := range components {
			body = u2(body, b.Utf8(rc.Name))
			body = u2(body, b.Utf8(rc.Descriptor))
			body = u2(body, uint16(len(rc.Attributes)))
			for _, attr := range rc.Attributes {
				body = append(body, attr(b)...)
			}
		}
		return attribute(b, "Record", body)
	}
}

// LocalVariable is one entry of a local variable (type) table.
type LocalVariable struct {
	Name string
	// Descriptor holds the descriptor, or the generic signature for a type table.
	Descriptor string
}

// Code describes a Code attribute. Instructions are opaque bytes; catch types are internal
// names, an empty one is a finally handler.
type Code struct {
	Instructions   []byte
	CatchTypes     []string
	LocalVariables []LocalVariable
	LocalTypes     []LocalVariable
	Attributes     []Attribute
}

// Attribute serializes the Code attribute.
func (c Code) Attribute() Attribute {
	return func(b *Builder) []byte {
		body := u2(nil, 4) // max_stack
		body = u2(body, 4) // max_locals
		body = u4(body, uint32(len(c.Instructions)))
		body = append(body, c.Instructions...)
		body = u2(body, uint16(len(c.CatchTypes)))
		for _, catchType := range c.CatchTypes {
			body = u2(body, 0)
			body = u2(body, uint16(len(c.Instructions)))
			body = u2(body, 0)
			var idx uint16
			if catchType != "" {
				idx = b.Class(catchType)
			}
			body = u2(body, idx)
		}

		nested := make([][]byte, 0, len(c.Attributes)+2)
		if len(c.LocalVariables) > 0 {
			nested = append(nested, localVariables(b, "LocalVariableTable", c.LocalVariables))
		}
		if len(c.LocalTypes) > 0 {
			nested = append(nested, localVariables(b, "LocalVariableTypeTable", c.LocalTypes))
		}
		for _, attr := range c.Attributes {
			nested = append(nested, attr(b))
		}
		body = u2(body, uint16(len(nested)))
		for _, n := range nested {
			body = append(body, n...)
		}
		return attribute(b, "Code", body)
	}
}

func localVariables(b *Builder, name string, vars []LocalVariable) []byte {
	body := u2(nil, uint16(len(vars)))
	for i, v := range vars {
		body = u2(body, 0)
		body = u2(body, 1)
		body = u2(body, b.Utf8(v.Name))
		body = u2(body, b.Utf8(v.Descriptor))
		body = u2(body, uint16(i))
	}
	return attribute(b, name, body)
}
