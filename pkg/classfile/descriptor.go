package classfile

import (
	"strings"
)

// descriptorClasses calls add with the internal name of every class named in a field or
// method descriptor. Primitive types and array dimensions contribute nothing.
func descriptorClasses(desc string, add func(string)) {
	for i := 0; i < len(desc); i++ {
		if desc[i] != 'L' {
			continue
		}
		end := strings.IndexByte(desc[i:], ';')
		if end < 0 {
			return
		}
		add(desc[i+1 : i+end])
		i += end
	}
}

// signatureParser walks a generic signature (class, method or field) and reports every
// class type it contains, including type arguments, bounds and inner class suffixes.
type signatureParser struct {
	s   string
	pos int
	add func(string)
}

func signatureClasses(sig string, add func(string)) {
	p := &signatureParser{s: sig, add: add}
	p.parse()
}

func (p *signatureParser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *signatureParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

// abort stops the parse. Names already reported are kept.
func (p *signatureParser) abort() {
	p.pos = len(p.s)
}

func (p *signatureParser) readUntil(stops string) string {
	start := p.pos
	for !p.eof() && strings.IndexByte(stops, p.s[p.pos]) < 0 {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *signatureParser) parse() {
	if p.peek() == '<' {
		p.formalTypeParameters()
	}
	if p.peek() == '(' {
		p.pos++
		for !p.eof() && p.peek() != ')' {
			p.typeSignature()
		}
		p.pos++
		p.typeSignature()
		for p.peek() == '^' {
			p.pos++
			p.typeSignature()
		}
		return
	}
	// Class signature: superclass then interfaces. Field signature: a single type.
	for !p.eof() {
		p.typeSignature()
	}
}

func (p *signatureParser) formalTypeParameters() {
	p.pos++
	for !p.eof() && p.peek() != '>' {
		p.readUntil(":>")
		if p.peek() != ':' {
			p.abort()
			return
		}
		for p.peek() == ':' {
			p.pos++
			switch p.peek() {
			case 'L', 'T', '[':
				p.typeSignature()
			}
		}
	}
	p.pos++
}

func (p *signatureParser) typeSignature() {
	switch p.peek() {
	case 'L':
		p.classTypeSignature()
	case 'T':
		p.pos++
		p.readUntil(";")
		p.pos++
	case '[':
		p.pos++
		p.typeSignature()
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		p.pos++
	default:
		p.abort()
	}
}

func (p *signatureParser) classTypeSignature() {
	p.pos++
	current := p.readUntil("<.;")
	if p.eof() || current == "" {
		p.abort()
		return
	}
	p.add(current)

	for {
		switch p.peek() {
		case '<':
			p.typeArguments()
		case '.':
			p.pos++
			inner := p.readUntil("<.;")
			if p.eof() || inner == "" {
				p.abort()
				return
			}
			current += "$" + inner
			p.add(current)
		case ';':
			p.pos++
			return
		default:
			p.abort()
			return
		}
	}
}

func (p *signatureParser) typeArguments() {
	p.pos++
	for !p.eof() && p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.pos++
		case '+', '-':
			p.pos++
			p.typeSignature()
		default:
			p.typeSignature()
		}
	}
	p.pos++
}
