// Package ast defines the syntax tree handed across the scanning boundary.
// The parser that produces these trees is a future phase; the shapes exist
// today so that tooling which already holds a parsed representation (for
// example re-entrant compilation of generated code) can construct a
// session without going through the scanner.
package ast

import (
	"quartz/internal/source"
)

// Node is any element of the syntax tree.
type Node interface {
	Span() source.Span
}

// File is the root of one parsed source file.
type File struct {
	// Name is a display label, usually the originating path.
	Name  string
	Decls []Node
}

// Span covers all declarations in the file.
func (f *File) Span() source.Span {
	if len(f.Decls) == 0 {
		return source.Span{}
	}
	sp := f.Decls[0].Span()
	for _, d := range f.Decls[1:] {
		sp = sp.Cover(d.Span())
	}
	return sp
}

// Ident is a name reference.
type Ident struct {
	Name string
	Sp   source.Span
}

func (i *Ident) Span() source.Span { return i.Sp }

// Lit is a literal value, stored as its source text.
type Lit struct {
	Text string
	Sp   source.Span
}

func (l *Lit) Span() source.Span { return l.Sp }

// LetDecl binds a name to an initializer expression.
type LetDecl struct {
	Name  *Ident
	Value Node
	Sp    source.Span
}

func (d *LetDecl) Span() source.Span { return d.Sp }
