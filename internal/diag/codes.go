package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges are reserved per phase:
// 1000-1999 lexical, 2000-2999 syntax (future), 9000-9999 I/O and driver.
type Code uint16

const (
	// UnknownCode is the zero placeholder.
	UnknownCode Code = 0

	// Lexical codes.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedBlock  Code = 1003
	LexBadNumber          Code = 1004
	LexScanPanic          Code = 1005

	// Syntax codes (reserved for the parser phase).
	SynInfo Code = 2000

	// Driver and I/O codes.
	IOLoadFileError Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexical note",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedBlock:  "unterminated block comment",
	LexBadNumber:          "malformed number literal",
	LexScanPanic:          "scanner failure",
	SynInfo:               "syntax note",
	IOLoadFileError:       "failed to load file",
}

// ID returns the stable short identifier for the code, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("QZ%04d", ic)
	}
}

// Phase returns the pipeline phase a code belongs to.
func (c Code) Phase() Phase {
	if c >= 2000 && c < 3000 {
		return PhaseParse
	}
	return PhaseLex
}

// Title returns a short human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
