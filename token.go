// Package loxscan provides a hand-written lexer for the Lox scripting
// language.
//
// Tokens store byte offsets (start, end) into the source string, enabling
// zero-allocation access to the raw lexeme via [Token.Val]. Literal tokens
// additionally carry their parsed payload: the identifier spelling, the
// string content with the quotes stripped, or the integer value.
//
// Create a [Lexer] with [New] or [FromFile] and call [Lexer.Scan]
// repeatedly to drain the token stream, or use [Tokenize] to scan a source
// in one call.
package loxscan

import "fmt"

// Kind identifies a lexical token type.
type Kind int16

const (
	EOF Kind = iota // end of input

	// Single-character tokens.
	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Comma      // ,
	Dot        // .
	Minus      // -
	Plus       // +
	SemiColon  // ;
	Slash      // /
	Star       // *

	// One or two character tokens.
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals.
	Identifier // identifier; Text holds the spelling
	String     // string literal; Text holds the content without quotes
	Number     // integer literal; Num holds the value

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var kindNames = [...]string{
	EOF:          "EOF",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	SemiColon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token represents a single lexical token. Start and End are byte offsets
// into the source (End exclusive); use [Token.Val] for zero-copy access to
// the raw lexeme. For [Identifier] and [String] tokens, Text holds the
// payload; for [Number] tokens, Num holds the parsed value.
type Token struct {
	Kind  Kind
	Start int    // byte offset in source (inclusive)
	End   int    // byte offset in source (exclusive)
	Text  string // identifier spelling or string content
	Num   int64  // integer value for Number
}

// Val returns the raw source substring — no allocation.
func (t Token) Val(src string) string { return src[t.Start:t.End] }

// keywords maps reserved-word spellings to their token kinds. Built once
// at init; read-only thereafter and shared by every Lexer.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Keyword resolves name against the reserved-word table with an exact,
// case-sensitive match. It returns the keyword kind and true when name is
// reserved, otherwise [Identifier] and false.
func Keyword(name string) (Kind, bool) {
	if kind, ok := keywords[name]; ok {
		return kind, true
	}
	return Identifier, false
}
