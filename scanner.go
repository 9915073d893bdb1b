package loxscan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors.
var (
	// ErrSource is returned by FromFile when the source file cannot be
	// opened or fully read.
	ErrSource = errors.New("loxscan: read source")
	// ErrUnknownToken is returned when no lexical rule matches the
	// character at the cursor.
	ErrUnknownToken = errors.New("loxscan: unknown token")
	// ErrUnterminatedString is returned when a string literal is missing
	// its closing quote before end of input.
	ErrUnterminatedString = errors.New("loxscan: unterminated string")
	// ErrNumberOutOfRange is returned when an integer literal does not fit
	// in an int64.
	ErrNumberOutOfRange = errors.New("loxscan: number out of range")
)

// snippetLen is the maximum number of source bytes quoted in an
// ErrUnknownToken message.
const snippetLen = 10

// Lexer tokenizes Lox source text. Create with [New] or [FromFile] and
// call [Lexer.Scan] repeatedly to get tokens. The cursor only moves
// forward; a Lexer cannot be reset or rewound.
type Lexer struct {
	src     string // source input
	r       rune   // current rune; -1 means EOF
	rPos    int    // byte offset of current rune
	nextPos int    // byte offset after current rune
	err     error  // first scan failure; sticky
}

// New creates a Lexer for src.
func New(src string) *Lexer {
	l := &Lexer{src: src, r: -1}
	l.next() // prime
	return l
}

// FromFile creates a Lexer by reading the entire file at path into memory
// before any scanning begins. Open, stat, and read failures are wrapped
// with [ErrSource].
func FromFile(path string) (*Lexer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrSource, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Join(ErrSource, err)
	}

	// One spare byte of capacity so an appending caller would not
	// immediately reallocate.
	buf := make([]byte, info.Size(), info.Size()+1)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errors.Join(ErrSource, err)
	}
	return New(string(buf)), nil
}

// Source returns the original source string.
func (l *Lexer) Source() string { return l.src }

// next advances to the next rune and returns it. Returns -1 at EOF.
func (l *Lexer) next() rune {
	if l.nextPos < len(l.src) {
		l.rPos = l.nextPos
		r, w := rune(l.src[l.nextPos]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRuneInString(l.src[l.nextPos:])
		}
		l.nextPos += w
		l.r = r
	} else {
		l.rPos = len(l.src)
		l.r = -1
	}
	return l.r
}

// peek returns the next rune without advancing. Returns -1 at EOF.
func (l *Lexer) peek() rune {
	if l.nextPos < len(l.src) {
		r := rune(l.src[l.nextPos])
		if r >= utf8.RuneSelf {
			r, _ = utf8.DecodeRuneInString(l.src[l.nextPos:])
		}
		return r
	}
	return -1
}

// fail records err as the terminal scan failure, halts the cursor, and
// returns err. Every later Scan returns the same error.
func (l *Lexer) fail(err error) error {
	l.err = err
	l.r = -1
	return err
}

// Scan returns the next token. At end of input it returns a token of kind
// [EOF], and keeps doing so on subsequent calls. A non-nil error halts the
// stream permanently: later calls return the same error.
func (l *Lexer) Scan() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	// Skip a maximal run of Unicode white space. Not tokenized.
	for isSpace(l.r) {
		l.next()
	}

	if l.r < 0 {
		return Token{Kind: EOF, Start: l.rPos, End: l.rPos}, nil
	}

	start := l.rPos

	switch l.r {
	// Single-character tokens.
	case '(':
		l.next()
		return Token{Kind: LeftParen, Start: start, End: l.rPos}, nil
	case ')':
		l.next()
		return Token{Kind: RightParen, Start: start, End: l.rPos}, nil
	case '{':
		l.next()
		return Token{Kind: LeftBrace, Start: start, End: l.rPos}, nil
	case '}':
		l.next()
		return Token{Kind: RightBrace, Start: start, End: l.rPos}, nil
	case ',':
		l.next()
		return Token{Kind: Comma, Start: start, End: l.rPos}, nil
	case '.':
		l.next()
		return Token{Kind: Dot, Start: start, End: l.rPos}, nil
	case '-':
		l.next()
		return Token{Kind: Minus, Start: start, End: l.rPos}, nil
	case '+':
		l.next()
		return Token{Kind: Plus, Start: start, End: l.rPos}, nil
	case ';':
		l.next()
		return Token{Kind: SemiColon, Start: start, End: l.rPos}, nil
	case '/':
		l.next()
		return Token{Kind: Slash, Start: start, End: l.rPos}, nil
	case '*':
		l.next()
		return Token{Kind: Star, Start: start, End: l.rPos}, nil

	// One or two character tokens: a trailing '=' selects the long form.
	case '!':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: BangEqual, Start: start, End: l.rPos}, nil
		}
		l.next()
		return Token{Kind: Bang, Start: start, End: l.rPos}, nil
	case '=':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: EqualEqual, Start: start, End: l.rPos}, nil
		}
		l.next()
		return Token{Kind: Equal, Start: start, End: l.rPos}, nil
	case '>':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: GreaterEqual, Start: start, End: l.rPos}, nil
		}
		l.next()
		return Token{Kind: Greater, Start: start, End: l.rPos}, nil
	case '<':
		if l.peek() == '=' {
			l.next()
			l.next()
			return Token{Kind: LessEqual, Start: start, End: l.rPos}, nil
		}
		l.next()
		return Token{Kind: Less, Start: start, End: l.rPos}, nil

	// Literals.
	case '"':
		return l.scanString()

	default:
		if isDigit(l.r) {
			return l.scanNumber()
		}
		if isIdentFirst(l.r) {
			return l.scanIdent()
		}
		return Token{}, l.fail(fmt.Errorf("%w %q at offset %d",
			ErrUnknownToken, l.snippet(start), start))
	}
}

// scanIdent scans an identifier and resolves keywords. l.r must be a
// letter or '_' on entry; continuation characters are letters and digits.
func (l *Lexer) scanIdent() (Token, error) {
	start := l.rPos
	l.next() // first character already classified
	for isAlphaNumeric(l.r) {
		l.next()
	}
	raw := l.src[start:l.rPos]
	if kind, ok := Keyword(raw); ok {
		return Token{Kind: kind, Start: start, End: l.rPos}, nil
	}
	return Token{Kind: Identifier, Start: start, End: l.rPos, Text: raw}, nil
}

// scanNumber scans a maximal run of decimal digits and parses it as an
// int64. Lox numbers have no sign, fraction, or exponent. l.r must be a
// digit on entry.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.rPos
	for isDigit(l.r) {
		l.next()
	}
	raw := l.src[start:l.rPos]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Token{}, l.fail(fmt.Errorf("%w: %s at offset %d",
			ErrNumberOutOfRange, raw, start))
	}
	return Token{Kind: Number, Start: start, End: l.rPos, Num: n}, nil
}

// scanString scans a double-quoted string literal. l.r must be '"' on
// entry. Lox strings have no escape sequences; the content is taken
// verbatim, quotes excluded.
func (l *Lexer) scanString() (Token, error) {
	start := l.rPos
	l.next() // consume opening quote
	lit := l.rPos
	for l.r >= 0 && l.r != '"' {
		l.next()
	}
	if l.r < 0 {
		return Token{}, l.fail(fmt.Errorf("%w at offset %d",
			ErrUnterminatedString, start))
	}
	text := l.src[lit:l.rPos]
	l.next() // consume closing quote
	return Token{Kind: String, Start: start, End: l.rPos, Text: text}, nil
}

// snippet returns up to snippetLen source bytes starting at pos, clamped
// to the end of the buffer.
func (l *Lexer) snippet(pos int) string {
	return l.src[pos:min(pos+snippetLen, len(l.src))]
}

// isSpace reports whether r is Unicode white space. The EOF sentinel (-1)
// is never white space.
func isSpace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentFirst reports whether r may start an identifier: a Unicode
// letter or an underscore.
func isIdentFirst(r rune) bool {
	return r == '_' || (r >= 0 && unicode.IsLetter(r))
}

// isAlphaNumeric reports whether r may continue an identifier: a Unicode
// letter or digit.
func isAlphaNumeric(r rune) bool {
	return r >= 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
