package loxscan

// Tokenize scans src to exhaustion and returns the full token sequence.
// The trailing EOF token is not included. On a scan failure the tokens
// consumed so far are discarded and the error is returned.
func Tokenize(src string) ([]Token, error) {
	return collect(New(src))
}

// TokenizeFile reads the entire file at path and scans it to exhaustion.
// Read failures are wrapped with [ErrSource].
func TokenizeFile(path string) ([]Token, error) {
	l, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	return collect(l)
}

// Valid reports whether src is lexically valid Lox.
func Valid(src string) bool {
	_, err := Tokenize(src)
	return err == nil
}

// collect drains l into a slice.
func collect(l *Lexer) ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Scan()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
