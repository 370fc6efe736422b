package lexer

// symbChars are the single-byte operator/variable tokens: the space and
// ASCII punctuation outside of digits, '.', '$', '"' and '\\' (which all
// have their own dedicated handling below), plus every ASCII letter.
const symbChars = " !#%&'()*+,-/:;<=>?@[]^_`{|}~"

func isSymbByte(c byte) bool {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	for i := 0; i < len(symbChars); i++ {
		if symbChars[i] == c {
			return true
		}
	}
	return false
}

// tokenizer runs Stage 3: turning the Stage 1/2 normalized byte buffer
// into a flat token stream.
type tokenizer struct {
	src []byte
	pos int
}

func (t *tokenizer) hasc() bool  { return t.pos < len(t.src) }
func (t *tokenizer) peekc() byte { return t.src[t.pos] }
func (t *tokenizer) getc() byte  { c := t.src[t.pos]; t.pos++; return c }

// tokenize lexes the full (already preprocessed) source up front. The
// grammar has no streaming requirement — interpret always sees the
// whole program at once — so eager tokenization keeps the parser's
// lookahead trivial (a plain index into a slice).
func tokenize(src []byte) ([]Token, error) {
	t := &tokenizer{src: src}
	var toks []Token
	for {
		tok, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// next scans one token, or reports ok=false at end of input. A bare '\n'
// byte never becomes a token: Stage 2 only leaves one in the buffer to
// split two digit-adjacent lines, so it is pure separator noise here.
func (t *tokenizer) next() (Token, bool, error) {
	for t.hasc() && t.peekc() == '\n' {
		t.pos++
	}
	if !t.hasc() {
		return Token{}, false, nil
	}

	c := t.getc()
	switch {
	case c == '"':
		return Token{Kind: Lit, Lit: LitString, Data: t.scanString(true)}, true, nil

	case c == '\\':
		if !t.hasc() {
			return Token{}, false, errf("expected a character after '\\', found end of input")
		}
		x := t.getc()
		return Token{Kind: Lit, Lit: LitString, Data: string(x)}, true, nil

	case isDigit(c) || (c == '.' && t.hasc() && isDigit(t.peekc())):
		t.pos--
		return Token{Kind: Lit, Lit: LitNumber, Data: t.scanNumber()}, true, nil

	case c == '.':
		return t.scanDot()

	case c == '$':
		if !t.hasc() {
			return Token{}, false, errf("expected a character after '$', found end of input")
		}
		return Token{Kind: Symb, Data: "$" + string(t.getc())}, true, nil

	case isSymbByte(c):
		return Token{Kind: Symb, Data: string(c)}, true, nil
	}

	return Token{}, false, errf("unexpected byte 0x%02x in token stream", c)
}

// scanString consumes up to (and past) a closing '"', recognizing \" and
// \\ as escapes; any other backslash is copied through literally. An
// unterminated string is not an error — it simply runs to EOF with
// whatever content was accumulated. Binary string bodies use this same
// scan with decodeNewlines false: Stage 1 keeps their newlines verbatim,
// whereas in a regular string Stage 1 has rewritten every newline to the
// two bytes backslash-n, which must fold back to a real newline here.
func (t *tokenizer) scanString(decodeNewlines bool) string {
	var s []byte
	for t.hasc() {
		c := t.getc()
		if c == '"' {
			break
		}
		if c == '\\' && t.hasc() && (t.peekc() == '"' || t.peekc() == '\\') {
			s = append(s, t.getc())
			continue
		}
		if decodeNewlines && c == '\\' && t.hasc() && t.peekc() == 'n' {
			t.pos++
			s = append(s, '\n')
			continue
		}
		s = append(s, c)
	}
	return string(s)
}

// scanDot handles a '.' already consumed and known not to lead a number:
// either a binary string ( ."..." ) or a two-byte dotted operator.
func (t *tokenizer) scanDot() (Token, bool, error) {
	if !t.hasc() {
		return Token{}, false, errf("expected a character after '.', found end of input")
	}
	c := t.getc()
	if c == '"' {
		return Token{Kind: Lit, Lit: LitBinString, Data: t.scanString(false)}, true, nil
	}
	return Token{Kind: Symb, Data: "." + string(c)}, true, nil
}

// scanNumber reads a numeric literal. A leading zero is its own digit
// group (so "05" lexes as "0" then "5", never octal-looking "05"), and
// at most one '.' is consumed. If the literal ends in '.' immediately
// followed by something other than a space or newline, that trailing
// dot is pushed back: it belongs to a following dotted operator
// (e.g. "5.<" is the number "5" then the operator ".<"), not to this
// number.
func (t *tokenizer) scanNumber() string {
	var n []byte
	if t.peekc() == '0' {
		n = append(n, t.getc())
		if t.hasc() && t.peekc() == '.' {
			n = append(n, t.getc())
		}
	} else {
		dotSeen := false
		for t.hasc() && (isDigit(t.peekc()) || t.peekc() == '.') {
			if t.peekc() == '.' {
				if dotSeen {
					break
				}
				dotSeen = true
			}
			n = append(n, t.getc())
		}
	}
	if len(n) > 0 && n[len(n)-1] == '.' && t.hasc() && t.peekc() != ' ' && t.peekc() != '\n' {
		n = n[:len(n)-1]
		t.pos--
	}
	return string(n)
}

// Lexer exposes the token stream with unbounded lookahead via Peek,
// which the parser needs for its arity-driven, delimiter-free grammar
// (deciding how many children an operator takes often requires looking
// two or three tokens ahead).
type Lexer struct {
	toks []Token
	pos  int
}

// New preprocesses and tokenizes src, returning a ready-to-parse Lexer.
func New(src []byte) (*Lexer, error) {
	toks, err := tokenize(preprocess(src))
	if err != nil {
		return nil, err
	}
	return &Lexer{toks: toks}, nil
}

// HasToken reports whether any token remains unconsumed.
func (l *Lexer) HasToken() bool { return l.pos < len(l.toks) }

// Peek returns the token k positions ahead of the cursor (k=0 is next),
// or EOF if that position runs past the end of the stream.
func (l *Lexer) Peek(k int) Token {
	i := l.pos + k
	if i < 0 || i >= len(l.toks) {
		return EOF
	}
	return l.toks[i]
}

// Get consumes and returns the next token, or EOF if none remain.
func (l *Lexer) Get() Token {
	if !l.HasToken() {
		return EOF
	}
	tok := l.toks[l.pos]
	l.pos++
	return tok
}
