package lexer

import "bytes"

// preprocess runs Stage 1 (line normalization) and Stage 2 (line
// stitching) over the raw source bytes, producing the stitched byte
// buffer Stage 3 tokenizes. It mirrors a hand-rolled byte-offset
// scanner style (a src/pos cursor with hasc/peekc/getc) rather than reaching for
// text/scanner, since the state transitions here
// (string/binstring/comment/meta) are specific enough that a generic
// scanner would not save anything.
type preprocessor struct {
	src []byte
	pos int
}

func (p *preprocessor) hasc() bool  { return p.pos < len(p.src) }
func (p *preprocessor) peekc() byte { return p.src[p.pos] }
func (p *preprocessor) getc() byte  { c := p.src[p.pos]; p.pos++; return c }

// Preprocess exposes the Stage 1 + Stage 2 normalized byte buffer, for
// callers (the "-d" debug dump) that need the intermediate form rather
// than the tokenized result New produces.
func Preprocess(src []byte) []byte { return preprocess(src) }

// preprocess returns the Stage 1 + Stage 2 normalized byte buffer.
func preprocess(src []byte) []byte {
	p := &preprocessor{src: src}

	inString := false
	inBinString := false
	var endMeta = -1 // -1 means "no #end meta-command seen"

	lines := [][]byte{{}}
	cur := func() []byte { return lines[len(lines)-1] }
	appendCur := func(b ...byte) { lines[len(lines)-1] = append(lines[len(lines)-1], b...) }
	newLine := func() { lines = append(lines, []byte{}) }

	for p.hasc() {
		c := p.getc()

		switch {
		case inBinString:
			appendCur(c)
			if c == '\\' && p.hasc() {
				appendCur(p.getc())
			} else if c == '"' {
				inBinString = false
			}

		case c == '\r' || c == '\n':
			if inString {
				appendCur('\\', 'n')
			} else {
				newLine()
			}
			if c == '\r' && p.hasc() && p.peekc() == '\n' {
				p.pos++
			}

		case inString:
			appendCur(c)
			if c == '\\' && p.hasc() && p.peekc() == '"' {
				appendCur(p.getc())
			} else if c == '"' {
				inString = false
			}

		default:
			if c == ';' && (len(cur()) == 0 || cur()[len(cur())-1] == ' ' || cur()[len(cur())-1] == '\t') {
				var comment []byte
				for p.hasc() {
					cc := p.getc()
					if cc == '\r' && p.hasc() && p.peekc() == '\n' {
						p.pos++
					}
					if cc == '\r' || cc == '\n' {
						newLine()
						break
					}
					comment = append(comment, cc)
				}
				if bytes.HasPrefix(comment, []byte("#")) {
					meta := bytes.TrimSpace(comment[1:])
					if string(meta) == "end" && endMeta < 0 {
						endMeta = len(lines) - 1
					}
				}
				continue
			}

			appendCur(c)
			switch {
			case c == '"':
				inString = true
			case c == '.' && p.hasc() && p.peekc() == '"':
				appendCur(p.getc())
				inBinString = true
			case c == '\\':
				if p.hasc() {
					cc := p.getc()
					if cc == '\r' && p.hasc() && p.peekc() == '\n' {
						p.pos++
					}
					if cc == '\r' || cc == '\n' {
						appendCur('\n')
					} else {
						appendCur(cc)
					}
				}
			}
		}
	}

	if endMeta >= 0 {
		lines = lines[:endMeta]
	}

	return stitch(lines)
}

// stitch implements Stage 2's whitespace stripping and line-joining
// rules.
func stitch(lines [][]byte) []byte {
	out := make([][]byte, 0, len(lines))
	for _, line := range lines {
		line = bytes.TrimRight(line, " \t\r\n\f\v")
		line = stripIndent(line)
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		out = append(out, line)
	}

	i := 0
	for i+1 < len(out) {
		last := out[i][len(out[i])-1]
		next := out[i+1][0]
		if isDigitOrDot(last) && isDigit(next) {
			// The only place a newline survives into the token stream:
			// it breaks what would otherwise be one ambiguous numeric
			// token into two.
			out[i] = append(out[i], '\n')
			i++
			continue
		}
		out[i] = append(out[i], out[i+1]...)
		out = append(out[:i+1], out[i+2:]...)
	}

	return bytes.Join(out, []byte{})
}

// stripIndent strips leading indentation made up of exactly-two-space
// units or single tabs, in any mix.
func stripIndent(line []byte) []byte {
	i := 0
	for i < len(line) {
		if line[i] == '\t' {
			i++
		} else if i+1 < len(line) && line[i] == ' ' && line[i+1] == ' ' {
			i += 2
		} else {
			break
		}
	}
	return line[i:]
}

func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isDigitOrDot(b byte) bool { return isDigit(b) || b == '.' }
