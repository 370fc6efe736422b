// Package parser turns a lexer.Lexer's token stream into an ast.Node
// tree: an arity-driven, delimiter-free grammar with block control flow
// and first-use "init" rewriting for lambdas and a couple of variables.
package parser

import (
	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/lexer"
)

// presetVars are the always-bound, always-arity-0 variable tokens.
// "Q" holds the stdin text supplied to the interpreter.
var presetVars = map[string]bool{
	"Z": true, "z": true, "e": true, "w": true, "d": true, "c": true,
	"a": true, "b": true, "k": true, "T": true, "Y": true, "Q": true,
	"$a": true, "$A": true, "$q": true, "$Q": true,
}

// initVars are x and y: arity-0 forever, but their first occurrence
// rewrites to an init expression that assigns them before use.
var initVars = map[string]bool{"x": true, "y": true}

// isVarToken reports whether data is a bare variable reference once
// any init rewriting has already happened for it (so it is safe to
// call on x/y only after their first occurrence has been consumed).
func isVarToken(data string) bool {
	return presetVars[data] || initVars[data]
}

// noAutoPrint is the set of expression heads that never auto-print.
var noAutoPrint = map[string]bool{"=": true, "~": true, "p": true}

// blockToks are the tokens that only make sense as block heads; using
// one where an expression is expected is a parse error.
const blockToks = "#BEFI"

func isBlockTok(data string) bool {
	return len(data) == 1 && containsByte(blockToks, data[0])
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// arities gives every non-block, non-variable operator's fixed arity;
// -1 marks "[", the only variadic operator, which reads expressions
// until a closing ')' or ';'/EOF.
var arities = map[string]int{
	"!": 1, "&": 2, "|": 2, "?": 3, "[": -1, "]": 1, ",": 2, "_": 1,
	"+": 2, "-": 2, "*": 2, "^": 2, "<": 2, ">": 2, "`": 1, "}": 2,
	"f": 2, "h": 1, "H": 1, "l": 1, "m": 2, "n": 2, "o": 2, "p": 1,
	"q": 2, "s": 1, "t": 1, "L": 1, "S": 1, "U": 1, "{": 1, "@": 2,
	".!": 1, ".<": 2, ".>": 2,
}

// lambdaPool is the cycling variable-name pool shared by "F" loops with
// no explicit loop variable, and by "m"/"f"/"o"'s lambda parameter.
var lambdaPool = [...]string{"a", "b", "c", "d", "e"}

// Parser holds the mutable state of one parse: the lexer cursor, which
// init-once tokens have fired, the else-propagation flag that threads
// an "E" back up through nested blocks, and the lambda-variable depth.
type Parser struct {
	lex           *lexer.Lexer
	seenInit      map[string]bool
	elsePropagate bool
	lambdaDepth   int
}

// Parse lexes and parses src, returning the root block.
func Parse(src []byte) (*ast.Node, error) {
	lx, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{lex: lx, seenInit: map[string]bool{}}
	return p.parseBlock(true)
}

// nextLambdaVar claims the next cycling variable name and returns a
// restore function the caller must call (via defer) on exit, so nested
// m/f/o/F scopes never see the same name at the same depth.
func (p *Parser) nextLambdaVar() (string, func()) {
	v := lambdaPool[p.lambdaDepth%len(lambdaPool)]
	p.lambdaDepth++
	return v, func() { p.lambdaDepth-- }
}

func litNode(tok lexer.Token) *ast.Node {
	switch tok.Lit {
	case lexer.LitNumber:
		return ast.NumLit(tok.Data)
	case lexer.LitString:
		return ast.StrLit(tok.Data)
	case lexer.LitBinString:
		return ast.BinStrLit(tok.Data)
	default:
		return ast.Var(tok.Data)
	}
}

// parseExpr parses one expression. startTok, if non-nil, is a token
// already consumed from the lexer that should be treated as the head
// (used by the init and assignment rewrites, which need to reparse a
// token they've already read).
func (p *Parser) parseExpr(startTok *lexer.Token) (*ast.Node, error) {
	var tok lexer.Token
	if startTok != nil {
		tok = *startTok
	} else {
		tok = p.lex.Get()
	}

	if tok.Kind == lexer.Symb && (tok.Data == "x" || tok.Data == "y" || tok.Data == "L") && !p.seenInit[tok.Data] {
		return p.parseInit(tok)
	}

	if tok.Kind == lexer.Lit || (tok.Kind == lexer.Symb && isVarToken(tok.Data)) {
		return litNode(tok), nil
	}

	if isBlockTok(tok.Data) {
		return nil, errf("error while parsing, block (%s) found, expression expected", tok.Data)
	}

	if tok.Data == "=" || tok.Data == "~" {
		return p.parseAssign(tok.Data)
	}

	if tok.Data == "m" || tok.Data == "f" || tok.Data == "o" {
		return p.parseLambdaOp(tok.Data)
	}

	arity, ok := arities[tok.Data]
	if !ok {
		return nil, errf("symbol not implemented: '%s'", tok.Data)
	}

	var args []*ast.Node
	for (arity < 0 || arity > 0) && p.lex.HasToken() {
		child, closed, err := p.parseChild()
		if err != nil {
			return nil, err
		}
		if closed {
			break
		}
		if child == nil {
			continue
		}
		args = append(args, child)
		if arity > 0 {
			arity--
		}
	}

	return &ast.Node{Kind: ast.KindExpr, Data: tok.Data, Args: args}, nil
}

// parseChild reads one argument expression for an operator's arity
// loop, honoring the space-skip and early-close rules that apply
// between arguments: ")" consumes itself and ends the enclosing
// expression; ";" does not consume and also ends it (left for an
// enclosing block to unwind on); a space token is skipped and does not
// count as an argument.
func (p *Parser) parseChild() (node *ast.Node, closed bool, err error) {
	for {
		if !p.lex.HasToken() {
			return nil, true, nil
		}
		peek := p.lex.Peek(0)

		if peek.Kind == lexer.Symb && (peek.Data == ")" || peek.Data == ";") {
			if peek.Data == ")" {
				p.lex.Get()
			}
			return nil, true, nil
		}

		if peek.Kind == lexer.Symb && peek.Data == " " {
			p.lex.Get()
			continue
		}

		node, err = p.parseExpr(nil)
		return node, false, err
	}
}

// parseLambdaOp parses "m"/"f"/"o": a seq/real expression evaluated in
// the current scope, then a lambda variable claimed from the cycling
// pool, then a body expression evaluated with that variable in scope.
func (p *Parser) parseLambdaOp(data string) (*ast.Node, error) {
	seq, closed, err := p.parseChild()
	if err != nil {
		return nil, err
	}
	n := &ast.Node{Kind: ast.KindExpr, Data: data}
	if closed || seq == nil {
		return n, nil
	}

	varName, restore := p.nextLambdaVar()
	defer restore()

	body, closed, err := p.parseChild()
	if err != nil {
		return nil, err
	}
	n.Var = varName
	n.Args = []*ast.Node{seq}
	if !closed && body != nil {
		n.Args = append(n.Args, body)
	}
	return n, nil
}

// parseAssign handles "=" and "~": either a direct "=var expr" or the
// function-head sugar "=op...var...expr" that rewrites "=+z5" into
// "=z (+z5)" by peeking (not consuming) the variable so the nested
// expression parse picks it up as its own first argument too.
func (p *Parser) parseAssign(data string) (*ast.Node, error) {
	assignVar := p.lex.Get()
	if assignVar.Kind != lexer.Symb {
		return nil, errf("expected symbol after '%s'", data)
	}

	if isVarToken(assignVar.Data) {
		// Assigning to x or y counts as their init: a later bare
		// occurrence is a plain reference, not a first-use rewrite.
		if initVars[assignVar.Data] {
			p.seenInit[assignVar.Data] = true
		}
		rhs, err := p.parseExpr(nil)
		if err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KindExpr, Data: data, Args: []*ast.Node{ast.Var(assignVar.Data), rhs}}, nil
	}

	startTok := assignVar
	if arity, ok := arities[startTok.Data]; !ok || arity < 1 {
		return nil, errf("expected variable or function after '%s'", data)
	}

	peeked := p.lex.Peek(0)
	if peeked.Kind != lexer.Symb || !isVarToken(peeked.Data) {
		return nil, errf("expected variable after '%s%s'", data, startTok.Data)
	}

	rhs, err := p.parseExpr(&startTok)
	if err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindExpr, Data: data, Args: []*ast.Node{ast.Var(peeked.Data), rhs}}, nil
}

// parseInit handles the first occurrence of "x", "y" or "L": parse one
// expression as the init value/body, then reparse the same token (now
// marked initialized) as the actual use, and fold the two together.
func (p *Parser) parseInit(tok lexer.Token) (*ast.Node, error) {
	p.seenInit[tok.Data] = true

	initExpr, err := p.parseExpr(nil)
	if err != nil {
		return nil, err
	}

	n := &ast.Node{Kind: ast.KindExpr, Data: "init-" + tok.Data}
	if tok.Data == "L" {
		n.Var = "a"
		actual, err := p.parseExpr(&tok)
		if err != nil {
			return nil, err
		}
		n.Args = append([]*ast.Node{initExpr}, actual.Args...)
		return n, nil
	}

	actual, err := p.parseExpr(&tok)
	if err != nil {
		return nil, err
	}
	n.Args = append([]*ast.Node{initExpr}, actual.Args...)
	return n, nil
}

// parseBlock parses one block's body: the implicit root if root is
// true, otherwise a block whose head token has already determined
// which of F/I/E/#/B it is.
func (p *Parser) parseBlock(root bool) (*ast.Node, error) {
	var blockTok lexer.Token
	if !root {
		blockTok = p.lex.Get()
	}

	data := "root"
	if !root {
		data = blockTok.Data
	}
	block := &ast.Node{Kind: ast.KindBlock, Data: data}

	if data == "I" {
		cond, err := p.parseExpr(nil)
		if err != nil {
			return nil, err
		}
		block.Args = []*ast.Node{cond}
	} else if data == "F" {
		iter, restore, err := p.parseForHead(block)
		if err != nil {
			return nil, err
		}
		if restore != nil {
			defer restore()
		}
		block.Args = []*ast.Node{iter}
	}

	implicitPrint := true
	for p.lex.HasToken() {
		tok := p.lex.Peek(0)

		switch {
		case tok.Kind == lexer.Symb && tok.Data == " ":
			p.lex.Get()
			implicitPrint = false

		case tok.Kind == lexer.Symb && tok.Data == "B":
			p.lex.Get()
			block.Children = append(block.Children, ast.Child{Node: &ast.Node{Kind: ast.KindBlock, Data: "B"}})
			implicitPrint = true
			return block, nil

		case tok.Kind == lexer.Symb && tok.Data == "E":
			afterBreak := len(block.Children) > 0 &&
				len(block.Children[len(block.Children)-1].Node.Children) > 0 &&
				block.Children[len(block.Children)-1].Node.Children[len(block.Children[len(block.Children)-1].Node.Children)-1].Node.Data == "B"

			if p.elsePropagate || afterBreak {
				elseBlock, err := p.parseBlock(false)
				if err != nil {
					return nil, err
				}
				block.Children = append(block.Children, ast.Child{Node: elseBlock})
				implicitPrint = true
				p.elsePropagate = false
			} else {
				if root {
					return nil, errf("else used at root level")
				}
				p.elsePropagate = true
				return block, nil
			}

		case tok.Kind == lexer.Symb && (tok.Data == ")" || tok.Data == ";"):
			if root {
				p.lex.Get()
				continue
			}
			if tok.Data == ")" {
				p.lex.Get()
			}
			return block, nil

		case tok.Kind == lexer.Symb && isBlockTok(tok.Data):
			child, err := p.parseBlock(false)
			if err != nil {
				return nil, err
			}
			block.Children = append(block.Children, ast.Child{Node: child})
			implicitPrint = true

		default:
			expr, err := p.parseExpr(nil)
			if err != nil {
				return nil, err
			}
			print := implicitPrint
			if len(expr.Data) > 5 && expr.Data[:5] == "init-" && len(expr.Args) == 1 {
				print = false
			}
			if tok.Kind == lexer.Symb && noAutoPrint[tok.Data] {
				print = false
			}
			block.Children = append(block.Children, ast.Child{Node: expr, AutoPrint: print})
			implicitPrint = true
		}
	}

	return block, nil
}

// parseForHead resolves "F"'s loop variable: an explicit bare variable
// token if the next token is one, otherwise a cycling implicit name
// from the same depth-keyed pool m/f/o use. Either way exactly one more
// expression follows as the iterable.
func (p *Parser) parseForHead(block *ast.Node) (*ast.Node, func(), error) {
	var restore func()
	if peek := p.lex.Peek(0); peek.Kind == lexer.Symb && isVarToken(peek.Data) {
		p.lex.Get()
		block.Var = peek.Data
	} else {
		block.Var, restore = p.nextLambdaVar()
	}

	iter, err := p.parseExpr(nil)
	if err != nil {
		return nil, nil, err
	}
	return iter, restore, nil
}
