// Package interp ties the lexer, parser, value and ops packages together
// into the single source-bytes-to-printed-output entry point: it
// tree-walks the ast.Node the parser produces, maintaining the
// process-wide environment and the captured output buffer, and hands
// every already-evaluated operator application to package ops.
package interp

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/lexer"
	"github.com/orlp/pyth5/ops"
	"github.com/orlp/pyth5/value"
)

// Interp holds the mutable state of one Interpret call: the environment
// and the output buffer. Both are created fresh per call (see
// Interpret), so Interpret stays re-entrant across sequential calls.
type Interp struct {
	env *value.Env
	out strings.Builder
}

// Interpret runs src and returns its captured stdout text. A non-nil
// error means evaluation aborted early; the text returned is still the
// partial output produced before the failure.
func Interpret(src []byte, opts ...Option) (string, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	preprocessed := lexer.Preprocess(src)
	root, err := cfg.cache.parse(src, preprocessed)

	var dump strings.Builder
	if cfg.debug {
		debugDump(&dump, src, preprocessed, root)
	}
	if err != nil {
		return dump.String(), err
	}

	it := &Interp{env: value.NewEnv()}
	if cfg.stdin != "" {
		it.env.Set("Q", value.Str(cfg.stdin))
	}

	logger.Debug("run start", "bytes", len(src))
	runErr := guarded(func() error { return it.runChildren(root.Children) })
	if _, isBreak := runErr.(breakSignal); isBreak {
		// A break that escapes every enclosing loop all the way to the
		// root is an internal control signal, never a user-visible
		// error.
		runErr = nil
	}
	logger.Debug("run end", "err", runErr)

	return dump.String() + it.out.String(), runErr
}

// print implements the shared half of auto-print and the explicit "p"
// operator: render v and append it to the output buffer. newline is
// false for "p" (which prints without one) and true for auto-print.
func (it *Interp) print(v value.Value, newline bool) {
	it.out.WriteString(value.AutoPrint(v))
	if newline {
		it.out.WriteByte('\n')
	}
}

// eval evaluates a single expression node (KindLit or KindExpr). A nil
// node — the parser's representation of an argument slot left unfilled
// by early EOF — evaluates to Nil.
func (it *Interp) eval(n *ast.Node) (value.Value, error) {
	if n == nil {
		return value.Nil, nil
	}
	switch n.Kind {
	case ast.KindLit:
		return it.evalLit(n)
	case ast.KindExpr:
		return it.evalExpr(n)
	default:
		return nil, fmt.Errorf("interp: cannot evaluate a block node as an expression")
	}
}

func (it *Interp) evalLit(n *ast.Node) (value.Value, error) {
	switch n.LitKind {
	case ast.LitVar:
		v, ok := it.env.Get(n.Data)
		if !ok {
			hint := value.FindClosestMatch(n.Data, it.env.Names())
			return nil, &value.LookupError{Name: n.Data, Hint: hint}
		}
		return v, nil
	case ast.LitStr, ast.LitBinStr:
		return value.Str(n.Data), nil
	case ast.LitNum:
		return parseNumLit(n.Data)
	default:
		return nil, fmt.Errorf("interp: unknown literal kind %d", n.LitKind)
	}
}

// parseNumLit turns a numeric literal's decimal text into an exact
// rational Num. The lexer keeps a trailing '.' on a number that is
// followed by a space, a newline or the end of input ("3. ", "0."); that
// dot is trimmed before the text is parsed.
func parseNumLit(text string) (value.Value, error) {
	t := strings.TrimSuffix(text, ".")
	if t == "" {
		t = "0"
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return nil, fmt.Errorf("interp: invalid numeric literal %q", text)
	}
	return value.FromRat(r), nil
}

// evalArgs evaluates every node in order, short-circuiting on the first
// error. Used by the default "eager evaluate then dispatch" path for
// every operator package ops implements.
func (it *Interp) evalArgs(nodes []*ast.Node) ([]value.Value, error) {
	out := make([]value.Value, len(nodes))
	for i, n := range nodes {
		v, err := it.eval(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalExpr dispatches a KindExpr node. Special forms that need the
// environment, lambda calls, or non-eager (short-circuiting) argument
// evaluation are handled directly here; everything else evaluates its
// arguments eagerly and hands them to ops.Dispatch.
func (it *Interp) evalExpr(n *ast.Node) (value.Value, error) {
	switch n.Data {
	case "&":
		a, err := it.eval(n.Arg(0))
		if err != nil {
			return nil, err
		}
		if !value.Truthy(a) {
			return a, nil
		}
		return it.eval(n.Arg(1))

	case "|":
		a, err := it.eval(n.Arg(0))
		if err != nil {
			return nil, err
		}
		if value.Truthy(a) {
			return a, nil
		}
		return it.eval(n.Arg(1))

	case "?":
		c, err := it.eval(n.Arg(0))
		if err != nil {
			return nil, err
		}
		if value.Truthy(c) {
			return it.eval(n.Arg(1))
		}
		return it.eval(n.Arg(2))

	case "p":
		v, err := it.eval(n.Arg(0))
		if err != nil {
			return nil, err
		}
		it.print(v, false)
		return v, nil

	case "=":
		return it.evalAssign(n, false)

	case "~":
		return it.evalAssign(n, true)

	case "init-x", "init-y":
		return it.evalInitVar(n)

	case "init-L":
		return it.evalInitLambda(n)

	case "L":
		return it.evalLambdaCall(n)

	case "m", "f", "o":
		return it.evalLambdaOp(n)

	default:
		args, err := it.evalArgs(n.Args)
		if err != nil {
			return nil, err
		}
		logger.Debug("dispatch", "op", n.Data, "argc", len(args))
		v, opErr, ok := ops.Dispatch(n.Data, args)
		if !ok {
			return nil, fmt.Errorf("interp: symbol not implemented: %q", n.Data)
		}
		return v, opErr
	}
}

// evalAssign implements "=" (assign, returns the new value) and "~"
// (post-assign, returns the old value). The parser's function-head
// sugar has already rewritten both forms into a plain (variable, rhs
// expression) pair by the time the evaluator sees them.
func (it *Interp) evalAssign(n *ast.Node, post bool) (value.Value, error) {
	name := n.Arg(0).Data
	rhs, err := it.eval(n.Arg(1))
	if err != nil {
		return nil, err
	}
	if post {
		old, ok := it.env.Get(name)
		if !ok {
			old = value.Nil
		}
		it.env.Set(name, rhs)
		return old, nil
	}
	it.env.Set(name, rhs)
	return rhs, nil
}

// evalInitVar implements the first-use init of "x" or "y": evaluate the
// init expression, bind it, and return it (so it can participate as an
// operand in whatever expression triggered the init, e.g. "+x5").
func (it *Interp) evalInitVar(n *ast.Node) (value.Value, error) {
	name := strings.TrimPrefix(n.Data, "init-")
	v, err := it.eval(n.Arg(0))
	if err != nil {
		return nil, err
	}
	it.env.Set(name, v)
	return v, nil
}
