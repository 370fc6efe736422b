package interp

import (
	"sort"

	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/ops"
	"github.com/orlp/pyth5/value"
)

// evalInitLambda implements the first-use init of "L": bind a one-
// argument Lambda closing over the parsed-but-not-yet-evaluated body,
// then — if the init was immediately followed by an invocation argument
// (the parser folds that into a second Arg) — call it once.
func (it *Interp) evalInitLambda(n *ast.Node) (value.Value, error) {
	lam := &value.Lambda{Param: n.Var, Body: n.Args[0], Env: it.env}
	it.env.Set("L", lam)
	if len(n.Args) < 2 {
		return value.Nil, nil
	}
	argVal, err := it.eval(n.Args[1])
	if err != nil {
		return nil, err
	}
	return it.callLambda(lam, argVal)
}

// evalLambdaCall implements every occurrence of "L" after the first: an
// ordinary one-argument call against whatever Lambda is currently bound
// to the name "L".
func (it *Interp) evalLambdaCall(n *ast.Node) (value.Value, error) {
	bound, ok := it.env.Get("L")
	if !ok {
		return nil, &value.LookupError{Name: "L"}
	}
	lam, ok := bound.(*value.Lambda)
	if !ok {
		return nil, &value.BadTypeCombinationError{Func: "L", Args: []value.Value{bound}}
	}
	argVal, err := it.eval(n.Arg(0))
	if err != nil {
		return nil, err
	}
	return it.callLambda(lam, argVal)
}

// callLambda binds lam's parameter to arg in lam's environment and
// evaluates its body. Since the runtime has exactly one process-wide
// environment, lam.Env is always the interpreter's own env; the field
// exists to mirror the value model's general Lambda shape rather than
// to support real closures over nested scopes.
func (it *Interp) callLambda(lam *value.Lambda, arg value.Value) (value.Value, error) {
	lam.Env.Set(lam.Param, arg)
	return it.eval(lam.Body)
}

// evalLambdaOp implements "m" (map), "f" (filter) and "o" (order-by).
// Each introduces a fresh lambda variable (n.Var, claimed by the parser
// from the cycling pool per nesting depth) bound to each element of
// makeiter(seq) in turn while the body expression is evaluated.
func (it *Interp) evalLambdaOp(n *ast.Node) (value.Value, error) {
	if len(n.Args) == 0 {
		return value.Nil, nil
	}
	seqVal, err := it.eval(n.Args[0])
	if err != nil {
		return nil, err
	}
	if len(n.Args) < 2 {
		return value.Nil, nil
	}
	elems := ops.Elements(ops.MakeIter(seqVal))

	switch n.Data {
	case "m":
		return it.evalMap(n, elems)
	case "f":
		return it.evalFilter(n, seqVal, elems)
	default: // "o"
		return it.evalOrderBy(n, seqVal, elems)
	}
}

func (it *Interp) evalMap(n *ast.Node, elems []value.Value) (value.Value, error) {
	out := make(value.List, 0, len(elems))
	for _, el := range elems {
		it.env.Set(n.Var, el)
		v, err := it.eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (it *Interp) evalFilter(n *ast.Node, seqVal value.Value, elems []value.Value) (value.Value, error) {
	kept := make([]value.Value, 0, len(elems))
	for _, el := range elems {
		it.env.Set(n.Var, el)
		v, err := it.eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			kept = append(kept, el)
		}
	}
	return ops.RebuildSeq(seqVal, kept), nil
}

func (it *Interp) evalOrderBy(n *ast.Node, seqVal value.Value, elems []value.Value) (value.Value, error) {
	type keyed struct {
		key value.Value
		el  value.Value
	}
	pairs := make([]keyed, len(elems))
	for i, el := range elems {
		it.env.Set(n.Var, el)
		k, err := it.eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		pairs[i] = keyed{k, el}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return value.Less(pairs[i].key, pairs[j].key) })
	out := make([]value.Value, len(pairs))
	for i, p := range pairs {
		out[i] = p.el
	}
	return ops.RebuildSeq(seqVal, out), nil
}
