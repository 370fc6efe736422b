package interp

import (
	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/ops"
	"github.com/orlp/pyth5/value"
)

// runChildren runs one block's body items in order: it decides
// auto-print per item, and pairs an "I" or a loop ("F"/"#") with an
// immediately following "E" sibling the way the parser produces them
// (E is a sibling in the same Children list, not a nested child of the
// block it attaches to).
//
// The only error value runChildren itself ever returns that is not a
// genuine evaluation failure is breakSignal, which unwinds through any
// number of nested non-loop blocks (I, or further nesting) until
// runLoop catches it.
func (it *Interp) runChildren(children []ast.Child) error {
	for i := 0; i < len(children); i++ {
		child := children[i]
		node := child.Node

		if node.Kind != ast.KindBlock {
			v, err := it.eval(node)
			if err != nil {
				return err
			}
			if child.AutoPrint && !value.IsNil(v) {
				it.print(v, true)
			}
			continue
		}

		switch node.Data {
		case "B":
			return breakSignal{}

		case "I":
			elseChildren, consumed := pairedElse(children, i)
			if consumed {
				i++
			}
			if err := it.runIf(node, elseChildren); err != nil {
				return err
			}

		case "F", "#":
			elseChildren, consumed := pairedElse(children, i)
			if consumed {
				i++
			}
			broke, err := it.runLoop(node)
			if err != nil {
				return err
			}
			if broke && elseChildren != nil {
				if err := it.runChildren(elseChildren); err != nil {
					return err
				}
			}

		default:
			// A bare "E" with no pairing target (grammar should never
			// produce one standalone) — run its body unconditionally
			// rather than silently dropping it.
			if err := it.runChildren(node.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// pairedElse reports whether children[i+1] is an "E" block attached to
// children[i], returning its body and true if so.
func pairedElse(children []ast.Child, i int) ([]ast.Child, bool) {
	if i+1 >= len(children) {
		return nil, false
	}
	next := children[i+1].Node
	if next.Kind == ast.KindBlock && next.Data == "E" {
		return next.Children, true
	}
	return nil, false
}

// runIf implements "I cond body", paired with an optional "E" sibling:
// if the condition is truthy, run the body; otherwise run the else body
// when one is attached.
func (it *Interp) runIf(node *ast.Node, elseChildren []ast.Child) error {
	cond, err := it.eval(node.Arg(0))
	if err != nil {
		return err
	}
	logger.Debug("block", "kind", "I", "truthy", value.Truthy(cond))
	if value.Truthy(cond) {
		return it.runChildren(node.Children)
	}
	if elseChildren != nil {
		return it.runChildren(elseChildren)
	}
	return nil
}

// runLoop implements "F" (for-each) and "#" (infinite, error-swallowing)
// loops. broke reports whether the loop ended via an explicit "B",
// which its caller uses to decide whether to additionally run a paired
// "E" sibling.
func (it *Interp) runLoop(node *ast.Node) (broke bool, err error) {
	logger.Debug("block", "kind", node.Data, "enter", true)
	defer logger.Debug("block", "kind", node.Data, "enter", false)

	switch node.Data {
	case "F":
		return it.runForLoop(node)
	case "#":
		return it.runForeverLoop(node)
	default:
		return false, nil
	}
}

func (it *Interp) runForLoop(node *ast.Node) (bool, error) {
	iterVal, err := it.eval(node.Arg(0))
	if err != nil {
		return false, err
	}
	elems := ops.Elements(ops.MakeIter(iterVal))
	for _, el := range elems {
		it.env.Set(node.Var, el)
		if err := it.runChildren(node.Children); err != nil {
			if isLoopError(err) {
				return false, err
			}
			return true, nil // the body raised breakSignal
		}
	}
	return false, nil
}

// runForeverLoop implements "#": it runs forever until either a break
// fires or the body raises any other runtime error, at which point the
// loop ends normally and the error is swallowed.
func (it *Interp) runForeverLoop(node *ast.Node) (bool, error) {
	for {
		err := guarded(func() error { return it.runChildren(node.Children) })
		if err == nil {
			continue
		}
		if isLoopError(err) {
			// Any runtime error other than breakSignal inside a "#"
			// body terminates the loop normally; it never escapes.
			return false, nil
		}
		return true, nil // the body raised breakSignal
	}
}
