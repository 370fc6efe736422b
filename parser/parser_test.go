package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/parser"
)

func TestParse_SimpleArity2(t *testing.T) {
	root, err := parser.Parse([]byte(`+3 5`))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	expr := root.Children[0].Node
	assert.Equal(t, ast.KindExpr, expr.Kind)
	assert.Equal(t, "+", expr.Data)
	require.Len(t, expr.Args, 2)
	assert.Equal(t, ast.LitNum, expr.Args[0].LitKind)
	assert.Equal(t, "3", expr.Args[0].Data)
	assert.Equal(t, ast.LitNum, expr.Args[1].LitKind)
	assert.Equal(t, "5", expr.Args[1].Data)
}

func TestParse_MissingArgsBecomeNil(t *testing.T) {
	// Early EOF leaves unfilled argument slots nil, rather than
	// erroring.
	root, err := parser.Parse([]byte(`+3`))
	require.NoError(t, err)
	expr := root.Children[0].Node
	require.Len(t, expr.Args, 1)
	assert.Nil(t, expr.Arg(1))
}

func TestParse_UnknownSymbolErrors(t *testing.T) {
	// Every symbol not in the arity table, not a preset/init var, and
	// not a block token is a parse error.
	_, err := parser.Parse([]byte(`G`))
	assert.Error(t, err)
}

func TestParse_SemicolonUnwindsToRoot(t *testing.T) {
	// Any ";" unwinds to root regardless of how deep the open
	// expressions are.
	root, err := parser.Parse([]byte(`+3;5`))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "+", root.Children[0].Node.Data)
	assert.Nil(t, root.Children[0].Node.Arg(1))
	assert.Equal(t, ast.LitNum, root.Children[1].Node.LitKind)
	assert.Equal(t, "5", root.Children[1].Node.Data)
}

func TestParse_InitOnceOnlyWrapsFirstOccurrence(t *testing.T) {
	// The second occurrence of L/x/y is not wrapped in an init; only
	// the first is.
	root, err := parser.Parse([]byte(`+x5 x`))
	require.NoError(t, err)
	expr := root.Children[0].Node
	assert.Equal(t, "init-x", expr.Args[0].Data)
	assert.Equal(t, ast.KindLit, expr.Args[1].Kind)
	assert.Equal(t, ast.LitVar, expr.Args[1].LitKind)
	assert.Equal(t, "x", expr.Args[1].Data)
}

func TestParse_AssignAutoPrintSuppressed(t *testing.T) {
	// "=" and "~" never auto-print their own result (noAutoPrint).
	root, err := parser.Parse([]byte(`=a5`))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.False(t, root.Children[0].AutoPrint)
}

func TestParse_SpaceSuppressesAutoPrintForNextItem(t *testing.T) {
	root, err := parser.Parse([]byte(`3 5`))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.True(t, root.Children[0].AutoPrint)
	assert.False(t, root.Children[1].AutoPrint)
}

func TestParse_ArityTotality(t *testing.T) {
	// Every operator followed by exactly its arity of literals parses
	// to a single well-formed expression with no tokens left over.
	// m/f/o take their two operands
	// through the lambda-variable machinery but consume the same count.
	ops := map[string]int{
		"!": 1, "&": 2, "|": 2, "?": 3, "]": 1, ",": 2, "_": 1,
		"+": 2, "-": 2, "*": 2, "^": 2, "<": 2, ">": 2, "`": 1,
		"{": 1, "}": 2, "@": 2, "f": 2, "h": 1, "H": 1, "l": 1,
		"m": 2, "n": 2, "o": 2, "p": 1, "q": 2, "s": 1, "t": 1,
		"S": 1, "U": 1, ".!": 1, ".<": 2, ".>": 2,
	}
	for op, arity := range ops {
		src := op
		for i := 0; i < arity; i++ {
			src += " 1"
		}
		root, err := parser.Parse([]byte(src))
		require.NoError(t, err, "source %q", src)
		require.Len(t, root.Children, 1, "source %q", src)
		expr := root.Children[0].Node
		assert.Equal(t, ast.KindExpr, expr.Kind, "source %q", src)
		assert.Len(t, expr.Args, arity, "source %q", src)
	}
}

func TestParse_AssignToXCountsAsInit(t *testing.T) {
	// After "=x5", a bare "x" is a plain reference, never an init
	// rewrite.
	root, err := parser.Parse([]byte(`=x5x`))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	ref := root.Children[1].Node
	assert.Equal(t, ast.KindLit, ref.Kind)
	assert.Equal(t, ast.LitVar, ref.LitKind)
	assert.Equal(t, "x", ref.Data)
}

func TestParse_IfElsePairing(t *testing.T) {
	root, err := parser.Parse([]byte(`I0p8 10E5`))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	ifNode := root.Children[0].Node
	assert.Equal(t, ast.KindBlock, ifNode.Kind)
	assert.Equal(t, "I", ifNode.Data)
	elseNode := root.Children[1].Node
	assert.Equal(t, "E", elseNode.Data)
}
