package interp

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/orlp/pyth5/ast"
	"github.com/orlp/pyth5/parser"
)

// Cache memoizes parsed trees keyed by a BLAKE2b-256 digest of the
// preprocessed source, so repeated Interpret calls on byte-identical
// programs (the CLI's --watch mode re-running on every save) skip
// re-parsing. Canonical CBOR gives the cached tree a byte-stable wire
// form, used both internally and by the "-d" debug dump's generated-code
// section.
type Cache struct {
	mu      sync.Mutex
	entries map[[32]byte][]byte // digest -> canonical CBOR-encoded *ast.Node
}

// NewCache builds an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[[32]byte][]byte)}
}

func cacheKey(preprocessed []byte) [32]byte {
	return blake2b.Sum256(preprocessed)
}

var canonicalEncMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("interp: invalid canonical CBOR options: " + err.Error())
	}
	return m
}()

// parse returns the AST for preprocessed source, consulting and
// populating c if non-nil.
func (c *Cache) parse(src []byte, preprocessed []byte) (*ast.Node, error) {
	if c == nil {
		return parser.Parse(src)
	}

	key := cacheKey(preprocessed)

	c.mu.Lock()
	blob, hit := c.entries[key]
	c.mu.Unlock()

	if hit {
		var n ast.Node
		if err := cbor.Unmarshal(blob, &n); err == nil {
			return &n, nil
		}
	}

	n, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	encoded, err := canonicalEncMode.Marshal(n)
	if err == nil {
		c.mu.Lock()
		c.entries[key] = encoded
		c.mu.Unlock()
	}
	return n, nil
}

// CanonicalDump renders n as indented canonical CBOR re-decoded into a
// generic structure, keeping the stable wire format separate from the
// human debug view.
func CanonicalDump(n *ast.Node) (string, error) {
	encoded, err := canonicalEncMode.Marshal(n)
	if err != nil {
		return "", err
	}
	var generic any
	if err := cbor.Unmarshal(encoded, &generic); err != nil {
		return "", err
	}
	return dumpValue(generic, 0), nil
}
