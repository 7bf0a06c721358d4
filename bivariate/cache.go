package bivariate

import (
	"encoding/binary"
	"math/big"
	"sync"

	"github.com/skal65535/lolremez/utils"
	"github.com/zeebo/blake3"
)

// Cache memoizes evaluations of the target function. The same
// (pivot, grid point) combinations recur many times within the pivot scan
// and the coefficient update of a single iteration, and across iterations;
// the cache guarantees that the target function is evaluated at most once
// per distinct (x, y) pair over the lifetime of a solver.
//
// Entries are keyed by a blake3 digest of the exact encodings of both
// coordinates, so only bit-identical coordinates share an entry. The cache
// grows monotonically and is never evicted; the candidate grid is finite,
// so its size is bounded by (grid size + 1 + iterations)^2.
type Cache struct {
	mutex  sync.Mutex
	fn     func(x, y *big.Float) *big.Float
	values map[string]*big.Float
}

// NewCache creates a new Cache memoizing fn.
func NewCache(fn func(x, y *big.Float) *big.Float) *Cache {
	return &Cache{
		fn:     fn,
		values: map[string]*big.Float{},
	}
}

// Eval returns fn(x, y), computing it only if no bit-identical (x, y) pair
// has been evaluated before. The lock is held across the computation so
// that concurrent callers never evaluate the same pair twice. The returned
// value is shared and must not be mutated by the caller.
func (c *Cache) Eval(x, y *big.Float) *big.Float {

	k := cacheKey(x, y)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if v, ok := c.values[k]; ok {
		return v
	}

	v := c.fn(x, y)
	c.values[k] = v

	return v
}

// Evaluations returns the number of distinct (x, y) pairs evaluated so far.
func (c *Cache) Evaluations() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.values)
}

// Keys returns the sorted digests of all cached pairs.
func (c *Cache) Keys() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return utils.GetSortedKeys(c.values)
}

// cacheKey hashes the exact encodings of x and y, length-prefixed so that
// distinct pairs can never produce the same input stream.
func cacheKey(x, y *big.Float) string {

	xb, err := x.GobEncode()
	if err != nil {
		panic(err)
	}
	yb, err := y.GobEncode()
	if err != nil {
		panic(err)
	}

	h := blake3.New()
	if err := binary.Write(h, binary.BigEndian, uint32(len(xb))); err != nil {
		panic(err)
	}
	h.Write(xb)
	h.Write(yb)

	return string(h.Sum(nil))
}
