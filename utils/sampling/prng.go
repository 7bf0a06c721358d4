// Package sampling provides deterministic pseudo-random number generation,
// used to derive reproducible inputs for tests and experiments.
package sampling

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic pseudo-random byte stream expanded from a key
// with the blake2b hash function in XOF mode. Two instances created with the
// same key produce the same sequence of bytes.
// KeyedPRNG methods must not be called concurrently, otherwise the resulting
// sequence is not deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// Uint64 returns the next 8 bytes of the stream as a uint64.
func (prng *KeyedPRNG) Uint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}

// RandFloat64 returns the next value of the stream as a float64 between min and max.
func (prng *KeyedPRNG) RandFloat64(min, max float64) float64 {
	f := float64(prng.Uint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}
