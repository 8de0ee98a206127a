package headline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"
)

// IDGenerator issues identifiers for styled words. Implementations never
// return the same value twice within a process.
type IDGenerator interface {
	NextID() string
}

// SequentialIDs issues "<prefix><n>" identifiers from a monotonically
// increasing counter.
type SequentialIDs struct {
	prefix string
	next   atomic.Uint64
}

// NewSequentialIDs returns a counter-backed generator. An empty prefix
// defaults to "w".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "w"
	}
	return &SequentialIDs{prefix: prefix}
}

// NextID implements IDGenerator.
func (g *SequentialIDs) NextID() string {
	return g.prefix + strconv.FormatUint(g.next.Add(1), 10)
}

// RandomIDs issues random version 4 UUID strings.
type RandomIDs struct{}

// NextID implements IDGenerator.
func (RandomIDs) NextID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("failed to generate styled word id: %v", err))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	var encoded [32]byte
	hex.Encode(encoded[:], b[:])

	return fmt.Sprintf("%s-%s-%s-%s-%s",
		encoded[0:8],
		encoded[8:12],
		encoded[12:16],
		encoded[16:20],
		encoded[20:32],
	)
}

// DefaultIDs is used when callers pass a nil generator.
var DefaultIDs IDGenerator = RandomIDs{}
