package pow

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

const TargetSize = 32

// Target is a 256-bit proof of work target stored big-endian. A block hash
// satisfies the target when, read as a number, it is not greater than it.
type Target [TargetSize]byte

// CompactTarget is the nBits encoding of a Target carried in block headers.
type CompactTarget uint32

var (
	maxAttainableMainnet = Target{
		0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00,
	}
	maxAttainableSignet = Target{
		0x00, 0x00, 0x03, 0x77, 0xae, 0x00, 0x00, 0x00,
	}
	maxAttainableRegtest = Target{
		0x7f, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	maxTarget = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*TargetSize), big.NewInt(1))
)

// MaxAttainableMainnet is the loosest target expressible on mainnet (0x1d00ffff).
func MaxAttainableMainnet() Target {
	return maxAttainableMainnet
}

// MaxAttainableTestnet matches mainnet.
func MaxAttainableTestnet() Target {
	return maxAttainableMainnet
}

// MaxAttainableSignet is the default signet challenge limit (0x1e0377ae).
func MaxAttainableSignet() Target {
	return maxAttainableSignet
}

// MaxAttainableRegtest is 0x207fffff.
func MaxAttainableRegtest() Target {
	return maxAttainableRegtest
}

// TargetFromBig converts n to a Target. Negative values clamp to zero and
// values wider than 256 bits saturate to the all-ones target.
func TargetFromBig(n *big.Int) Target {
	var t Target
	switch {
	case n.Sign() <= 0:
		return t
	case n.Cmp(maxTarget) > 0:
		n = maxTarget
	}
	n.FillBytes(t[:])
	return t
}

func (t Target) Big() *big.Int {
	return new(big.Int).SetBytes(t[:])
}

func (t Target) Cmp(other Target) int {
	return t.Big().Cmp(other.Big())
}

func (t Target) IsZero() bool {
	return t == Target{}
}

// ToCompact rounds the target down to its compact encoding.
func (t Target) ToCompact() CompactTarget {
	return CompactTarget(BigToCompact(t.Big()))
}

// IsAttainable reports whether the target survives a round trip through the
// compact encoding unchanged.
func (t Target) IsAttainable() bool {
	return t.ToCompact().ToTarget() == t
}

func (t Target) String() string {
	return hex.EncodeToString(t[:])
}

// ToTarget expands the compact encoding. Negative encodings yield the zero target.
func (c CompactTarget) ToTarget() Target {
	return TargetFromBig(CompactToBig(uint32(c)))
}

func (c CompactTarget) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}
