package extract

import (
	"math/bits"
	"strconv"
	"strings"
)

// RegSet has bit i set when architectural register i is referenced.
type RegSet uint64

func regBit(r uint64) RegSet { return RegSet(1) << (r & 63) }

func (s RegSet) Has(r uint) bool { return s&(RegSet(1)<<(r&63)) != 0 }

func (s RegSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Regs lists the register indices in ascending order.
func (s RegSet) Regs() []uint {
	out := make([]uint, 0, s.Count())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, uint(bits.TrailingZeros64(v)))
	}
	return out
}

func (s RegSet) String() string {
	regs := s.Regs()
	parts := make([]string, len(regs))
	for i, r := range regs {
		parts[i] = strconv.FormatUint(uint64(r), 10)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func u64Mask() uint64 { // max uint64
	return 0xFFFF_FFFF_FFFF_FFFF
}

// signExtend treats bit as the sign bit of v and extends it through bit 63.
func signExtend(v uint64, bit uint) uint64 {
	switch v & (1 << bit) {
	case 0:
		// fill with zeroes, by masking
		return v & (u64Mask() >> (63 - bit))
	default:
		// fill with ones, by or-ing
		return v | (u64Mask() << bit)
	}
}
