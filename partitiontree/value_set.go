package ptree

import (
	"math/bits"
	"strconv"
	"strings"
)

// Ordinal is the constraint for value domains: small closed enumerations
// whose members are compared by ordinal.
type Ordinal interface {
	~uint8
}

// ValueSet is an inline bitset over the 256 possible ordinals.
type ValueSet [4]uint64

func (s *ValueSet) Has(v uint8) bool {
	return s[v>>6]&(1<<(v&63)) != 0
}

func (s *ValueSet) Add(v uint8) {
	s[v>>6] |= 1 << (v & 63)
}

// Set replaces the contents with the singleton {v}.
func (s *ValueSet) Set(v uint8) {
	*s = ValueSet{}
	s.Add(v)
}

func (s *ValueSet) Reset() {
	*s = ValueSet{}
}

func (s *ValueSet) Union(o ValueSet) {
	for i := range s {
		s[i] |= o[i]
	}
}

func (s *ValueSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s *ValueSet) Empty() bool {
	return *s == ValueSet{}
}

// Single returns the lowest member. On a leaf that is the only member.
func (s *ValueSet) Single() (uint8, bool) {
	for i, w := range s {
		if w != 0 {
			return uint8(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// Members lists the ordinals in ascending order.
func (s *ValueSet) Members() []uint8 {
	out := make([]uint8, 0, s.Len())
	for i, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, uint8(i*64+b))
			w &= w - 1
		}
	}
	return out
}

func (s ValueSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range s.Members() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(m)))
	}
	sb.WriteByte('}')
	return sb.String()
}
