package criterion

import (
	"math/bits"
	"strconv"
	"strings"
)

// maxValue is the largest value a ValueSet can hold.
const maxValue = 63

// ValueSet is a set of small non-negative integers stored as a bitmask.
// Every extractor's universe fits inside it.
type ValueSet uint64

// Between returns the set {lo..hi}. It is empty when lo > hi. Bounds are
// clipped to 0..63.
func Between(lo, hi int) ValueSet {
	lo = max(lo, 0)
	hi = min(hi, maxValue)
	if lo > hi {
		return 0
	}
	var s ValueSet
	for v := lo; v <= hi; v++ {
		s |= 1 << v
	}
	return s
}

// Values returns the set holding exactly the given values. Values outside
// 0..63 are ignored.
func Values(vs ...int) ValueSet {
	var s ValueSet
	for _, v := range vs {
		if v >= 0 && v <= maxValue {
			s |= 1 << v
		}
	}
	return s
}

func (s ValueSet) Contains(v int) bool {
	return v >= 0 && v <= maxValue && s&(1<<v) != 0
}

func (s ValueSet) Union(o ValueSet) ValueSet     { return s | o }
func (s ValueSet) Intersect(o ValueSet) ValueSet { return s & o }

// Complement returns universe minus s.
func (s ValueSet) Complement(universe ValueSet) ValueSet {
	return universe &^ s
}

func (s ValueSet) IsEmpty() bool {
	return s == 0
}

func (s ValueSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Slice returns the members in ascending order.
func (s ValueSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for v := 0; v <= maxValue; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders runs of consecutive values as ranges, e.g. "0-2,5".
func (s ValueSet) String() string {
	return s.format(strconv.Itoa)
}

func (s ValueSet) format(name func(int) string) string {
	var parts []string
	vs := s.Slice()
	for i := 0; i < len(vs); {
		j := i
		for j+1 < len(vs) && vs[j+1] == vs[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, name(vs[i]))
		} else {
			parts = append(parts, name(vs[i])+"-"+name(vs[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
