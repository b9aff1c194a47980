// Package diff computes a longest common subsequence of two token sequences
// using Myers' O((n+m)*d) algorithm, extended to report the matching runs
// ("snakes") that make up the LCS rather than just its length.
package diff

import "github.com/codalotl/worddiff/internal/tokenize"

// Snake is a maximal run of matching tokens: for all 0 <= i < Length,
// removed-token X0+i equals added-token Y0+i.
//
// Invariants: snakes returned by Snakes are strictly increasing in both X0
// and Y0; X0+Length <= len(a); Y0+Length <= len(b).
type Snake struct {
	X0     int
	Y0     int
	Length int
}

// node is one entry in the path arena used to reconstruct the winning
// diagonal's snake list without cloning a slice at every step, which would
// cost O(d^2) memory on long inputs. Each node points at its predecessor by
// index, so extending a diagonal only ever appends one node.
type node struct {
	snake Snake
	prev  int // index into the node arena, or -1
}

// Snakes returns the ordered list of snakes covering an LCS of a (removed
// tokens) against b (added tokens). Token equality is the tokenizer's
// hash-then-bytes comparison; aData/bData are the backing buffers the spans
// in a/b are relative to.
func Snakes(a, b []tokenize.HashedSpan, aData, bData []byte) []Snake {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	equal := func(x, y int) bool {
		return tokenize.Equal(aData, a[x], bData, b[y])
	}

	max := n + m
	offset := max
	size := 2*max + 1
	xs := make([]int, size)
	heads := make([]int, size)
	for i := range heads {
		heads[i] = -1
	}

	var nodes []node

	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			var x, head int
			down := k == -d || (k != d && xs[k-1+offset] < xs[k+1+offset])
			if down {
				x = xs[k+1+offset]
				head = heads[k+1+offset]
			} else {
				x = xs[k-1+offset] + 1
				head = heads[k-1+offset]
			}
			y := x - k

			x0, y0 := x, y
			length := 0
			for x < n && y < m && equal(x, y) {
				x++
				y++
				length++
			}
			if length > 0 {
				nodes = append(nodes, node{snake: Snake{X0: x0, Y0: y0, Length: length}, prev: head})
				head = len(nodes) - 1
			}

			xs[k+offset] = x
			heads[k+offset] = head

			if x >= n && y >= m {
				return reconstruct(nodes, head)
			}
		}
	}
	// Unreachable for valid inputs: d never exceeds n+m before termination.
	return nil
}

// reconstruct back-walks the winning path's linked node list, producing
// snakes in X0 order, then merges any snakes that turn out to be exactly
// contiguous (the end point of one is the start point of the next) into a
// single snake.
func reconstruct(nodes []node, head int) []Snake {
	var rev []Snake
	for head != -1 {
		rev = append(rev, nodes[head].snake)
		head = nodes[head].prev
	}
	out := make([]Snake, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		s := rev[i]
		if n := len(out); n > 0 {
			prev := out[n-1]
			if prev.X0+prev.Length == s.X0 && prev.Y0+prev.Length == s.Y0 {
				out[n-1].Length += s.Length
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Aligned reports whether three points are collinear: z1-z0 and z2-z0 are
// parallel vectors. It can recognize when two adjacent snakes lie on the
// same diagonal; reconstruct does not call it and merges only snakes whose
// end and start points coincide.
func Aligned(z0, z1, z2 [2]int) bool {
	v01x, v01y := z1[0]-z0[0], z1[1]-z0[1]
	v02x, v02y := z2[0]-z0[0], z2[1]-z0[1]
	return v01x*v02y == v01y*v02x
}
