package view

import "iter"

// FindIfSeq returns the position of the first element of seq satisfying
// pred and true, or the number of elements consumed and false.
func FindIfSeq[T any](seq iter.Seq[T], pred func(T) bool) (int, bool) {
	i := 0
	for v := range seq {
		if pred(v) {
			return i, true
		}
		i++
	}
	return i, false
}

// CountIfSeq returns the number of elements of seq satisfying pred.
func CountIfSeq[T any](seq iter.Seq[T], pred func(T) bool) int {
	n := 0
	for v := range seq {
		if pred(v) {
			n++
		}
	}
	return n
}

// AllOfSeq reports whether pred holds for every element of seq.
func AllOfSeq[T any](seq iter.Seq[T], pred func(T) bool) bool {
	_, found := FindIfSeq(seq, func(v T) bool { return !pred(v) })
	return !found
}

// AnyOfSeq reports whether pred holds for some element of seq.
func AnyOfSeq[T any](seq iter.Seq[T], pred func(T) bool) bool {
	_, found := FindIfSeq(seq, pred)
	return found
}

// NoneOfSeq reports whether pred holds for no element of seq.
func NoneOfSeq[T any](seq iter.Seq[T], pred func(T) bool) bool {
	return !AnyOfSeq(seq, pred)
}

// SeqMismatch describes where two sequences diverged.
type SeqMismatch struct {
	Pos        int  // elements matched before divergence
	ExhaustedA bool // a ran out at Pos
	ExhaustedB bool // b ran out at Pos
}

// MismatchSeq walks a and b in lockstep while eq holds.
func MismatchSeq[T, U any](a iter.Seq[T], b iter.Seq[U], eq func(T, U) bool) SeqMismatch {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	pos := 0
	for {
		va, okA := nextA()
		vb, okB := nextB()
		if !okA || !okB || !eq(va, vb) {
			return SeqMismatch{Pos: pos, ExhaustedA: !okA, ExhaustedB: !okB}
		}
		pos++
	}
}

// EqualSeq reports whether a and b yield equal elements and end together.
func EqualSeq[T comparable](a, b iter.Seq[T]) bool {
	m := MismatchSeq(a, b, eq[T])
	return m.ExhaustedA && m.ExhaustedB
}

// StartsWithSeq reports whether prefix is a prefix of seq.
func StartsWithSeq[T comparable](seq, prefix iter.Seq[T]) bool {
	return MismatchSeq(seq, prefix, eq[T]).ExhaustedB
}
