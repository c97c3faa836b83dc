// Package seq provides the ordered sequence abstraction the gen emitters
// traverse. A sequence is an ordered, finite collection of opaque terms with
// exactly two variants, Nil and Cons. Order is semantically significant: it
// determines the index assigned to each term during emission.
//
// Sequences are owned by the caller and consumed, never mutated, by
// traversal.
package seq

import (
	"github.com/teranos/cgen/errors"
)

// Seq is an ordered, finite sequence of terms. The only implementations are
// Nil and Cons.
type Seq[T any] interface {
	seq()
}

// Nil is the empty sequence.
type Nil[T any] struct{}

func (Nil[T]) seq() {}

// Cons is a head term followed by the rest of the sequence. A Cons with a
// nil Tail is malformed and rejected by every traversal.
type Cons[T any] struct {
	Head T
	Tail Seq[T]
}

func (Cons[T]) seq() {}

// New builds a sequence from terms in order.
func New[T any](terms ...T) Seq[T] {
	return FromSlice(terms)
}

// FromSlice builds a sequence whose term order matches the slice order.
func FromSlice[T any](terms []T) Seq[T] {
	var s Seq[T] = Nil[T]{}
	for i := len(terms) - 1; i >= 0; i-- {
		s = Cons[T]{Head: terms[i], Tail: s}
	}
	return s
}

// Handlers is a dispatcher handler set: one handler per sequence variant.
// Both handlers must be present; Match reports an arity error otherwise.
// Extra arguments of type A are forwarded unchanged, and a handler may
// extend them (e.g. increment a counter) before recursing on the tail.
type Handlers[T, A, R any] struct {
	Nil  func(args A) (R, error)
	Cons func(head T, tail Seq[T], args A) (R, error)
}

// Match routes s to the handler matching its variant. op names the calling
// operation for error reports.
func Match[T, A, R any](op string, s Seq[T], h Handlers[T, A, R], args A) (R, error) {
	var zero R
	if h.Nil == nil || h.Cons == nil {
		return zero, errors.NewArityError(op, "handlers for both nil and cons variants", describeHandlers(h.Nil == nil, h.Cons == nil))
	}
	switch v := s.(type) {
	case nil:
		return zero, errors.NewTypeMismatchError(op, "a sequence", "nil")
	case Nil[T]:
		return h.Nil(args)
	case Cons[T]:
		if v.Tail == nil {
			return zero, errors.NewMalformedSequenceError(op)
		}
		return h.Cons(v.Head, v.Tail, args)
	default:
		return zero, errors.NewTypeMismatchError(op, "a nil or cons sequence variant", s)
	}
}

func describeHandlers(nilMissing, consMissing bool) string {
	switch {
	case nilMissing && consMissing:
		return "neither handler"
	case nilMissing:
		return "cons handler only"
	default:
		return "nil handler only"
	}
}

// Fold walks s iteratively, threading an accumulator and a counter that
// starts at 0 and increments by exactly 1 per cons step. Traversal depth is
// constant regardless of sequence length: each step is a single dispatch on
// the current cursor, not a recursive call.
//
// Fold validates before accumulating, so a malformed sequence is reported
// without a partial result reaching the caller.
func Fold[T, A any](op string, s Seq[T], acc A, step func(acc A, index int, term T) (A, error)) (A, error) {
	var zero A
	cursor := s
	for index := 0; ; index++ {
		next, err := Match(op, cursor, stepHandlers[T](), struct{}{})
		if err != nil {
			return zero, err
		}
		if next.done {
			return acc, nil
		}
		acc, err = step(acc, index, next.head)
		if err != nil {
			return zero, err
		}
		cursor = next.tail
	}
}

// stepResult is one dispatch step of an iterative traversal.
type stepResult[T any] struct {
	done bool
	head T
	tail Seq[T]
}

func stepHandlers[T any]() Handlers[T, struct{}, stepResult[T]] {
	return Handlers[T, struct{}, stepResult[T]]{
		Nil: func(struct{}) (stepResult[T], error) {
			return stepResult[T]{done: true}, nil
		},
		Cons: func(head T, tail Seq[T], _ struct{}) (stepResult[T], error) {
			return stepResult[T]{head: head, tail: tail}, nil
		},
	}
}

// Len returns the number of terms in s.
func Len[T any](op string, s Seq[T]) (int, error) {
	return Fold(op, s, 0, func(n, _ int, _ T) (int, error) {
		return n + 1, nil
	})
}

// Slice collects the terms of s in order.
func Slice[T any](op string, s Seq[T]) ([]T, error) {
	return Fold(op, s, []T(nil), func(out []T, _ int, term T) ([]T, error) {
		return append(out, term), nil
	})
}
