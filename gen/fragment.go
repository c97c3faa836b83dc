// Package gen emits fragments of the C declaration and statement surface:
// indexed parameter/field/argument lists, aggregate type wrappers, and
// statement-chaining combinators with deterministic symbol hygiene.
//
// The package runs once, synchronously, at program-construction time. It is
// pure and deterministic: identical inputs yield identical fragments, and no
// state survives between calls.
//
// # Statement chaining
//
// A statement-chaining combinator expects a statement right after its
// expansion, and the combinator plus that statement together form exactly
// one statement. This lets a code generator build statement prefixes:
//
//	prefix := gen.Chain(
//	    gen.IntroduceVarToStmt("int x = 5"),
//	    gen.ChainExprStmt(`printf("%d\n", x)`),
//	)
//	stmt := prefix.Stmt("do_work(x);")
//
// stmt is a single C statement and is accepted anywhere one is required,
// including as the unbraced body of an if or for.
//
// See https://www.chiark.greenend.org.uk/~sgtatham/mp/ for an analysis of
// statement prefixes.
package gen

import "strings"

// Fragment is an immutable unit of generated C text. Fragments concatenate
// left to right in traversal order.
type Fragment string

// Empty is the empty fragment, the result of traversing an empty sequence
// unless the operation defines an explicit empty-case override.
const Empty Fragment = ""

func (f Fragment) String() string {
	return string(f)
}

// IsEmpty reports whether the fragment carries no text.
func (f Fragment) IsEmpty() bool {
	return f == Empty
}

// Concat joins fragments left to right.
func Concat(frags ...Fragment) Fragment {
	var sb strings.Builder
	for _, f := range frags {
		sb.WriteString(string(f))
	}
	return Fragment(sb.String())
}
