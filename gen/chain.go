package gen

import "strings"

// Statement-chaining combinators. Each emits a statement prefix: C text that
// must be followed by exactly one statement, such that the prefix and that
// statement together form a single statement. The emitted construct is a
// single-iteration for loop: its flag starts in a "not yet run" state, the
// condition holds while in that state, and the update transitions to "done"
// after one iteration. The governed statement therefore executes exactly
// once, and any initializer in the loop head is evaluated exactly once, no
// matter what control flow the governed statement contains.
//
// The loop head's bookkeeping name intentionally shadows any identically
// named variable in an enclosing scope; stacked combinators rely on this.
// The exception is acknowledged in the output itself: every prefix frames
// its loop head with push/ignore/pop of the shadow diagnostic.

// StmtPrefix is a fragment that expects exactly one following statement.
// Applying Stmt supplies it and yields the composed single statement.
type StmtPrefix Fragment

// Stmt binds the governed statement to the prefix. The result is itself a
// single statement, accepted anywhere one is syntactically required.
func (p StmtPrefix) Stmt(stmt Fragment) Fragment {
	if p == "" {
		return stmt
	}
	return Fragment(string(p) + "\n" + string(stmt))
}

// Fragment returns the prefix text without a governed statement.
func (p StmtPrefix) Fragment() Fragment {
	return Fragment(p)
}

// Chain composes prefixes in source order: each wraps the next, and the
// outermost ends only after the innermost's governed statement completes.
// Chain() is the identity prefix, so a chain of K combinators followed by
// one statement is a single statement for all K >= 0.
func Chain(prefixes ...StmtPrefix) StmtPrefix {
	parts := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p != "" {
			parts = append(parts, string(p))
		}
	}
	return StmtPrefix(strings.Join(parts, "\n"))
}

// Bookkeeping names for the guard flags. Fixed on purpose: nested guards
// shadow one another, which the shadow acknowledgement frame declares.
const (
	breakFlag    = "cgen_priv_break"
	exprStmtFlag = "cgen_priv_expr_stmt_break"
)

// IntroduceVarToStmt introduces variable definitions scoped to exactly the
// following statement. Definitions are written as in the first clause of a
// for loop, so all of them must share one base type:
//
//	IntroduceVarToStmt("double x = 5.0", "y = 7.0").Stmt(
//	    `printf("%f %f\n", x, y);`)
//
// The bound variables are visible and initialized inside the governed
// statement and do not leak beyond it.
func IntroduceVarToStmt(defs ...string) StmtPrefix {
	head := "for (" + strings.Join(defs, ", ") + ", *" + breakFlag + " = (void *)0; " +
		breakFlag + " != (void *)1; " +
		breakFlag + " = (void *)1)"
	return shadows(head)
}

// IntroduceNonNullPtrToStmt binds a single non-null pointer to ty, named
// name and initialized to init, scoped to exactly the following statement.
// init is evaluated exactly once, and the loop condition references the
// pointer itself, so an "unused variable" diagnostic is structurally
// impossible.
//
//	IntroduceNonNullPtrToStmt("double", "x_ptr", "&x").Stmt(
//	    `printf("%f\n", *x_ptr);`)
func IntroduceNonNullPtrToStmt(ty, name, init string) StmtPrefix {
	head := "for (" + ty + " *" + name + " = (" + init + "); " +
		name + " != (void *)0; " +
		name + " = (void *)0)"
	return shadows(head)
}

// ChainExprStmt evaluates expr for its side effect exactly once, right
// before the following statement, without introducing any visible binding.
//
//	ChainExprStmt("x = 5").Stmt(`printf("%d\n", x);`)
func ChainExprStmt(expr string) StmtPrefix {
	head := "for (int " + exprStmtFlag + " = ((" + expr + "), 0); " +
		exprStmtFlag + " != 1; " +
		exprStmtFlag + " = 1)"
	return shadows(head)
}

// SuppressUnusedBeforeStmt suppresses the "unused X" diagnostic right before
// the following statement.
//
// Deprecated: use ChainExprStmt("(void)" + expr) instead.
func SuppressUnusedBeforeStmt(expr string) StmtPrefix {
	return ChainExprStmt("(void)" + expr)
}

// shadows frames a loop head with the shadow diagnostic acknowledgement.
func shadows(head string) StmtPrefix {
	return StmtPrefix(strings.Join([]string{
		"#ifdef __clang__",
		"#pragma clang diagnostic push",
		`#pragma clang diagnostic ignored "-Wshadow"`,
		"#endif",
		head,
		"#ifdef __clang__",
		"#pragma clang diagnostic pop",
		"#endif",
	}, "\n"))
}
