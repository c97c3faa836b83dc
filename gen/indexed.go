package gen

import (
	"strconv"
	"strings"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/seq"
)

// Indexed emitters. Each walks its input with a counter starting at 0,
// incremented by exactly 1 per element, so the k-th element (0-based) is
// always assigned index k and emitted order equals input order.
//
// The empty-case results are operation-specific and deliberately not
// unified: an empty parameter list is the C "no parameters" marker (void),
// an empty field or argument list is emptiness, and an empty initializer
// list is the single zero placeholder {0}.

const (
	opIndexedParams          = "indexedParams"
	opIndexedFields          = "indexedFields"
	opIndexedInitializerList = "indexedInitializerList"
	opIndexedArgs            = "indexedArgs"
)

// memberName returns the synthetic name of the i-th member: _0, _1, ...
func memberName(i int) string {
	return "_" + strconv.Itoa(i)
}

// IndexedParams generates (T0 _0, ..., Tn-1 _n-1) from a sequence of type
// terms. An empty sequence yields (void).
//
//	IndexedParams(seq.New("int", "long long", "const char *"))
//	// (int _0, long long _1, const char * _2)
func IndexedParams(types seq.Seq[string]) (Fragment, error) {
	parts, err := indexedDecls(opIndexedParams, types, "")
	if err != nil {
		return Empty, err
	}
	if len(parts) == 0 {
		return Fragment("(void)"), nil
	}
	return Fragment("(" + strings.Join(parts, ", ") + ")"), nil
}

// IndexedFields generates T0 _0; ... Tn-1 _n-1; from a sequence of type
// terms. An empty sequence yields emptiness.
//
//	IndexedFields(seq.New("int", "long long"))  // int _0; long long _1;
func IndexedFields(types seq.Seq[string]) (Fragment, error) {
	parts, err := indexedDecls(opIndexedFields, types, ";")
	if err != nil {
		return Empty, err
	}
	return Fragment(strings.Join(parts, " ")), nil
}

// indexedDecls collects "T _i" declarations, one per type term in input
// order, each terminated by suffix.
func indexedDecls(op string, types seq.Seq[string], suffix string) ([]string, error) {
	if types == nil {
		return nil, errors.NewTypeMismatchError(op, "a sequence of type terms", "nil")
	}
	return seq.Fold(op, types, []string(nil), func(parts []string, i int, ty string) ([]string, error) {
		return append(parts, ty+" "+memberName(i)+suffix), nil
	})
}

// IndexedInitializerList generates {_0, ..., _n-1}. A zero count yields the
// zero-valued placeholder {0}.
//
//	IndexedInitializerList(3)  // {_0, _1, _2}
//	IndexedInitializerList(0)  // {0}
func IndexedInitializerList(n int) (Fragment, error) {
	items, err := indexedItems(opIndexedInitializerList, n)
	if err != nil {
		return Empty, err
	}
	if n == 0 {
		return Braced(Fragment("0")), nil
	}
	return Braced(items), nil
}

// IndexedArgs generates _0, ..., _n-1. A zero count yields emptiness.
//
//	IndexedArgs(2)  // _0, _1
func IndexedArgs(n int) (Fragment, error) {
	return indexedItems(opIndexedArgs, n)
}

func indexedItems(op string, n int) (Fragment, error) {
	if n < 0 {
		return Empty, errors.NewTypeMismatchError(op, "a non-negative count", n)
	}
	items := make([]string, n)
	for i := range items {
		items[i] = memberName(i)
	}
	return Fragment(strings.Join(items, ", ")), nil
}
