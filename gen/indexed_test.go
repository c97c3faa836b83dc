package gen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/seq"
)

func TestIndexedParams(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{
			name:  "empty sequence is the void marker",
			types: nil,
			want:  "(void)",
		},
		{
			name:  "single type",
			types: []string{"int"},
			want:  "(int _0)",
		},
		{
			name:  "two types",
			types: []string{"int", "long long"},
			want:  "(int _0, long long _1)",
		},
		{
			name:  "pointer types keep their spelling",
			types: []string{"int", "long long", "const char *"},
			want:  "(int _0, long long _1, const char * _2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IndexedParams(seq.FromSlice(tt.types))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestIndexedFields(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{
			name:  "empty sequence is emptiness",
			types: nil,
			want:  "",
		},
		{
			name:  "single field",
			types: []string{"int"},
			want:  "int _0;",
		},
		{
			name:  "three fields",
			types: []string{"int", "long long", "const char *"},
			want:  "int _0; long long _1; const char * _2;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IndexedFields(seq.FromSlice(tt.types))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestIndexedFieldsIndexMatchesInputOrder(t *testing.T) {
	// Every element's index must equal its 0-based input position, whatever
	// the sequence length.
	for n := 0; n <= 8; n++ {
		types := make([]string, n)
		for i := range types {
			types[i] = fmt.Sprintf("t%d", i)
		}

		got, err := IndexedFields(seq.FromSlice(types))
		require.NoError(t, err)

		if n == 0 {
			assert.Equal(t, "", got.String())
			continue
		}
		decls := strings.Split(got.String(), " ")
		require.Len(t, decls, 2*n)
		for i := 0; i < n; i++ {
			assert.Equal(t, fmt.Sprintf("t%d", i), decls[2*i])
			assert.Equal(t, fmt.Sprintf("_%d;", i), decls[2*i+1])
		}
	}
}

func TestIndexedInitializerList(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "{0}"},
		{1, "{_0}"},
		{3, "{_0, _1, _2}"},
	}

	for _, tt := range tests {
		got, err := IndexedInitializerList(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestIndexedArgs(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "_0"},
		{2, "_0, _1"},
		{4, "_0, _1, _2, _3"},
	}

	for _, tt := range tests {
		got, err := IndexedArgs(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestNegativeCountIsTypeMismatch(t *testing.T) {
	for _, op := range []struct {
		name string
		call func(int) (Fragment, error)
	}{
		{"indexedInitializerList", IndexedInitializerList},
		{"indexedArgs", IndexedArgs},
	} {
		t.Run(op.name, func(t *testing.T) {
			got, err := op.call(-1)
			require.Error(t, err)
			assert.True(t, errors.IsTypeMismatchError(err))
			assert.Contains(t, err.Error(), op.name)
			assert.Contains(t, err.Error(), "-1")
			// No partial fragment escapes on failure.
			assert.Equal(t, Empty, got)
		})
	}
}

func TestNilSequenceIsTypeMismatch(t *testing.T) {
	for _, op := range []struct {
		name string
		call func(seq.Seq[string]) (Fragment, error)
	}{
		{"indexedParams", IndexedParams},
		{"indexedFields", IndexedFields},
	} {
		t.Run(op.name, func(t *testing.T) {
			got, err := op.call(nil)
			require.Error(t, err)
			assert.True(t, errors.IsTypeMismatchError(err))
			assert.Contains(t, err.Error(), op.name)
			assert.Equal(t, Empty, got)
		})
	}
}

func TestMalformedSequenceIsReported(t *testing.T) {
	malformed := seq.Cons[string]{Head: "int", Tail: nil}

	got, err := IndexedFields(malformed)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedSequenceError(err))
	assert.Contains(t, err.Error(), "indexedFields")
	assert.Equal(t, Empty, got)
}

func TestEmptyCasesAreNotUnified(t *testing.T) {
	params, err := IndexedParams(seq.New[string]())
	require.NoError(t, err)
	fields, err := IndexedFields(seq.New[string]())
	require.NoError(t, err)
	init, err := IndexedInitializerList(0)
	require.NoError(t, err)
	args, err := IndexedArgs(0)
	require.NoError(t, err)

	assert.Equal(t, "(void)", params.String())
	assert.Equal(t, "", fields.String())
	assert.Equal(t, "{0}", init.String())
	assert.Equal(t, "", args.String())
}
