package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameValidityOperator(t *testing.T) {
	require.True(t, IsNameValid([]byte("+")))
	require.True(t, IsNameValid([]byte("+=")))
	require.False(t, IsNameValid([]byte("+a")))
}

func TestNameValidityAlphabetic(t *testing.T) {
	require.True(t, IsNameValid([]byte("foo")))
	require.True(t, IsNameValid([]byte("foo_bar")))
	require.False(t, IsNameValid([]byte("foo__bar")))
	require.False(t, IsNameValid([]byte("foo_")))
	require.True(t, IsNameValid([]byte("naïve")))
}

func TestNameValiditySyntacticMarkers(t *testing.T) {
	require.True(t, IsNameValid([]byte("\n")))
	require.True(t, IsNameValid([]byte("\t")))
	require.True(t, IsNameValid([]byte("\b")))
	require.False(t, IsNameValid([]byte("\r")))
}

func TestNameValidityEmpty(t *testing.T) {
	require.False(t, IsNameValid(nil))
}

func TestNameNormalizeIdempotent(t *testing.T) {
	once := Normalize([]byte("Foo_Bar"))
	twice := Normalize(once)
	require.Equal(t, once, twice)
	require.Equal(t, "foobar", string(once))
}

func TestNameEqualByNormalizedForm(t *testing.T) {
	a := NewName(1, []byte("Foo_Bar"))
	b := NewName(1, []byte("foobar"))
	require.True(t, a.Equal(b))
}

func TestNameIsOperator(t *testing.T) {
	op := NewName(1, []byte("+"))
	require.True(t, op.IsOperator())

	word := NewName(1, []byte("foo"))
	require.False(t, word.IsOperator())
}

func TestNameConstructionPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() {
		NewName(1, []byte("foo__bar"))
	})
}

func TestNameCastsToBlob(t *testing.T) {
	n := NewName(1, []byte("foo"))
	_, ok := Cast(n, KindBlob)
	require.True(t, ok)
	_, ok = Cast(n, KindText)
	require.False(t, ok)
}

func TestNameCopyReturnsSameNode(t *testing.T) {
	n := NewName(1, []byte("foo"))
	copied := n.Copy()
	require.Same(t, n, copied)
	require.Equal(t, "name", copied.Typename())
	require.True(t, copied.Is(KindName))
}
