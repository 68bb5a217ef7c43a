package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobAppendData(t *testing.T) {
	b := NewBlob(1, []byte("ab"))
	require.NoError(t, b.AppendData([]byte("cd")))
	require.Equal(t, []byte("abcd"), b.Data())
}

func TestBlobAppendDataEquivalence(t *testing.T) {
	b1 := NewBlob(1, nil)
	require.NoError(t, b1.AppendData([]byte("foo")))
	require.NoError(t, b1.AppendData([]byte("bar")))

	b2 := NewBlob(1, []byte("foobar"))
	require.Equal(t, 0, b1.Compare(b2))
}

func TestBlobRange(t *testing.T) {
	b := NewBlob(1, []byte("hello world"))
	require.NoError(t, b.Range(0, b.Len()))
	require.Equal(t, "hello world", string(b.Data()))

	require.NoError(t, b.Range(6, 5))
	require.Equal(t, "world", string(b.Data()))
}

func TestBlobFrozenRejectsMutation(t *testing.T) {
	b := NewBlob(1, []byte("x"))
	b.Freeze()
	require.ErrorIs(t, b.AppendData([]byte("y")), ErrFrozen)
}

func TestBlobCloneIsIndependent(t *testing.T) {
	b := NewBlob(1, []byte("x"))
	clone := b.Clone().(*Blob)
	require.NoError(t, clone.AppendData([]byte("y")))
	require.Equal(t, "x", string(b.Data()))
	require.Equal(t, "xy", string(clone.Data()))
}

func TestBlobThawClonesOnlyWhenFrozen(t *testing.T) {
	b := NewBlob(1, []byte("x"))
	require.Same(t, b, b.Thaw())
	b.Freeze()
	thawed := b.Thaw()
	require.NotSame(t, b, thawed)
}
