package srcpos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func feedAndStep(t *testing.T, r *Registry, uri string, data string) []Pos {
	t.Helper()
	positions := make([]Pos, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		r.Feed(uri, []byte{b})
		positions = append(positions, r.Step(uri, b == '\n'))
	}
	return positions
}

func TestRegistrySingleLine(t *testing.T) {
	r := NewRegistry()
	start := r.OpenSourceFile("a.nyx")
	require.Equal(t, Pos(1), start)

	positions := feedAndStep(t, r, "a.nyx", "abc")
	info, ok := r.Info(positions[0])
	require.True(t, ok)
	require.Equal(t, "a.nyx", info.URI)
	require.Equal(t, int32(1), info.Line)
	require.Equal(t, int32(1), info.Column)

	info2, ok := r.Info(positions[2])
	require.True(t, ok)
	require.Equal(t, int32(3), info2.Column)

	src, ok := r.Source(info)
	require.True(t, ok)
	require.Equal(t, "abc", src)
}

func TestRegistryMultiLine(t *testing.T) {
	r := NewRegistry()
	r.OpenSourceFile("b.nyx")
	positions := feedAndStep(t, r, "b.nyx", "one\ntwo\n")

	firstOfSecondLine := positions[4] // index 4 is the 't' right after "one\n"
	info, ok := r.Info(firstOfSecondLine)
	require.True(t, ok)
	require.Equal(t, int32(2), info.Line)

	src, ok := r.Source(info)
	require.True(t, ok)
	require.Equal(t, "two", src)
}

func TestRegistryPositionsMonotonicAcrossFiles(t *testing.T) {
	r := NewRegistry()
	startA := r.OpenSourceFile("a.nyx")
	posA := feedAndStep(t, r, "a.nyx", "xy")
	startB := r.OpenSourceFile("b.nyx")
	posB := feedAndStep(t, r, "b.nyx", "z")

	require.True(t, startB > posA[len(posA)-1])
	require.Equal(t, startB, posB[0])
	require.True(t, startA < startB)
}

func TestRegistryUnknownPos(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Info(Pos(999))
	require.False(t, ok)
}
