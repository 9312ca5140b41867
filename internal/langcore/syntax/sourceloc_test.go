package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocJoin(t *testing.T) {
	tests := []struct {
		name string
		a, b SourceLoc
		want SourceLoc
	}{
		{
			name: "a before b on one line",
			a:    NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 1, 3)),
			b:    NewSourceLoc("m.py", NewPos("m.py", 1, 5), NewPos("m.py", 1, 9)),
			want: NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 1, 9)),
		},
		{
			name: "b before a",
			a:    NewSourceLoc("m.py", NewPos("m.py", 3, 1), NewPos("m.py", 3, 3)),
			b:    NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 1, 3)),
			want: NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 3, 3)),
		},
		{
			name: "a invalid returns b",
			a:    NoLoc,
			b:    NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 1, 3)),
			want: NewSourceLoc("m.py", NewPos("m.py", 1, 1), NewPos("m.py", 1, 3)),
		},
		{
			name: "both invalid returns invalid",
			a:    NoLoc,
			b:    NoLoc,
			want: NoLoc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceLocIsValid(t *testing.T) {
	require.False(t, NoLoc.IsValid())
	require.True(t, pointLoc("f.py", NewPos("f.py", 1, 1)).IsValid())
}

func TestSourceLocString(t *testing.T) {
	l := NewSourceLoc("f.py", NewPos("f.py", 2, 4), NewPos("f.py", 2, 9))
	assert.Equal(t, "f.py:2:4", l.String())
	assert.Equal(t, "<invalid>", NoLoc.String())
}
