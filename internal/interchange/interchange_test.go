package interchange

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/mkacz/turnip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	w := turnip.NewWorld()
	n := w.AddLoop(turnip.Pt(100, 0)).Origin()
	n = n.InsertSucc(turnip.Pt(0, 0))
	n.InsertSucc(turnip.Pt(0.125, 50))
	w.AddLoop(turnip.Pt(-1, -2))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, w))
	assert.Contains(t, buf.String(), `"version": 1`)

	got, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t,
		[]turnip.Point{turnip.Pt(100, 0), turnip.Pt(0, 0), turnip.Pt(0.125, 50)},
		slices.Collect(got.Loop(0).Positions()))
	assert.Equal(t, []turnip.Point{turnip.Pt(-1, -2)}, slices.Collect(got.Loop(1).Positions()))
}

func TestDecodeDocument(t *testing.T) {
	in := `{"version": 1, "loops": [{"nodes": [{"x": 1, "y": 2}, {"x": 3, "y": 4}]}]}`
	w, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, 2, w.Loop(0).Count())
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name, in string
		invalid  bool
	}{
		{"version", `{"version": 2, "loops": []}`, true},
		{"empty loop", `{"version": 1, "loops": [{"nodes": []}]}`, true},
		{"syntax", `{"version": 1, "loops": [`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestEmptyWorld(t *testing.T) {
	doc := FromWorld(turnip.NewWorld())
	assert.Equal(t, FormatVersion, doc.Version)
	assert.NotNil(t, doc.Loops, "loops encode as an empty list, not null")
	w, err := doc.World()
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}
