package script

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/mkacz/turnip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (*turnip.Editor, string, error) {
	t.Helper()
	var out bytes.Buffer
	in := &Interpreter{
		Editor: turnip.NewEditor(turnip.NewWorld(), turnip.DefaultTuning()),
		Out:    &out,
		DT:     1.0 / 60,
	}
	err := in.Run(strings.NewReader(src))
	return in.Editor, out.String(), err
}

const triangle = `
# a triangle, drawn by clicking
click 0 0
release
click 60 0
release
click 30 50
release
`

func TestBuildAndHover(t *testing.T) {
	e, out, err := run(t, triangle+`
hover 30 20
hover 1 1
hover 30 -3
hover 30 -40
hover 30 -200
`)
	require.NoError(t, err)
	require.Equal(t, 1, e.World.Len())
	assert.Equal(t,
		[]turnip.Point{turnip.Pt(0, 0), turnip.Pt(30, 50), turnip.Pt(60, 0)},
		slices.Collect(e.World.Loop(0).Positions()))
	assert.Equal(t, strings.Join([]string{
		"loop 0",
		"node (0, 0)",
		"segment (60, 0) (0, 0)",
		"insert (60, 0) (0, 0)",
		"nothing",
	}, "\n")+"\n", out)
}

func TestDragAndExtend(t *testing.T) {
	e, _, err := run(t, triangle+`
click 1 1
drag 11 1
release
`)
	require.NoError(t, err)
	assert.Equal(t, turnip.Pt(10, 0), e.World.Loop(0).Origin().Position)

	e, _, err = run(t, `
click 0 0
extend 50 0
extend 50 50
`)
	require.NoError(t, err)
	require.Equal(t, 1, e.World.Len())
	assert.Equal(t, 3, e.World.Loop(0).Count())
}

func TestPlay(t *testing.T) {
	e, out, err := run(t, triangle+`
mode
click 30 -40
body
tick 60
body
mode
body
`)
	require.NoError(t, err)
	assert.Equal(t, turnip.EditMode, e.Mode)
	assert.Equal(t, strings.Join([]string{
		"play",
		"body (30.000, -40.000) airborne",
		"body (30.000, -12.000) segment",
		"edit",
		"no body",
	}, "\n")+"\n", out)
}

func TestTickDirection(t *testing.T) {
	e, _, err := run(t, triangle+`
mode
click 30 -40
tick 30
tick 5 right
`)
	require.NoError(t, err)
	require.NotNil(t, e.Body)
	assert.Greater(t, e.Body.Position.X, 30.0)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src string
		line      int
	}{
		{"unknown", "click 0 0\nbogus\n", 2},
		{"arity", "click 1\n", 1},
		{"number", "# comment\nhover a 1\n", 2},
		{"extend", "extend 1 1\n", 1},
		{"direction", "tick 1 up\n", 1},
		{"count", "tick -1\n", 1},
		{"extra", "release now\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			var se *Error
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tt.line, se.Line)
		})
	}

	_, _, err := run(t, "bogus")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.EqualError(t, err, `line 1: unknown command "bogus"`)
}
