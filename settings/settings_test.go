package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatLabel(t *testing.T) {
	for raw, want := range map[string]string{
		"hello_lilol": "HELLO LILOL",
		"iso":         "ISO",
		"awb_mode":    "AWB MODE",
		"":            "",
	} {
		require.Equal(t, want, FormatLabel(raw), raw)
	}
}

func TestZoomArea(t *testing.T) {
	require.Equal(t, Rect{0, 0, 1, 1}, ZoomArea(1))
	require.Equal(t, Rect{0.25, 0.25, 0.5, 0.5}, ZoomArea(2))

	r := ZoomArea(4)
	require.InDelta(t, 0.375, r.X, 1e-9)
	require.InDelta(t, 0.25, r.W, 1e-9)
	require.Equal(t, r.X, r.Y)
	require.Equal(t, r.W, r.H)
}

func TestRangeStep(t *testing.T) {
	it := NewRange("contrast", 0, -2, 2)

	v, ok := it.Step(Up)
	require.True(t, ok)
	require.Equal(t, 1, v)
	it.Step(Up)

	v, ok = it.Step(Up)
	require.False(t, ok, "stepping past max")
	require.Equal(t, 2, v)

	v, ok = it.Step(Reset)
	require.True(t, ok)
	require.Equal(t, 0, v)

	it.Step(Down)
	it.Step(Down)
	v, ok = it.Step(Down)
	require.False(t, ok, "stepping past min")
	require.Equal(t, -2, v)
	require.Equal(t, -2, it.Value())
}

func TestListStep(t *testing.T) {
	it := NewList("iso", []int{0, 100, 200}, 0)
	require.Equal(t, 0, it.Min)
	require.Equal(t, 200, it.Max)

	_, ok := it.Step(Down)
	require.False(t, ok)

	v, _ := it.Step(Up)
	require.Equal(t, 100, v)
	v, _ = it.Step(Up)
	require.Equal(t, 200, v)
	require.Equal(t, 2, it.Index)

	_, ok = it.Step(Up)
	require.False(t, ok)
	require.Equal(t, 2, it.Index)

	v, ok = it.Step(Reset)
	require.True(t, ok)
	require.Equal(t, 0, v)
	require.Equal(t, 0, it.Index)
}

func TestNewListBadIndex(t *testing.T) {
	it := NewList("zoom", []int{1, 2}, 7)
	require.Equal(t, 0, it.Index)
	require.Equal(t, 1, it.Value())
	require.Panics(t, func() { NewList("empty", nil, 0) })
}

func TestSettings(t *testing.T) {
	s := New()
	require.Equal(t, []Param{
		{"brightness", "50"},
		{"contrast", "0"},
		{"iso", "auto"},
		{"zoom", "x1"},
	}, s.Params())

	s.ISO.Step(Up)
	s.Zoom.Step(Up)
	s.Contrast.Step(Down)
	require.Equal(t, []Param{
		{"brightness", "50"},
		{"contrast", "-1"},
		{"iso", "100"},
		{"zoom", "x2"},
	}, s.Params())
	require.Equal(t, ZoomArea(2), s.ZoomArea())

	it, err := s.Item("contrast")
	require.NoError(t, err)
	require.Same(t, s.Contrast, it)

	_, err = s.Item("awb_mode")
	require.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "Direction(3)", Direction(3).String())
}
