package app

import (
	"testing"

	"github.com/jesseduffield/gocui"
	"github.com/stretchr/testify/assert"
)

func TestWrapModalText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			"short line untouched",
			"all good",
			20,
			[]string{"all good"},
		},
		{
			"wraps at word boundaries",
			"one two three four",
			9,
			[]string{"one two", "three", "four"},
		},
		{
			"paragraph breaks preserved",
			"first\n\nsecond",
			20,
			[]string{"first", "", "second"},
		},
		{
			"zero width passes through",
			"whatever",
			0,
			[]string{"whatever"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapModalText(tt.text, tt.width))
		})
	}
}

func TestConfirmModalKeys(t *testing.T) {
	t.Run("y runs onYes", func(t *testing.T) {
		yes, no := 0, 0
		m := NewConfirmModal(nil, "Quit", "Quit anyway?", func() { yes++ }, func() { no++ })

		assert.NoError(t, m.HandleKey('y', gocui.ModNone))
		assert.Equal(t, 1, yes)
		assert.Zero(t, no)
	})

	t.Run("n and Esc run onNo", func(t *testing.T) {
		yes, no := 0, 0
		m := NewConfirmModal(nil, "Quit", "Quit anyway?", func() { yes++ }, func() { no++ })

		assert.NoError(t, m.HandleKey('n', gocui.ModNone))
		assert.NoError(t, m.HandleKey(gocui.KeyEsc, gocui.ModNone))
		assert.Zero(t, yes)
		assert.Equal(t, 2, no)
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		yes, no := 0, 0
		m := NewConfirmModal(nil, "Quit", "Quit anyway?", func() { yes++ }, func() { no++ })

		assert.NoError(t, m.HandleKey('x', gocui.ModNone))
		assert.Zero(t, yes)
		assert.Zero(t, no)
	})
}
