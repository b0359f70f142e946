package app

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

type Panel interface {
	ID() string
	Draw(dim boxlayout.Dimensions) error
	OnFocus()
	OnBlur()
}

type BasePanel struct {
	id         string
	g          *gocui.Gui
	v          *gocui.View
	focused    bool
	frameRunes []rune
}

// Frame and title styling
var (
	defaultFrameRunes = []rune{'─', '│', '╭', '╮', '╰', '╯'}

	PrimaryFrameColor = gocui.ColorWhite
	FocusedFrameColor = gocui.ColorCyan

	PrimaryTitleColor = gocui.ColorWhite | gocui.AttrNone
	FocusedTitleColor = gocui.ColorCyan | gocui.AttrBold

	// Tab styling
	FocusedActiveTabColor = gocui.ColorCyan | gocui.AttrBold
	PrimaryActiveTabColor = gocui.ColorCyan | gocui.AttrNone

	// List selection color
	SelectionBgColor = gocui.ColorBlue
)

func NewBasePanel(id string, g *gocui.Gui) BasePanel {
	return BasePanel{
		id:         id,
		g:          g,
		frameRunes: defaultFrameRunes,
	}
}

func (bp *BasePanel) ID() string {
	return bp.id
}

func (bp *BasePanel) OnFocus() {
	bp.focused = true
	if bp.v != nil {
		bp.v.FrameColor = FocusedFrameColor
		bp.v.TitleColor = FocusedTitleColor
	}
}

func (bp *BasePanel) OnBlur() {
	bp.focused = false
	if bp.v != nil {
		bp.v.FrameColor = PrimaryFrameColor
		bp.v.TitleColor = PrimaryTitleColor
	}
}

// SetupView applies the shared view settings
func (bp *BasePanel) SetupView(v *gocui.View, title string) {
	bp.v = v
	v.Clear()
	v.Frame = true
	v.Title = title
	v.FrameRunes = bp.frameRunes

	if bp.focused {
		v.FrameColor = FocusedFrameColor
		v.TitleColor = FocusedTitleColor
	} else {
		v.FrameColor = PrimaryFrameColor
		v.TitleColor = PrimaryTitleColor
	}
}

// AdjustOrigin clamps the scroll origin to the rendered content. Call after
// content is rendered but before SetOrigin; needed after terminal resizes.
func AdjustOrigin(v *gocui.View, originY *int) {
	if v == nil || originY == nil {
		return
	}

	contentLines := len(v.ViewBufferLines())
	_, viewHeight := v.Size()
	innerHeight := viewHeight - 2 // Exclude frame

	maxOrigin := contentLines - innerHeight
	if maxOrigin < 0 {
		maxOrigin = 0
	}

	if *originY > maxOrigin {
		*originY = maxOrigin
	}
}

// maxOriginFor returns the largest valid scroll origin for a view.
func maxOriginFor(v *gocui.View) int {
	if v == nil {
		return 0
	}
	contentLines := len(v.ViewBufferLines())
	_, viewHeight := v.Size()
	maxOrigin := contentLines - (viewHeight - 2)
	if maxOrigin < 0 {
		maxOrigin = 0
	}
	return maxOrigin
}
