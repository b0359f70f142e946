package app

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// ListModalItem is one selectable row with the description shown below the
// list while the row is highlighted.
type ListModalItem struct {
	Label       string
	Description string
	OnSelect    func() error
}

// ListModal is a picker with a list view on top and the selected item's
// description underneath.
type ListModal struct {
	g           *gocui.Gui
	title       string
	items       []ListModalItem
	selectedIdx int
	originY     int
	style       ModalStyle
	onCancel    func()
}

func NewListModal(g *gocui.Gui, title string, items []ListModalItem, onCancel func()) *ListModal {
	return &ListModal{
		g:        g,
		title:    title,
		items:    items,
		onCancel: onCancel,
	}
}

// WithStyle sets the frame colors.
func (m *ListModal) WithStyle(style ModalStyle) *ListModal {
	m.style = style
	return m
}

func (m *ListModal) ID() string {
	return "list_modal"
}

func (m *ListModal) listViewID() string {
	return "list_modal_list"
}

func (m *ListModal) descViewID() string {
	return "list_modal_desc"
}

func (m *ListModal) Draw(dim boxlayout.Dimensions) error {
	width := modalWidth(m.g, 5, 7)

	descLines := 0
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		descLines = len(wrapModalText(m.items[m.selectedIdx].Description, width-4))
	}

	listHeight := len(m.items) + 2
	descHeight := descLines + 2

	height := clampModalHeight(m.g, listHeight+descHeight+1)
	if height < listHeight+descHeight+1 {
		// Squeeze the description first, then the list
		descHeight = height - listHeight
		if descHeight < 4 {
			descHeight = 4
			listHeight = height - descHeight
		}
	}

	x0, y0 := centerModal(m.g, width, height)

	if err := m.drawListView(x0, y0, x0+width, y0+listHeight); err != nil {
		return err
	}
	return m.drawDescView(x0, y0+listHeight+1, x0+width, y0+height)
}

func (m *ListModal) drawListView(x0, y0, x1, y1 int) error {
	v, err := m.g.SetView(m.listViewID(), x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	styleModalFrame(v, m.style, m.title, "")
	v.Wrap = false
	v.Highlight = true
	v.SelBgColor = SelectionBgColor

	for _, item := range m.items {
		fmt.Fprintln(v, item.Label)
	}

	AdjustOrigin(v, &m.originY)
	v.SetCursor(0, m.selectedIdx-m.originY)
	v.SetOrigin(0, m.originY)

	return nil
}

func (m *ListModal) drawDescView(x0, y0, x1, y1 int) error {
	v, err := m.g.SetView(m.descViewID(), x0, y0, x1, y1, 0)
	if err != nil && err.Error() != "unknown view" {
		return err
	}

	v.Clear()
	styleModalFrame(v, ModalStyle{BorderColor: m.style.BorderColor}, "", " [↑/↓] Navigate [Enter] Select [ESC] Cancel ")
	v.Wrap = true

	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		for _, line := range wrapModalText(m.items[m.selectedIdx].Description, (x1-x0)-4) {
			fmt.Fprintln(v, "  "+line)
		}
	}

	return nil
}

func (m *ListModal) HandleKey(key any, mod gocui.Modifier) error {
	switch key {
	case gocui.KeyArrowUp:
		m.selectPrev()
	case gocui.KeyArrowDown:
		m.selectNext()
	case gocui.KeyEnter:
		return m.onEnter()
	case gocui.KeyEsc, 'q':
		if m.onCancel != nil {
			m.onCancel()
		}
	}
	return nil
}

func (m *ListModal) selectNext() {
	if len(m.items) == 0 {
		return
	}
	m.selectedIdx++
	if m.selectedIdx >= len(m.items) {
		m.selectedIdx = 0
		m.originY = 0
	} else if h := m.listInnerHeight(); h > 0 && m.selectedIdx-m.originY >= h {
		m.originY++
	}
	m.redraw()
}

func (m *ListModal) selectPrev() {
	if len(m.items) == 0 {
		return
	}
	m.selectedIdx--
	if m.selectedIdx < 0 {
		m.selectedIdx = len(m.items) - 1
		m.originY = len(m.items) - m.listInnerHeight()
		if m.originY < 0 {
			m.originY = 0
		}
	} else if m.selectedIdx < m.originY {
		m.originY--
	}
	m.redraw()
}

// listInnerHeight returns the visible row count of the list view, 0 before
// the first draw.
func (m *ListModal) listInnerHeight() int {
	v, err := m.g.View(m.listViewID())
	if err != nil {
		return 0
	}
	_, h := v.Size()
	return h - 2
}

func (m *ListModal) redraw() {
	m.g.Update(func(g *gocui.Gui) error {
		return nil
	})
}

func (m *ListModal) onEnter() error {
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.items) {
		if m.items[m.selectedIdx].OnSelect != nil {
			return m.items[m.selectedIdx].OnSelect()
		}
	}
	return nil
}

func (m *ListModal) OnClose() {
	m.g.DeleteView(m.listViewID())
	m.g.DeleteView(m.descViewID())
}
