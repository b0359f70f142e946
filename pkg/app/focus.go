package app

// shiftFocus moves focus by delta steps through the current focus order,
// wrapping at either end. Ignored while a modal is open.
func (a *App) shiftFocus(delta int) {
	if a.HasActiveModal() || len(a.focusOrder) == 0 {
		return
	}

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnBlur()
	}

	n := len(a.focusOrder)
	a.currentFocus = ((a.currentFocus+delta)%n + n) % n

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnFocus()
	}
}

func (a *App) FocusNext() {
	a.shiftFocus(1)
}

func (a *App) FocusPrevious() {
	a.shiftFocus(-1)
}
