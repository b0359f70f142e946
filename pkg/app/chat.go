package app

import (
	"context"
	"sync"

	"github.com/jesseduffield/gocui"

	"github.com/flowkit-dev/flowkit/pkg/assist"
	"github.com/flowkit-dev/flowkit/pkg/layout"
)

// ChatSession holds the assistant conversation behind the chat slot.
type ChatSession struct {
	app      *App
	mu       sync.Mutex
	messages []assist.Message
	waiting  bool
}

func NewChatSession(app *App) *ChatSession {
	return &ChatSession{app: app}
}

// Messages returns a snapshot of the conversation, without the system turn.
func (c *ChatSession) Messages() []assist.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]assist.Message(nil), c.messages...)
}

// Waiting reports whether a reply is in flight.
func (c *ChatSession) Waiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// Ask opens the prompt input. Submitting sends the question to the
// assistant and shows the chat slot if it is not on screen yet.
func (c *ChatSession) Ask() {
	if !c.app.adapter.IsAvailable() {
		c.app.OpenModal(NewMessageModal(c.app.g, "Assistant",
			"The assistant is not configured.",
			"",
			"Set "+c.app.cfg.Assist.APIKeyEnv+" and restart to enable it.",
		).WithStyle(ModalStyle{TitleColor: ColorYellow, BorderColor: ColorYellow}))
		return
	}

	modal := NewInputModal(c.app.g, "Ask the assistant", func(input string) {
		c.app.CloseModal()
		if input == "" {
			return
		}
		c.send(input)
	}, func() {
		c.app.CloseModal()
	}).WithRequired(true)

	c.app.OpenModal(modal)
}

func (c *ChatSession) send(question string) {
	if !c.app.tryStartCommand("Assistant") {
		c.app.logCommandBlocked("Assistant")
		return
	}

	// Make sure the chat slot is on screen before the reply arrives
	state := c.app.coordinator.State()
	if !state.Sidebar.Contains(layout.ContentChat) {
		if !state.Sidebar.Visible() {
			c.app.Dispatch(layout.ShowRightSidebar{})
		}
		if !c.app.coordinator.State().Sidebar.Contains(layout.ContentChat) {
			c.app.Dispatch(layout.AddSidebarComponent{Content: layout.ContentChat})
		}
	}
	c.app.Dispatch(layout.ClearBadge{Content: layout.ContentChat})

	c.mu.Lock()
	c.messages = append(c.messages, assist.Message{Role: "user", Content: question})
	c.waiting = true
	conversation := append(
		[]assist.Message{{Role: "system", Content: assist.SystemPrompt}},
		c.messages...,
	)
	c.mu.Unlock()

	go func() {
		defer c.app.finishCommand()

		reply, err := c.app.adapter.Send(context.Background(), conversation)

		c.mu.Lock()
		c.waiting = false
		if err == nil {
			c.messages = append(c.messages, *reply)
		}
		c.mu.Unlock()

		c.app.g.Update(func(g *gocui.Gui) error {
			if err != nil {
				c.app.console.LogActionRed("Assistant", err.Error())
				return nil
			}
			// Badge the chat slot when the reply lands off screen
			for _, action := range layout.BadgeActions(c.app.coordinator.State(), layout.ContentChat, 1) {
				c.app.coordinator.Dispatch(action)
			}
			return nil
		})
	}()
}

// ExtendInput flags the prompt as extended. While chat owns the full
// sidebar this re-pairs it with its companion panel through the trigger
// rules.
func (c *ChatSession) ExtendInput() {
	c.app.HandleDomainEvent(layout.DomainEvent{Kind: layout.EventInputPanelExtended}, "", 0)
}
