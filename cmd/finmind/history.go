package finmind

import (
	"context"
	"fmt"

	"github.com/finmindlabs/finmind/pkg/history"
	"github.com/finmindlabs/finmind/pkg/ui"
)

func handleHistoryCommand() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	messages, err := a.history.Fetch(context.Background(), a.user.UserID)
	if err != nil {
		a.log.Error().Err(err).Msg("history request failed")
		return fmt.Errorf("could not load history: %w", err)
	}

	conversations := history.GroupConversations(messages)
	if len(conversations) == 0 {
		fmt.Println("No past conversations yet.")
		return nil
	}

	labels := make([]string, len(conversations))
	for i, c := range conversations {
		labels[i] = fmt.Sprintf("%s — %s (%d messages)",
			c.Start().Format("Jan 2 15:04"), c.Title(), len(c.Messages))
	}

	idx, err := ui.ReadIndexSelection(labels, "Pick a conversation")
	if err != nil {
		return nil
	}

	fmt.Println(ui.Header("Conversation from " + conversations[idx].Start().Format("January 2, 2006 15:04")))
	fmt.Println()
	for _, m := range conversations[idx].Messages {
		ui.PrintMessage(m)
	}
	return nil
}
