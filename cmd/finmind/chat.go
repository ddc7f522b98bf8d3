package finmind

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finmindlabs/finmind/pkg/chat"
	"github.com/finmindlabs/finmind/pkg/games"
	"github.com/finmindlabs/finmind/pkg/history"
	"github.com/finmindlabs/finmind/pkg/ui"
	"github.com/finmindlabs/finmind/pkg/voice"
)

const voicePlaceholder = "🎤 Voice message sent"

// recordingCap mirrors the -t limit in the default capture command, so
// custom record commands without their own limit still get a nudge.
const recordingCap = 60 * time.Second

func handleChatCommand() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	recorder := voice.NewRecorder(voice.NewCommandSource(a.cfg.Voice.RecordCommand))
	player := voice.NewPlayer(a.cfg.Voice.PlayCommand)

	// Caps a recording session; cancelled on every /stop path.
	recTimer := games.NewPhaseTimer()
	defer recTimer.Cancel()

	fmt.Println(ui.Header("FinMind — your financial wellbeing companion"))
	if !a.user.Onboarded {
		fmt.Println(ui.Status(fmt.Sprintf("Welcome! You are profile #%d on this device. Everything stays between you and your advisor.", a.user.UserID)))
		if err := a.store.SetOnboarded(a.user); err != nil {
			a.log.Warn().Err(err).Msg("failed to persist onboarding flag")
		}
	}
	fmt.Println(ui.Status("Type a message, or: /record /stop /history /report /quit"))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	personality := ""

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/record":
			if err := recorder.Start(context.Background()); err != nil {
				if err == voice.ErrAlreadyRecording {
					fmt.Println(ui.Status("Already recording — /stop to finish."))
					continue
				}
				// The microphone-permission analog: a blocking error line.
				fmt.Println(ui.Error(fmt.Sprintf("Could not access the microphone: %v", err)))
				continue
			}
			recTimer.Start(recordingCap, func() {
				fmt.Println()
				fmt.Println(ui.Status("Recording cap reached — /stop to send what was captured."))
				fmt.Print("> ")
			})
			fmt.Println(ui.Status("● Recording... /stop to send."))
		case "/stop":
			recTimer.Cancel()
			clip, err := recorder.Stop()
			if err != nil {
				if err == voice.ErrNotRecording {
					fmt.Println(ui.Status("Not recording — /record to start."))
					continue
				}
				fmt.Println(ui.Error(fmt.Sprintf("Recording failed: %v", err)))
				continue
			}
			personality = a.sendVoiceTurn(clip, player, personality)
		case "/history":
			a.browseHistory()
		case "/report":
			if _, err := a.writeReport(); err != nil {
				fmt.Println(ui.Error(err.Error()))
			}
		default:
			personality = a.sendTextTurn(line, player, personality)
		}
	}
}

// sendTextTurn runs one text exchange: optimistic user bubble, typing
// indicator while the request is in flight, fallback bubble on any
// failure. Returns the personality to show in the status line.
func (a *app) sendTextTurn(text string, player *voice.Player, personality string) string {
	ui.PrintMessage(chat.Message{Text: text, Sender: chat.SenderUser, Timestamp: time.Now()})

	var msgs []chat.Message
	var reply chat.Reply
	var ok bool
	_ = ui.WithTyping("advisor is typing...", func() error {
		msgs, reply, ok = a.resolveText(context.Background(), text)
		return nil
	})

	for _, m := range msgs {
		ui.PrintMessage(m)
	}
	if !ok {
		return personality
	}
	return a.showReplyMeta(reply, player)
}

// sendVoiceTurn uploads the clip with a placeholder user bubble; the
// transcription comes back as a follow-up user bubble standing in for it.
func (a *app) sendVoiceTurn(clip voice.Clip, player *voice.Player, personality string) string {
	ui.PrintMessage(chat.Message{Text: voicePlaceholder, Sender: chat.SenderUser, Timestamp: time.Now()})

	var msgs []chat.Message
	var reply chat.Reply
	var ok bool
	_ = ui.WithTyping("transcribing...", func() error {
		msgs, reply, ok = a.resolveVoice(context.Background(), clip)
		return nil
	})

	for _, m := range msgs {
		ui.PrintMessage(m)
	}
	if !ok {
		return personality
	}
	return a.showReplyMeta(reply, player)
}

// resolveText performs one text exchange. Any failure is logged and
// converted into the fixed fallback bubble; there is no retry.
func (a *app) resolveText(ctx context.Context, text string) ([]chat.Message, chat.Reply, bool) {
	reply, err := a.client.SendText(ctx, a.user.UserID, text)
	if err != nil {
		a.log.Error().Err(err).Msg("chat request failed")
		return []chat.Message{chat.FallbackMessage()}, chat.Reply{}, false
	}
	return replyMessages(reply), reply, true
}

// resolveVoice uploads one clip. The transcription, when present, becomes
// a user bubble preceding the reply.
func (a *app) resolveVoice(ctx context.Context, clip voice.Clip) ([]chat.Message, chat.Reply, bool) {
	reply, err := a.client.SendVoice(ctx, a.user.UserID, clip)
	if err != nil {
		a.log.Error().Err(err).Msg("voice request failed")
		return []chat.Message{chat.FallbackMessage()}, chat.Reply{}, false
	}
	return replyMessages(reply), reply, true
}

// replyMessages converts a successful reply into the bubbles to print,
// in order.
func replyMessages(reply chat.Reply) []chat.Message {
	var msgs []chat.Message
	if reply.Transcription != "" {
		msgs = append(msgs, chat.Message{Text: reply.Transcription, Sender: chat.SenderUser, Timestamp: time.Now()})
	}
	return append(msgs, reply.BotMessage())
}

// showReplyMeta prints the status line and plays the reply audio after
// the bubbles are on screen.
func (a *app) showReplyMeta(reply chat.Reply, player *voice.Player) string {
	if reply.Personality != "" {
		fmt.Println(ui.Status("Current personality: " + reply.Personality))
		fmt.Println()
	}

	if reply.AudioURL != "" {
		url := a.client.AudioURL(reply.AudioURL)
		if err := player.Play(context.Background(), url); err != nil {
			a.log.Warn().Err(err).Str("url", url).Msg("audio playback failed")
		}
	}

	return reply.Personality
}

// browseHistory lets the user pick a past conversation; the selection
// replaces the visible log wholesale.
func (a *app) browseHistory() {
	var messages []chat.Message
	err := ui.WithTyping("loading history...", func() error {
		var fetchErr error
		messages, fetchErr = a.history.Fetch(context.Background(), a.user.UserID)
		return fetchErr
	})
	if err != nil {
		a.log.Error().Err(err).Msg("history request failed")
		fmt.Println(ui.Error("Could not load your history right now."))
		return
	}

	conversations := history.GroupConversations(messages)
	if len(conversations) == 0 {
		fmt.Println(ui.Status("No past conversations yet."))
		return
	}

	labels := make([]string, len(conversations))
	for i, c := range conversations {
		labels[i] = fmt.Sprintf("%s — %s (%d messages)",
			c.Start().Format("Jan 2 15:04"), c.Title(), len(c.Messages))
	}

	idx, err := ui.ReadIndexSelection(labels, "Pick a conversation")
	if err != nil {
		return
	}

	fmt.Print("\033[H\033[2J") // replace the visible log, not append
	fmt.Println(ui.Header("Conversation from " + conversations[idx].Start().Format("January 2, 2006 15:04")))
	fmt.Println()
	for _, m := range conversations[idx].Messages {
		ui.PrintMessage(m)
	}
}
