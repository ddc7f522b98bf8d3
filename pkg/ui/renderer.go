package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/finmindlabs/finmind/pkg/chat"
)

// emotionEmoji maps the backend's emotion labels onto display emoji.
// Unknown labels fall through to the plain badge.
var emotionEmoji = map[string]string{
	"Stress":         "😰",
	"Fear":           "😨",
	"Hesitation":     "😕",
	"Overconfidence": "😎",
	"Excitement":     "🤩",
	"Confidence":     "💪",
	"Calm":           "😌",
}

// EmotionEmoji returns the emoji for an emotion label, or empty when the
// label is unknown.
func EmotionEmoji(emotion string) string {
	return emotionEmoji[emotion]
}

// RenderMessage renders one chat bubble: user messages right-aligned in
// cyan, bot messages left-aligned in purple with their metadata badges.
func RenderMessage(m chat.Message) string {
	width := terminalWidth()
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 30 {
		bubbleWidth = 30
	}

	var b strings.Builder

	if m.Sender == chat.SenderUser {
		bubble := wrapBubble(userBubbleStyle, m.Text, bubbleWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, timeStyle.Render(m.Timestamp.Format("15:04:05"))))
	} else {
		bubble := wrapBubble(botBubbleStyle, m.Text, bubbleWidth)
		b.WriteString(bubble)
		if badges := renderBadges(m); badges != "" {
			b.WriteString("\n")
			b.WriteString(badges)
		}
		b.WriteString("\n")
		b.WriteString(timeStyle.Render(m.Timestamp.Format("15:04:05")))
	}

	return b.String()
}

// renderBadges renders the personality/emotion metadata attached to a bot
// turn. Absent fields produce no badge.
func renderBadges(m chat.Message) string {
	var parts []string
	if m.Personality != "" {
		parts = append(parts, badgeStyle.Render("Personality: "+m.Personality))
	}
	if m.Emotion != "" {
		label := "Emotion: " + m.Emotion
		if emoji := EmotionEmoji(m.Emotion); emoji != "" {
			label = emoji + " " + label
		}
		parts = append(parts, badgeStyle.Render(label))
	}
	return strings.Join(parts, "  ")
}

// wrapBubble wraps long messages to the bubble width; short messages keep
// a snug border.
func wrapBubble(style lipgloss.Style, text string, width int) string {
	if lipgloss.Width(text) > width {
		style = style.Width(width)
	}
	return style.Render(text)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// PrintMessage renders and prints a bubble followed by a blank line.
func PrintMessage(m chat.Message) {
	fmt.Println(RenderMessage(m))
	fmt.Println()
}
