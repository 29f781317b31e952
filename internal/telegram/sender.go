package telegram

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// MaxMessageLen is the Bot API limit for a single text message, in characters.
const MaxMessageLen = 4096

// SendText sends text to chatID as plain text, split into as many messages as
// the Bot API limit requires. When replyTo is non-zero the first part replies
// to that message.
func SendText(ctx context.Context, b *bot.Bot, chatID int64, replyTo int, text string) error {
	for i, part := range SplitMessage(text, MaxMessageLen) {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		}
		if i == 0 && replyTo != 0 {
			params.ReplyParameters = &models.ReplyParameters{
				MessageID:                replyTo,
				AllowSendingWithoutReply: true,
			}
		}

		if _, err := b.SendMessage(ctx, params); err != nil {
			return fmt.Errorf("failed to send message part %d: %w", i+1, err)
		}
	}
	return nil
}

// SendTyping shows the "typing" chat action in chatID.
func SendTyping(ctx context.Context, b *bot.Bot, chatID int64) error {
	_, err := b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	if err != nil {
		return fmt.Errorf("failed to send typing action: %w", err)
	}
	return nil
}

// SplitMessage splits text into chunks of at most maxLen characters,
// preferring to cut after a newline in the second half of a chunk.
// Text that already fits is returned unchanged as a single chunk.
func SplitMessage(text string, maxLen int) []string {
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			parts = append(parts, string(runes))
			break
		}

		splitAt := maxLen
		chunk := string(runes[:maxLen])
		if idx := strings.LastIndex(chunk, "\n"); idx >= 0 {
			if nl := utf8.RuneCountInString(chunk[:idx]); nl > maxLen/2 {
				splitAt = nl + 1
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}
	return parts
}
