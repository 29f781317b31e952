package handlers

import (
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deepseekbot/internal/telegram"
)

// RegisterAllCommands initializes and returns a map of all available bot commands.
// Plain text, and any command not listed here, reaches the relay through the
// bot's default handler instead.
func RegisterAllCommands(deps HandlerDeps) map[string]telegram.RegisteredHandler {
	handlers := make(map[string]telegram.RegisteredHandler)

	handlers["/start"] = telegram.RegisteredHandler{
		Handler:   NewStartHandler(deps),
		MatchFunc: commandMatcher("start", deps.BotUsername),
	}

	return handlers
}

// commandMatcher matches messages that start with /command or
// /command@username. A command addressed to another bot does not match.
func commandMatcher(command, username string) tgbot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		msg := update.Message

		hasCommand := false
		for _, e := range msg.Entities {
			if e.Type == models.MessageEntityTypeBotCommand && e.Offset == 0 {
				hasCommand = true
				break
			}
		}
		if !hasCommand {
			return false
		}

		fields := strings.Fields(msg.Text)
		if len(fields) == 0 {
			return false
		}
		name, target, addressed := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
		if !strings.EqualFold(name, command) {
			return false
		}
		return !addressed || (username != "" && strings.EqualFold(target, username))
	}
}
