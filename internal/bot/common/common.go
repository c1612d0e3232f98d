package common

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/songform/internal/bot"
)

const helpText = `song form wizard

/new - start a new song
/structure - change the structure
/add <section> - append intro, interlude or outro
/lyrics [section] - write lyrics, from the first or a given section
/skip - go to the next section
/back - go to the previous step
/progress - how many sections are written
/copy - all lyrics, one block per section
/final - the full song
/export - download the lyrics as a text file
/name <name> - name the song
/save [name] - save the song
/songs - your saved songs
/load <name> - open a saved song
/delete <name> - delete a saved song
/import <url> - import a song from amdm.ru`

func GetCommandHandlers() map[string]bot.HandlerFunc {
	return map[string]bot.HandlerFunc{
		"help": helpHandler,
	}
}

// GetCallbackHandlers returns common callback handlers
func GetCallbackHandlers() map[string]bot.HandlerFunc {
	return map[string]bot.HandlerFunc{
		// Common callback handlers
	}
}

func helpHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID, helpText)
}
