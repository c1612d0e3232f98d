package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/songform/internal/bot"
	"github.com/sukalov/songform/internal/bot/common"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/state"
)

// SongCounter reports how many songs are saved
type SongCounter interface {
	Count(ctx context.Context) (int, error)
}

type AdminHandlers struct {
	drafts *state.StateManager
	songs  SongCounter
	admins map[string]bool

	mu              sync.Mutex
	clearInProgress map[int64]bool
}

func NewAdminHandlers(drafts *state.StateManager, songs SongCounter, adminUsernames []string) *AdminHandlers {
	admins := make(map[string]bool)
	for _, username := range adminUsernames {
		admins[username] = true
	}

	return &AdminHandlers{
		drafts:          drafts,
		songs:           songs,
		admins:          admins,
		clearInProgress: make(map[int64]bool),
	}
}

func (h *AdminHandlers) statsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !h.admins[message.From.UserName] {
		return b.SendMessage(message.Chat.ID, "you are not an admin")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	saved, err := h.songs.Count(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count songs: %v", err))
		return b.SendMessage(message.Chat.ID, "failed to count songs: "+err.Error())
	}
	return b.SendMessage(message.Chat.ID, fmt.Sprintf("drafts in progress: %d\nsaved songs: %d", h.drafts.Count(), saved))
}

func (h *AdminHandlers) clearDraftsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message

	if !h.admins[message.From.UserName] {
		return b.SendMessage(message.Chat.ID, "you are not an admin")
	}

	h.mu.Lock()
	h.clearInProgress[message.Chat.ID] = true
	h.mu.Unlock()

	return b.SendMessageWithButtons(message.Chat.ID, "every draft in progress will be deleted! are you sure?",
		tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("delete", "confirm_clear_drafts"),
				tgbotapi.NewInlineKeyboardButtonData("cancel", "abort_clear_drafts"),
			),
		),
	)
}

// takeClear reports whether a clear was pending for the chat and resets it
func (h *AdminHandlers) takeClear(chatID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	pending := h.clearInProgress[chatID]
	delete(h.clearInProgress, chatID)
	return pending
}

func (h *AdminHandlers) confirmHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	if !h.takeClear(chatID) {
		return b.SendMessage(chatID, "that button no longer works")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.drafts.Clear(ctx); err != nil {
		return b.SendMessage(chatID, "failed to clear drafts: "+err.Error())
	}
	logger.Info(fmt.Sprintf("drafts cleared by @%s", update.CallbackQuery.From.UserName))
	return b.SendMessage(chatID, "drafts cleared")
}

func (h *AdminHandlers) abortHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	if h.takeClear(chatID) {
		return b.SendMessage(chatID, "ok, cancelled")
	}
	return b.SendMessage(chatID, "that button no longer works")
}

func (h *AdminHandlers) Handlers() bot.Handlers {
	commandHandlers := common.GetCommandHandlers()
	commandHandlers["stats"] = h.statsHandler
	commandHandlers["clear_drafts"] = h.clearDraftsHandler

	callbackHandlers := common.GetCallbackHandlers()
	callbackHandlers["abort_clear_drafts"] = h.abortHandler
	callbackHandlers["confirm_clear_drafts"] = h.confirmHandler

	return bot.Handlers{Commands: commandHandlers, Callbacks: callbackHandlers}
}

func SetupHandlers(adminBot *bot.Bot, drafts *state.StateManager, songs SongCounter, adminUsernames []string) {
	handlers := NewAdminHandlers(drafts, songs, adminUsernames)
	go adminBot.Start(handlers.Handlers())
}
