package bot

import (
	"strings"
	"sync"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/songform/internal/logger"
	"go.uber.org/zap"
)

// MaxMessageLength is the longest text Telegram accepts in one message,
// counted in UTF-16 code units.
const MaxMessageLength = 4096

type HandlerFunc func(b *Bot, update tgbotapi.Update) error

// Handlers routes updates: commands by name, callbacks by data and
// everything else through the message handlers in order
type Handlers struct {
	Commands  map[string]HandlerFunc
	Messages  []HandlerFunc
	Callbacks map[string]HandlerFunc
}

// Bot represents a configurable Telegram bot
type Bot struct {
	Client   *tgbotapi.BotAPI
	stopChan chan struct{}
	stopOnce sync.Once
	name     string
}

// New creates a new bot instance
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return NewWithAPI(name, botClient), nil
}

func NewWithAPI(name string, api *tgbotapi.BotAPI) *Bot {
	return &Bot{
		Client:   api,
		stopChan: make(chan struct{}),
		name:     name,
	}
}

func (b *Bot) Name() string {
	return b.name
}

// Start polls for updates and dispatches each one in its own goroutine
// until Stop is called
func (b *Bot) Start(handlers Handlers) {
	logger.Info("bot authorized", zap.String("bot", b.name), zap.String("account", b.Client.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.Client.GetUpdatesChan(updateConfig)

	for {
		select {
		case update := <-updates:
			go b.Dispatch(update, handlers)
		case <-b.stopChan:
			b.Client.StopReceivingUpdates()
			return
		}
	}
}

// Dispatch handles one update with the matching handler
func (b *Bot) Dispatch(update tgbotapi.Update, handlers Handlers) {
	if update.Message != nil && update.Message.IsCommand() {
		if handler, exists := handlers.Commands[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				logger.Error("command handler error", zap.String("bot", b.name), zap.String("command", update.Message.Command()), zap.Error(err))
			}
			return
		}
	}

	if update.CallbackQuery != nil {
		if handler, exists := handlers.Callbacks[update.CallbackQuery.Data]; exists {
			b.answerCallback(update.CallbackQuery.ID)
			if err := handler(b, update); err != nil {
				logger.Error("callback handler error", zap.String("bot", b.name), zap.String("data", update.CallbackQuery.Data), zap.Error(err))
			}
		}
		return
	}

	for _, handler := range handlers.Messages {
		if err := handler(b, update); err != nil {
			logger.Error("message handler error", zap.String("bot", b.name), zap.Error(err))
		}
	}
}

// Stop halts the bot. It is safe to call more than once, and before or
// after Start.
func (b *Bot) Stop() {
	b.stopOnce.Do(func() { close(b.stopChan) })
}

func (b *Bot) answerCallback(id string) {
	if _, err := b.Client.Request(tgbotapi.NewCallback(id, "")); err != nil {
		logger.Debug("failed to answer callback", zap.String("bot", b.name), zap.Error(err))
	}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

// SendLongMessage sends text in as many messages as it takes to stay under
// MaxMessageLength, breaking between blocks, then lines, where it can.
func (b *Bot) SendLongMessage(chatID int64, text string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		if err := b.SendMessage(chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit UTF-16 code units.
// Blank-line boundaries are preferred, then line breaks, then any rune.
func SplitMessage(text string, limit int) []string {
	return splitText(text, limit, []string{"\n\n", "\n"})
}

func splitText(text string, limit int, separators []string) []string {
	if messageLength(text) <= limit {
		return []string{text}
	}
	if len(separators) == 0 {
		return splitRunes(text, limit)
	}

	sep := separators[0]
	var chunks []string
	current := ""
	for _, part := range strings.Split(text, sep) {
		for _, piece := range splitText(part, limit, separators[1:]) {
			switch {
			case current == "":
				current = piece
			case messageLength(current)+messageLength(sep)+messageLength(piece) <= limit:
				current += sep + piece
			default:
				chunks = append(chunks, current)
				current = piece
			}
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

func splitRunes(text string, limit int) []string {
	var chunks []string
	var current []rune
	size := 0
	for _, r := range text {
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		if size+n > limit && len(current) > 0 {
			chunks = append(chunks, string(current))
			current, size = nil, 0
		}
		current = append(current, r)
		size += n
	}
	if len(current) > 0 {
		chunks = append(chunks, string(current))
	}
	return chunks
}

func messageLength(text string) int {
	return len(utf16.Encode([]rune(text)))
}

func (b *Bot) SendMessageWithMarkdown(chatID int64, text string, disableLinks bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.DisableWebPagePreview = disableLinks
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithButtons(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	_, err := b.Client.Send(msg)
	return err
}

// SendDocument sends data as a file named name
func (b *Bot) SendDocument(chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	_, err := b.Client.Send(doc)
	return err
}
