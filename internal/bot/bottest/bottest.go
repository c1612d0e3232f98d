// Package bottest runs a fake Telegram Bot API for handler tests.
package bottest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/songform/internal/bot"
)

// Sent is one outgoing API call the bot made.
type Sent struct {
	Method   string
	ChatID   int64
	Text     string
	FileName string
	File     string
	Markup   string
}

type API struct {
	mu     sync.Mutex
	sent   []Sent
	server *httptest.Server
}

// New starts the fake API and returns a bot wired to it.
func New(t *testing.T) (*API, *bot.Bot) {
	t.Helper()

	api := &API{}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)

	client, err := tgbotapi.NewBotAPIWithAPIEndpoint("test-token", api.server.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("failed to create bot api: %v", err)
	}
	return api, bot.NewWithAPI("test", client)
}

func (a *API) handle(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	w.Header().Set("Content-Type", "application/json")

	switch method {
	case "getMe":
		_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"songform","username":"songform_bot"}}`)
		return
	case "getUpdates":
		_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
		return
	case "answerCallbackQuery":
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
		return
	}

	sent := Sent{Method: method}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			if file, header, err := r.FormFile("document"); err == nil {
				data, _ := io.ReadAll(file)
				file.Close()
				sent.FileName = header.Filename
				sent.File = string(data)
			}
		}
	} else {
		_ = r.ParseForm()
	}
	sent.ChatID, _ = strconv.ParseInt(r.FormValue("chat_id"), 10, 64)
	sent.Text = r.FormValue("text")
	sent.Markup = r.FormValue("reply_markup")

	if len(utf16.Encode([]rune(sent.Text))) > bot.MaxMessageLength {
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: message is too long"}`)
		return
	}

	a.mu.Lock()
	a.sent = append(a.sent, sent)
	a.mu.Unlock()

	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":`+strconv.FormatInt(sent.ChatID, 10)+`,"type":"private"}}}`)
}

// Sent returns every recorded call.
func (a *API) Sent() []Sent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Sent(nil), a.sent...)
}

// Last returns the latest recorded call.
func (a *API) Last(t *testing.T) Sent {
	t.Helper()
	sent := a.Sent()
	if len(sent) == 0 {
		t.Fatal("bot sent nothing")
	}
	return sent[len(sent)-1]
}

// Reset forgets the recorded calls.
func (a *API) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sent = nil
}

// Command builds an update carrying a bot command like "/save my song".
func Command(chatID int64, username, text string) tgbotapi.Update {
	update := Text(chatID, username, text)
	length := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		length = i
	}
	update.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	return update
}

// Text builds an update carrying a plain message.
func Text(chatID int64, username, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: chatID, UserName: username},
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

// Callback builds an update for an inline button press.
func Callback(chatID int64, username, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb",
			From:    &tgbotapi.User{ID: chatID, UserName: username},
			Message: &tgbotapi.Message{MessageID: 1, Chat: &tgbotapi.Chat{ID: chatID, Type: "private"}},
			Data:    data,
		},
	}
}
