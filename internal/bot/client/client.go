package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/songform/internal/bot"
	"github.com/sukalov/songform/internal/bot/common"
	"github.com/sukalov/songform/internal/db"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/lyrics"
	"github.com/sukalov/songform/internal/songform"
	"github.com/sukalov/songform/internal/state"
	"github.com/sukalov/songform/internal/users"
	"github.com/sukalov/songform/internal/utils"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// SongStore is the persistence provider for saved songs
type SongStore interface {
	Save(ctx context.Context, userID, name string, structure songform.Structure, lyrics songform.Lyrics) db.Result
	List(ctx context.Context, userID string) ([]db.SongForm, error)
	GetByName(ctx context.Context, userID, name string) (db.SongForm, error)
	Delete(ctx context.Context, userID, name string) error
}

type Importer interface {
	Import(ctx context.Context, url string) (*lyrics.ImportedSong, error)
}

type ClientHandlers struct {
	drafts   *state.StateManager
	songs    SongStore
	importer Importer
	now      func() time.Time
}

func NewClientHandlers(drafts *state.StateManager, songs SongStore, importer Importer) *ClientHandlers {
	return &ClientHandlers{
		drafts:   drafts,
		songs:    songs,
		importer: importer,
		now:      time.Now,
	}
}

// userID is the identity songs are saved under: the telegram chat
func userID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func username(update tgbotapi.Update) string {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.UserName
	}
	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		return update.CallbackQuery.From.UserName
	}
	return ""
}

func quickAddKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("+ intro", "add_intro"),
			tgbotapi.NewInlineKeyboardButtonData("+ interlude", "add_interlude"),
			tgbotapi.NewInlineKeyboardButtonData("+ outro", "add_outro"),
		),
	)
}

func (h *ClientHandlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if _, err := h.drafts.Start(ctx, message.Chat.ID, username(update)); err != nil {
		logger.Error("failed to start draft", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}

	return b.SendMessageWithButtons(message.Chat.ID,
		"let's build a song! send me its structure, for example:\n\n"+
			"a - b - c - a - d - c\n"+
			"intro, verse, chorus, verse, outro\n\n"+
			"separate sections with dashes, commas or spaces. numbers work too: 1 = intro, 2 = interlude, 3 = outro",
		quickAddKeyboard(),
	)
}

func (h *ClientHandlers) structureHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok {
		return h.startHandler(b, update)
	}
	if _, err := h.drafts.SetStage(ctx, message.Chat.ID, users.StageAskingStructure); err != nil {
		logger.Error("failed to update draft stage", zap.Error(err))
	}

	text := "send me the new structure"
	if draft.RawStructure != "" {
		text = fmt.Sprintf("current structure: %s\n\nsend me the new one. lyrics you already wrote are kept", draft.RawStructure)
	}
	return b.SendMessageWithButtons(message.Chat.ID, text, quickAddKeyboard())
}

func (h *ClientHandlers) addSection(b *bot.Bot, chatID int64, name, section string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	raw := ""
	if draft, ok := h.drafts.Get(chatID); ok {
		raw = draft.RawStructure
	}
	draft, err := h.drafts.SetStructure(ctx, chatID, name, songform.AddSection(raw, section))
	if err != nil {
		logger.Error("failed to save structure", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	if _, err := h.drafts.SetStage(ctx, chatID, users.StageAskingStructure); err != nil {
		logger.Error("failed to update draft stage", zap.Error(err))
	}
	return b.SendMessageWithButtons(chatID,
		fmt.Sprintf("structure: %s\n\nkeep adding, send a new structure, or /lyrics to start writing", draft.RawStructure),
		quickAddKeyboard(),
	)
}

func (h *ClientHandlers) addHandler(b *bot.Bot, update tgbotapi.Update) error {
	section := strings.TrimSpace(update.Message.CommandArguments())
	if section == "" {
		return b.SendMessage(update.Message.Chat.ID, "what should i add? for example: /add interlude")
	}
	return h.addSection(b, update.Message.Chat.ID, username(update), section)
}

func (h *ClientHandlers) quickAddCallback(section string) bot.HandlerFunc {
	return func(b *bot.Bot, update tgbotapi.Update) error {
		return h.addSection(b, update.CallbackQuery.Message.Chat.ID, username(update), section)
	}
}

// structureInputHandler takes a typed structure and moves on to the lyrics
func (h *ClientHandlers) structureInputHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, err := h.drafts.SetStructure(ctx, message.Chat.ID, username(update), message.Text)
	if err != nil {
		logger.Error("failed to save structure", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}

	if len(draft.Structure) == 0 {
		return b.SendMessage(message.Chat.ID, "please enter a song structure first")
	}

	sections := draft.Sections()
	var reply strings.Builder
	fmt.Fprintf(&reply, "structure preview (%d sections):\n", len(draft.Structure))
	for i, token := range draft.Structure {
		fmt.Fprintf(&reply, "%d. %s\n", i+1, token)
	}

	if len(sections) == 0 {
		reply.WriteString("\nthere is nothing to write lyrics for. /final shows the song")
		return b.SendLongMessage(message.Chat.ID, reply.String())
	}

	fmt.Fprintf(&reply, "\nlyrics needed for: %s\n\n", strings.Join(sections, ", "))
	reply.WriteString(sectionPrompt(draft))
	return b.SendLongMessage(message.Chat.ID, reply.String())
}

func sectionPrompt(draft users.Draft) string {
	section, ok := draft.CurrentSection()
	if !ok {
		return "all sections are done. /final shows the song"
	}

	prompt := fmt.Sprintf("send the lyrics for section [%s] (%d of %d)", section, draft.Section+1, len(draft.Sections()))
	if text := draft.Lyrics[section]; text != "" {
		prompt += fmt.Sprintf("\n\ncurrent text:\n%s\n\n/skip keeps it", text)
	} else {
		prompt += "\n\n/skip leaves it empty"
	}
	return prompt
}

// lyricsInputHandler stores the text for the current section and asks for the next
func (h *ClientHandlers) lyricsInputHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	section, draft, err := h.drafts.WriteCurrent(ctx, message.Chat.ID, message.Text)
	if errors.Is(err, state.ErrAllWritten) || errors.Is(err, state.ErrNoDraft) {
		return b.SendMessage(message.Chat.ID, "all sections are done. /final shows the song")
	}
	if err != nil {
		logger.Error("failed to save lyrics", zap.Int64("chat_id", message.Chat.ID), zap.String("section", section), zap.Error(err))
	}

	lines := songform.LineCount(message.Text)
	reply := fmt.Sprintf("saved [%s], %d lines\n\n", section, lines)
	if draft.Stage == users.StageFinal {
		return h.sendFinal(b, message.Chat.ID, draft, reply)
	}
	return b.SendLongMessage(message.Chat.ID, reply+sectionPrompt(draft))
}

func (h *ClientHandlers) lyricsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok || len(draft.Sections()) == 0 {
		return b.SendMessage(message.Chat.ID, "there are no sections to write yet. send /new to start")
	}

	section := strings.TrimSpace(message.CommandArguments())
	if section == "" {
		section = draft.Sections()[0]
	}
	draft, err := h.drafts.GoTo(ctx, message.Chat.ID, section)
	if errors.Is(err, state.ErrUnknownSection) {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("there is no section %q. sections: %s", section, strings.Join(draft.Sections(), ", ")))
	}
	if err != nil {
		logger.Error("failed to move draft", zap.Error(err))
	}
	return b.SendLongMessage(message.Chat.ID, sectionPrompt(draft))
}

func (h *ClientHandlers) skipHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok || draft.Stage != users.StageWritingLyrics {
		return b.SendMessage(message.Chat.ID, "nothing to skip")
	}
	draft, err := h.drafts.Advance(ctx, message.Chat.ID)
	if err != nil {
		logger.Error("failed to advance draft", zap.Error(err))
	}
	if draft.Stage == users.StageFinal {
		return h.sendFinal(b, message.Chat.ID, draft, "")
	}
	return b.SendLongMessage(message.Chat.ID, sectionPrompt(draft))
}

func (h *ClientHandlers) backHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if _, ok := h.drafts.Get(message.Chat.ID); !ok {
		return b.SendMessage(message.Chat.ID, "no song in progress. send /new to start")
	}
	draft, err := h.drafts.Back(ctx, message.Chat.ID)
	if err != nil {
		logger.Error("failed to move draft back", zap.Error(err))
	}
	if draft.Stage == users.StageAskingStructure {
		return b.SendMessageWithButtons(message.Chat.ID,
			fmt.Sprintf("current structure: %s\n\nsend a new one to change it", draft.RawStructure),
			quickAddKeyboard(),
		)
	}
	return b.SendLongMessage(message.Chat.ID, sectionPrompt(draft))
}

func (h *ClientHandlers) finalHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok || len(draft.Structure) == 0 {
		return b.SendMessage(message.Chat.ID, "please enter a song structure first")
	}
	if len(draft.Sections()) > 0 && !songform.HasAnyLyrics(draft.Lyrics) {
		return b.SendMessage(message.Chat.ID, "please add lyrics for at least one section")
	}
	draft, err := h.drafts.SetStage(ctx, message.Chat.ID, users.StageFinal)
	if err != nil {
		logger.Error("failed to update draft stage", zap.Error(err))
	}
	return h.sendFinal(b, message.Chat.ID, draft, "")
}

func (h *ClientHandlers) sendFinal(b *bot.Bot, chatID int64, draft users.Draft, prefix string) error {
	stats := songform.ComputeStats(draft.Structure, draft.Lyrics)
	name := draft.SongName
	if name == "" {
		name = songform.DefaultSongName
	}

	text := fmt.Sprintf("%s%s\n%d sections, %d lines\n\n%s\n\n/export downloads the lyrics, /save keeps the song",
		prefix, name, stats.SectionCount, stats.TotalLines,
		songform.RenderFull(draft.Structure, draft.Lyrics))
	return b.SendLongMessage(chatID, text)
}

func (h *ClientHandlers) progressHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok {
		return b.SendMessage(message.Chat.ID, "no song in progress. send /new to start")
	}

	sections := draft.Sections()
	progress := songform.ComputeProgress(sections, draft.Lyrics)
	var reply strings.Builder
	fmt.Fprintf(&reply, "%d of %d sections completed, %d lines total\n", progress.Completed, progress.Total, progress.Lines)
	for _, section := range sections {
		fmt.Fprintf(&reply, "\n[%s] %d lines", section, songform.LineCount(draft.Lyrics[section]))
	}
	return b.SendLongMessage(message.Chat.ID, reply.String())
}

func (h *ClientHandlers) copyHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	draft, _ := h.drafts.Get(message.Chat.ID)

	text := songform.RenderUniqueSections(draft.Sections(), draft.Lyrics)
	if text == "" {
		return b.SendMessage(message.Chat.ID, "no lyrics to copy")
	}
	return b.SendLongMessage(message.Chat.ID, text)
}

func (h *ClientHandlers) exportHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok || len(draft.Structure) == 0 {
		return b.SendMessage(message.Chat.ID, "please enter a song structure first")
	}

	text := songform.RenderLyricsOnly(draft.Structure, draft.Lyrics, draft.SongName)
	fileName := songform.ExportFileName(draft.SongName, h.now())
	if err := b.SendDocument(message.Chat.ID, fileName, []byte(text)); err != nil {
		logger.Error("failed to send export", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		return b.SendLongMessage(message.Chat.ID, "could not send the file, here is the text:\n\n"+text)
	}
	return nil
}

func (h *ClientHandlers) nameHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	name := strings.TrimSpace(message.CommandArguments())
	if name == "" {
		return b.SendMessage(message.Chat.ID, "usage: /name my song")
	}
	if _, ok := h.drafts.Get(message.Chat.ID); !ok {
		return b.SendMessage(message.Chat.ID, "no song in progress. send /new to start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if _, err := h.drafts.SetName(ctx, message.Chat.ID, name); err != nil {
		logger.Error("failed to set song name", zap.Error(err))
	}
	return b.SendMessage(message.Chat.ID, fmt.Sprintf("song name: %s", name))
}

func (h *ClientHandlers) saveHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	draft, ok := h.drafts.Get(message.Chat.ID)
	if !ok || len(draft.Structure) == 0 {
		return b.SendMessage(message.Chat.ID, "please enter a song structure first")
	}

	if name := strings.TrimSpace(message.CommandArguments()); name != "" {
		var err error
		if draft, err = h.drafts.SetName(ctx, message.Chat.ID, name); err != nil {
			logger.Error("failed to set song name", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		}
	}
	if strings.TrimSpace(draft.SongName) == "" {
		if _, err := h.drafts.SetStage(ctx, message.Chat.ID, users.StageAskingName); err != nil {
			logger.Error("failed to update draft stage", zap.Error(err))
		}
		return b.SendMessage(message.Chat.ID, "what is the song called?")
	}
	return h.save(ctx, b, message.Chat.ID, draft)
}

// songNameInputHandler takes the name typed after /save asked for one
func (h *ClientHandlers) songNameInputHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	name := strings.TrimSpace(message.Text)
	if name == "" {
		return b.SendMessage(message.Chat.ID, "the name can't be empty")
	}
	draft, err := h.drafts.SetName(ctx, message.Chat.ID, name)
	if err != nil {
		logger.Error("failed to set song name", zap.Error(err))
	}
	draft, err = h.drafts.SetStage(ctx, message.Chat.ID, users.StageFinal)
	if err != nil {
		logger.Error("failed to update draft stage", zap.Error(err))
	}
	return h.save(ctx, b, message.Chat.ID, draft)
}

func (h *ClientHandlers) save(ctx context.Context, b *bot.Bot, chatID int64, draft users.Draft) error {
	result := h.songs.Save(ctx, userID(chatID), draft.SongName, draft.Structure, draft.Lyrics)
	if !result.Success {
		logger.Error(fmt.Sprintf("failed to save song %q for chat %d: %s", draft.SongName, chatID, result.Error))
		return b.SendMessage(chatID, "failed to save: "+result.Error)
	}
	logger.Success(fmt.Sprintf("song %q saved for chat %d", draft.SongName, chatID))
	return b.SendMessage(chatID, fmt.Sprintf("saved \"%s\". /songs lists your songs", draft.SongName))
}

func (h *ClientHandlers) songsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	forms, err := h.songs.List(ctx, userID(message.Chat.ID))
	if err != nil {
		logger.Error("failed to list songs", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		return b.SendMessage(message.Chat.ID, "failed to load your songs: "+err.Error())
	}
	if len(forms) == 0 {
		return b.SendMessage(message.Chat.ID, "you have no saved songs yet")
	}

	var reply strings.Builder
	reply.WriteString("your songs:\n")
	for i, form := range forms {
		fmt.Fprintf(&reply, "\n%d. %s (%s), updated %s", i+1, form.SongName, form.Structure.String(), utils.ConvertToMoscowTime(form.UpdatedAt))
	}
	reply.WriteString("\n\n/load <name> opens one, /delete <name> removes it")
	return b.SendLongMessage(message.Chat.ID, reply.String())
}

func (h *ClientHandlers) loadHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	name := strings.TrimSpace(message.CommandArguments())
	if name == "" {
		return b.SendMessage(message.Chat.ID, "usage: /load my song")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	form, err := h.songs.GetByName(ctx, userID(message.Chat.ID), name)
	if errors.Is(err, db.ErrNotFound) {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("there is no song called \"%s\"", name))
	}
	if err != nil {
		logger.Error("failed to load song", zap.String("name", name), zap.Error(err))
		return b.SendMessage(message.Chat.ID, "failed to load: "+err.Error())
	}

	draft, err := h.drafts.Load(ctx, message.Chat.ID, username(update), form.SongName, form.Structure, form.Lyrics)
	if err != nil {
		logger.Error("failed to store loaded draft", zap.Error(err))
	}
	return h.sendFinal(b, message.Chat.ID, draft, "loaded\n\n")
}

func (h *ClientHandlers) deleteHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	name := strings.TrimSpace(message.CommandArguments())
	if name == "" {
		return b.SendMessage(message.Chat.ID, "usage: /delete my song")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	err := h.songs.Delete(ctx, userID(message.Chat.ID), name)
	if errors.Is(err, db.ErrNotFound) {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("there is no song called \"%s\"", name))
	}
	if err != nil {
		logger.Error("failed to delete song", zap.String("name", name), zap.Error(err))
		return b.SendMessage(message.Chat.ID, "failed to delete: "+err.Error())
	}
	return b.SendMessage(message.Chat.ID, fmt.Sprintf("deleted \"%s\"", name))
}

func (h *ClientHandlers) importHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	url := strings.TrimSpace(message.CommandArguments())
	if url == "" {
		return b.SendMessage(message.Chat.ID, "usage: /import https://amdm.ru/akkordi/...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	song, err := h.importer.Import(ctx, url)
	if err != nil {
		logger.Error(fmt.Sprintf("import failed\nURL: %s\nError: %v", url, err))
		return b.SendMessage(message.Chat.ID, "import failed: "+err.Error())
	}

	draft, err := h.drafts.Load(ctx, message.Chat.ID, username(update), song.Title, song.Structure, song.Lyrics)
	if err != nil {
		logger.Error("failed to store imported draft", zap.Error(err))
	}
	return h.sendFinal(b, message.Chat.ID, draft, fmt.Sprintf("imported from %s\n\n", song.Source))
}

func randomMessageHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(
		update.Message.Chat.ID,
		"i don't understand that. send /new to start a song or /help for all commands",
	)
}

// messageHandler routes plain text by the stage of the chat's draft
func (h *ClientHandlers) messageHandler(b *bot.Bot, update tgbotapi.Update) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}
	if update.Message.IsCommand() {
		return randomMessageHandler(b, update)
	}

	draft, ok := h.drafts.Get(update.Message.Chat.ID)
	if !ok {
		return randomMessageHandler(b, update)
	}

	switch draft.Stage {
	case users.StageAskingStructure:
		return h.structureInputHandler(b, update)
	case users.StageWritingLyrics:
		return h.lyricsInputHandler(b, update)
	case users.StageAskingName:
		return h.songNameInputHandler(b, update)
	default:
		return b.SendMessage(update.Message.Chat.ID, "the song is ready. /final shows it, /export downloads it, /save keeps it, /structure changes it")
	}
}

// Handlers wires every wizard command
func (h *ClientHandlers) Handlers() bot.Handlers {
	commandHandlers := common.GetCommandHandlers()
	commandHandlers["start"] = h.startHandler
	commandHandlers["new"] = h.startHandler
	commandHandlers["structure"] = h.structureHandler
	commandHandlers["add"] = h.addHandler
	commandHandlers["lyrics"] = h.lyricsHandler
	commandHandlers["skip"] = h.skipHandler
	commandHandlers["back"] = h.backHandler
	commandHandlers["final"] = h.finalHandler
	commandHandlers["progress"] = h.progressHandler
	commandHandlers["copy"] = h.copyHandler
	commandHandlers["export"] = h.exportHandler
	commandHandlers["name"] = h.nameHandler
	commandHandlers["save"] = h.saveHandler
	commandHandlers["songs"] = h.songsHandler
	commandHandlers["load"] = h.loadHandler
	commandHandlers["delete"] = h.deleteHandler
	commandHandlers["import"] = h.importHandler

	callbackHandlers := common.GetCallbackHandlers()
	callbackHandlers["add_intro"] = h.quickAddCallback(songform.SectionIntro)
	callbackHandlers["add_interlude"] = h.quickAddCallback(songform.SectionInterlude)
	callbackHandlers["add_outro"] = h.quickAddCallback(songform.SectionOutro)

	return bot.Handlers{
		Commands:  commandHandlers,
		Messages:  []bot.HandlerFunc{h.messageHandler},
		Callbacks: callbackHandlers,
	}
}

func SetupHandlers(clientBot *bot.Bot, drafts *state.StateManager, songs SongStore, importer Importer) {
	handlers := NewClientHandlers(drafts, songs, importer)
	go clientBot.Start(handlers.Handlers())
}
