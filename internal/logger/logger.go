package logger

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sukalov/songform/internal/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ChannelID int64
	once      sync.Once
	botClient BotClient

	mu   sync.RWMutex
	base = zap.NewNop()
)

type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Setup builds the process logger. DEBUG in the environment, or debug set,
// lowers the level to debug.
func Setup(debug bool) error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug || os.Getenv("DEBUG") != "" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the process logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
}

// L returns the process logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}

// Init mirrors log messages into the telegram channel set by LOG_CHANNEL_ID.
func Init(client BotClient) error {
	var initErr error
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"LOG_CHANNEL_ID"})
		if err != nil {
			initErr = fmt.Errorf("failed to load LOG_CHANNEL_ID: %w", err)
			return
		}

		ChannelID, err = strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
		if err != nil {
			initErr = fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
			return
		}

		botClient = client
	})

	return initErr
}

func Info(message string, fields ...zap.Field) {
	L().Info(message, fields...)
	sendLog("ℹ️ INFO", message)
}

func Error(message string, fields ...zap.Field) {
	L().Error(message, fields...)
	sendLog("❌ ERROR", message)
}

// Debug is never mirrored to the channel.
func Debug(message string, fields ...zap.Field) {
	L().Debug(message, fields...)
}

func Success(message string, fields ...zap.Field) {
	L().Info(message, append(fields, zap.Bool("success", true))...)
	sendLog("✅ SUCCESS", message)
}

func sendLog(prefix, message string) {
	if botClient == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)

	go func() {
		if err := botClient.SendMessage(ChannelID, logMessage); err != nil {
			L().Warn("failed to send log to channel", zap.Error(err), zap.String("log", logMessage))
		}
	}()
}

// LogWithErr logs message at info level, or at error level with err attached,
// and returns err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	Error(fmt.Sprintf("%s\nError: %v", message, err), zap.Error(err))
	return fmt.Errorf("%s: %w", message, err)
}
