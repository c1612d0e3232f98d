package redis

import (
	"context"
	"fmt"
	"strconv"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/sukalov/songform/internal/users"
	"github.com/sukalov/songform/internal/utils"
)

const draftsKey = "drafts"

type DBManager struct {
	client *redisClient.Client
}

// NewDBManager connects to the redis instance at REDIS_URL over TLS.
func NewDBManager() (*DBManager, error) {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		return nil, fmt.Errorf("failed to load redis env: %w", err)
	}
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return NewDBManagerWithClient(redisClient.NewClient(opt)), nil
}

func NewDBManagerWithClient(client *redisClient.Client) *DBManager {
	return &DBManager{client: client}
}

func (redis *DBManager) Ping(ctx context.Context) error {
	return redis.client.Ping(ctx).Err()
}

func (redis *DBManager) Close() error {
	return redis.client.Close()
}

// SetDraft stores one chat's draft
func (redis *DBManager) SetDraft(ctx context.Context, draft users.Draft) error {
	data, err := encodeDraft(draft)
	if err != nil {
		return err
	}
	return redis.client.HSet(ctx, draftsKey, chatField(draft.ChatID), data).Err()
}

// GetDraft retrieves one chat's draft; ok is false when there is none
func (redis *DBManager) GetDraft(ctx context.Context, chatID int64) (users.Draft, bool, error) {
	data, err := redis.client.HGet(ctx, draftsKey, chatField(chatID)).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return users.Draft{}, false, nil
		}
		return users.Draft{}, false, err
	}
	draft, err := decodeDraft(data)
	if err != nil {
		return users.Draft{}, false, err
	}
	return draft, true, nil
}

// GetAllDrafts retrieves every stored draft, skipping entries that fail to decode
func (redis *DBManager) GetAllDrafts(ctx context.Context) ([]users.Draft, error) {
	raw, err := redis.client.HGetAll(ctx, draftsKey).Result()
	if err != nil {
		if err == redisClient.Nil {
			return []users.Draft{}, nil
		}
		return nil, err
	}

	drafts := make([]users.Draft, 0, len(raw))
	for _, data := range raw {
		draft, err := decodeDraft([]byte(data))
		if err != nil {
			continue // skip invalid drafts
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func (redis *DBManager) DeleteDraft(ctx context.Context, chatID int64) error {
	return redis.client.HDel(ctx, draftsKey, chatField(chatID)).Err()
}

func (redis *DBManager) ClearDrafts(ctx context.Context) error {
	return redis.client.Del(ctx, draftsKey).Err()
}

func chatField(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
