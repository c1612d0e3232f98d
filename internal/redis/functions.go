package redis

import (
	"encoding/json"
	"fmt"

	"github.com/sukalov/songform/internal/songform"
	"github.com/sukalov/songform/internal/users"
)

func encodeDraft(draft users.Draft) ([]byte, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft for chat %d: %w", draft.ChatID, err)
	}
	return data, nil
}

func decodeDraft(data []byte) (users.Draft, error) {
	var draft users.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return users.Draft{}, fmt.Errorf("failed to decode draft: %w", err)
	}
	if draft.Structure == nil {
		draft.Structure = songform.Structure{}
	}
	if draft.Lyrics == nil {
		draft.Lyrics = songform.Lyrics{}
	}
	return draft, nil
}
