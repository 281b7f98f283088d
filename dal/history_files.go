package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

func NewReplyHistory() *ReplyHistory {
	return &ReplyHistory{
		Users: map[string]int64{},
		Posts: map[string]int64{},
	}
}

// LoadActionHistory reads a history file. A missing file yields an empty history.
// The legacy flat map of subject to timestamp is converted into records ordered by time.
func LoadActionHistory(fileName string) (*ActionHistory, error) {
	data, err := os.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return &ActionHistory{Actions: []*ActionRecord{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseActionHistory(data)
}

func ParseActionHistory(data []byte) (*ActionHistory, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	res := &ActionHistory{Actions: []*ActionRecord{}}
	if actions, ok := raw["actions"]; ok {
		if err := json.Unmarshal(actions, &res.Actions); err != nil {
			return nil, err
		}
		if res.Actions == nil {
			res.Actions = []*ActionRecord{}
		}
		return res, nil
	}
	legacy, err := parseLegacyMap(raw)
	if err != nil {
		return nil, err
	}
	for id, ts := range legacy {
		res.Actions = append(res.Actions, &ActionRecord{Timestamp: ts, TargetId: id})
	}
	sort.Slice(res.Actions, func(i, j int) bool {
		return res.Actions[i].Timestamp < res.Actions[j].Timestamp
	})
	return res, nil
}

func SaveActionHistory(fileName string, history *ActionHistory) error {
	return writeJsonFile(fileName, history)
}

// LoadReplyHistory reads the ledger file; a missing file yields an empty ledger.
func LoadReplyHistory(fileName string) (history *ReplyHistory, migrated bool, err error) {
	data, err := os.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return NewReplyHistory(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return ParseReplyHistory(data)
}

// ParseReplyHistory accepts both the structured {"users":{},"posts":{}} shape and the legacy
// flat map of author to timestamp, which becomes the users map. Nothing is pruned here.
func ParseReplyHistory(data []byte) (history *ReplyHistory, migrated bool, err error) {
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}
	history = NewReplyHistory()

	_, hasUsers := raw["users"]
	_, hasPosts := raw["posts"]
	if hasUsers || hasPosts || len(raw) == 0 {
		if err = json.Unmarshal(data, history); err != nil {
			return nil, false, err
		}
		if history.Users == nil {
			history.Users = map[string]int64{}
		}
		if history.Posts == nil {
			history.Posts = map[string]int64{}
		}
		return history, false, nil
	}

	legacy, err := parseLegacyMap(raw)
	if err != nil {
		return nil, false, err
	}
	history.Users = legacy
	return history, true, nil
}

func SaveReplyHistory(fileName string, history *ReplyHistory) error {
	return writeJsonFile(fileName, history)
}

func parseLegacyMap(raw map[string]json.RawMessage) (map[string]int64, error) {
	res := make(map[string]int64, len(raw))
	for key, val := range raw {
		var ts int64
		if err := json.Unmarshal(val, &ts); err != nil {
			return nil, fmt.Errorf("unexpected value for key '%s': %w", key, err)
		}
		res[key] = ts
	}
	return res, nil
}

// Writes to a temp file next to the target, then renames, so readers never see half a file.
func writeJsonFile(fileName string, obj any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(fileName)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(fileName)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, fileName)
}
