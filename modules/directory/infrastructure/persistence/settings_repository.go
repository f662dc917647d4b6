package persistence

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/peoplekit/directory/pkg/kv"
)

const (
	viewModeKey      = "viewMode"
	pendingResultKey = "pendingResult"
)

// SettingsRepository stores small UI-facing preferences next to the
// employee dataset: the persisted list/table choice and the one-shot
// result notice consumed after a redirect.
type SettingsRepository struct {
	store kv.Store
}

func NewSettingsRepository(store kv.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// ViewMode returns the persisted view mode, or fallback when unset.
func (r *SettingsRepository) ViewMode(ctx context.Context, fallback string) (string, error) {
	payload, ok, err := r.store.Get(ctx, viewModeKey)
	if err != nil {
		return "", errors.Wrap(err, "load view mode")
	}
	if !ok || len(payload) == 0 {
		return fallback, nil
	}
	return string(payload), nil
}

func (r *SettingsRepository) SetViewMode(ctx context.Context, mode string) error {
	if err := r.store.Set(ctx, viewModeKey, []byte(mode)); err != nil {
		return errors.Wrap(err, "persist view mode")
	}
	return nil
}

// PutPendingResult stores a notice to be shown exactly once.
func (r *SettingsRepository) PutPendingResult(ctx context.Context, result PendingResultRow) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal pending result")
	}
	if err := r.store.Set(ctx, pendingResultKey, payload); err != nil {
		return errors.Wrap(err, "persist pending result")
	}
	return nil
}

// TakePendingResult returns and removes the stored notice. The second
// return value reports whether one was present.
func (r *SettingsRepository) TakePendingResult(ctx context.Context) (PendingResultRow, bool, error) {
	var result PendingResultRow
	payload, ok, err := r.store.Get(ctx, pendingResultKey)
	if err != nil {
		return result, false, errors.Wrap(err, "load pending result")
	}
	if !ok {
		return result, false, nil
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		_ = r.store.Delete(ctx, pendingResultKey)
		return result, false, nil
	}
	if err := r.store.Delete(ctx, pendingResultKey); err != nil {
		return result, false, errors.Wrap(err, "consume pending result")
	}
	return result, true, nil
}
