package services

import (
	"context"
	"fmt"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
)

// View modes the list page can render in.
const (
	ViewModeList = "list"
	ViewModeGrid = "grid"
)

type SettingsService struct {
	repo *persistence.SettingsRepository
}

func NewSettingsService(repo *persistence.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) ViewMode(ctx context.Context) (string, error) {
	return s.repo.ViewMode(ctx, ViewModeList)
}

func (s *SettingsService) SetViewMode(ctx context.Context, mode string) error {
	if mode != ViewModeList && mode != ViewModeGrid {
		return fmt.Errorf("unknown view mode: %q", mode)
	}
	return s.repo.SetViewMode(ctx, mode)
}

func (s *SettingsService) PutPendingResult(ctx context.Context, result persistence.PendingResultRow) error {
	return s.repo.PutPendingResult(ctx, result)
}

func (s *SettingsService) TakePendingResult(ctx context.Context) (persistence.PendingResultRow, bool, error) {
	return s.repo.TakePendingResult(ctx)
}
