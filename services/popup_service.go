package services

import (
	"context"
	"encoding/json"
	"log"
	"slices"

	"hardware-store/models"
	"hardware-store/repositories"
)

const shownPopupsKey = "shownPopups"

// PopupService tracks which popups a visitor has already dismissed.
type PopupService struct {
	storage repositories.KVStore
}

func NewPopupService(storage repositories.KVStore) *PopupService {
	return &PopupService{storage: storage}
}

func (s *PopupService) Seen(ctx context.Context, owner string) []string {
	data, found, err := s.storage.Get(ctx, shownPopupsKey+":"+owner)
	if err != nil {
		log.Printf("[Popups] failed to load shown popups for %s: %v", owner, err)
		return []string{}
	}
	if !found {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil || ids == nil {
		return []string{}
	}
	return ids
}

// Next returns the first enabled popup the visitor should see, or nil.
func (s *PopupService) Next(ctx context.Context, owner string, popups []models.PopupConfig) *models.PopupConfig {
	seen := s.Seen(ctx, owner)
	for _, p := range popups {
		if p.Enabled && (!p.ShowOnce || !slices.Contains(seen, p.ID)) {
			next := p
			return &next
		}
	}
	return nil
}

// MarkShown records a dismissed popup. Only showOnce popups are tracked.
func (s *PopupService) MarkShown(ctx context.Context, owner string, popup models.PopupConfig) []string {
	seen := s.Seen(ctx, owner)
	if !popup.ShowOnce || slices.Contains(seen, popup.ID) {
		return seen
	}

	seen = append(seen, popup.ID)
	data, err := json.Marshal(seen)
	if err != nil {
		return seen
	}
	if err := s.storage.Set(ctx, shownPopupsKey+":"+owner, data); err != nil {
		log.Printf("[Popups] failed to persist shown popups for %s: %v", owner, err)
	}
	return seen
}
