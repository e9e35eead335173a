package services

import (
	"errors"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
)

var ErrUnknownLanguage = errors.New("unknown language")

type SettingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Language() domain.Language {
	return s.settings.Language()
}

func (s *SettingsService) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return ErrUnknownLanguage
	}
	return s.settings.SetLanguage(lang)
}
