package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type settingsRepo struct {
	store storage.Store
}

func NewSettingsRepository(store storage.Store) repository.SettingsRepository {
	return &settingsRepo{store: store}
}

func (r *settingsRepo) Language() domain.Language {
	raw, err := r.store.Get(storage.SlotLanguage)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("settings: read slot: %v", err)
		}
		return domain.DefaultLanguage
	}

	var lang domain.Language
	if err := json.Unmarshal(raw, &lang); err != nil {
		log.Printf("settings: malformed slot, using default language: %v", err)
		return domain.DefaultLanguage
	}
	if !lang.Valid() {
		return domain.DefaultLanguage
	}
	return lang
}

func (r *settingsRepo) SetLanguage(lang domain.Language) error {
	raw, err := json.Marshal(lang)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotLanguage, raw)
}
