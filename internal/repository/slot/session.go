package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type sessionRepo struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) repository.SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) Current() *domain.User {
	raw, err := r.store.Get(storage.SlotCurrentUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("session: read slot: %v", err)
		}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("session: malformed slot, treating as signed out: %v", err)
		return nil
	}
	return &user
}

func (r *sessionRepo) SetCurrent(user *domain.User) error {
	if user == nil {
		return r.store.Remove(storage.SlotCurrentUser)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotCurrentUser, raw)
}
