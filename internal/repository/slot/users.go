package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type userRepo struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) repository.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) All() []domain.User {
	return r.load()
}

func (r *userRepo) FindByFiveDigitID(id string) (*domain.User, error) {
	for _, u := range r.load() {
		if u.FiveDigitID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Append(user domain.User) error {
	users := append(r.load(), user)
	return r.save(users)
}

func (r *userRepo) load() []domain.User {
	raw, err := r.store.Get(storage.SlotUsers)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("users: read slot: %v", err)
		}
		return nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// Corrupt value stays in place until the next successful write.
		log.Printf("users: malformed slot, serving empty collection: %v", err)
		return nil
	}
	return users
}

func (r *userRepo) save(users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotUsers, raw)
}
