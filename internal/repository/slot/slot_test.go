package slot

import (
	"encoding/json"
	"testing"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/storage"

	"github.com/stretchr/testify/assert"
)

type memStore struct {
	slots map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, error) {
	v, ok := m.slots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.slots[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	delete(m.slots, key)
	return nil
}

func TestUserRepo_AbsentSlotIsEmpty(t *testing.T) {
	repo := NewUserRepository(newMemStore())
	assert.Empty(t, repo.All())

	user, err := repo.FindByFiveDigitID("48213")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_AppendPersistsWholeCollection(t *testing.T) {
	store := newMemStore()
	repo := NewUserRepository(store)

	assert.NoError(t, repo.Append(domain.User{ID: "u1", Role: domain.RoleCustomer, FiveDigitID: "48213"}))
	assert.NoError(t, repo.Append(domain.User{ID: "u2", Role: domain.RoleCustomer, FiveDigitID: "59201"}))

	var stored []domain.User
	assert.NoError(t, json.Unmarshal(store.slots[storage.SlotUsers], &stored))
	assert.Len(t, stored, 2)

	found, err := repo.FindByFiveDigitID("59201")
	assert.NoError(t, err)
	assert.Equal(t, "u2", found.ID)
}

func TestUserRepo_MalformedSlotFallsBackToEmpty(t *testing.T) {
	store := newMemStore()
	corrupt := []byte("{not json")
	store.slots[storage.SlotUsers] = corrupt

	repo := NewUserRepository(store)
	assert.Empty(t, repo.All())

	// The corrupt bytes stay in place until the next successful write.
	assert.Equal(t, corrupt, store.slots[storage.SlotUsers])

	assert.NoError(t, repo.Append(domain.User{ID: "u1"}))
	assert.NotEqual(t, corrupt, store.slots[storage.SlotUsers])
	assert.Len(t, repo.All(), 1)
}

func TestProductRepo_AddPrependsAndUpdateReplaces(t *testing.T) {
	repo := NewProductRepository(newMemStore())

	assert.NoError(t, repo.Add(domain.Product{ID: "p1", Title: "Mug", Price: 50}))
	assert.NoError(t, repo.Add(domain.Product{ID: "p2", Title: "Shirt", Price: 100}))

	all := repo.All()
	assert.Equal(t, "p2", all[0].ID)

	assert.NoError(t, repo.Update(domain.Product{ID: "p1", Title: "Mug", Price: 75}))
	p, err := repo.FindByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, int64(75), p.Price)

	assert.Error(t, repo.Update(domain.Product{ID: "missing"}))

	assert.NoError(t, repo.Delete("p1"))
	p, err = repo.FindByID("p1")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestCartRepo_ReplaceAndClear(t *testing.T) {
	store := newMemStore()
	repo := NewCartRepository(store)

	items := []domain.CartItem{
		{Product: domain.Product{ID: "p1", Price: 50}, Quantity: 2},
	}
	assert.NoError(t, repo.Replace(items))
	assert.Equal(t, items, repo.Items())

	assert.NoError(t, repo.Clear())
	assert.Empty(t, repo.Items())

	// Clear writes an empty collection rather than removing the slot.
	assert.Equal(t, []byte("[]"), store.slots[storage.SlotCart])
}

func TestCartRepo_MalformedSlotFallsBackToEmpty(t *testing.T) {
	store := newMemStore()
	store.slots[storage.SlotCart] = []byte("][")

	repo := NewCartRepository(store)
	assert.Empty(t, repo.Items())
}

func TestOrderRepo_PrependAndUpdate(t *testing.T) {
	repo := NewOrderRepository(newMemStore())

	assert.NoError(t, repo.Prepend(domain.Order{ID: "o1", Status: domain.StatusPending}))
	assert.NoError(t, repo.Prepend(domain.Order{ID: "o2", Status: domain.StatusPending}))

	all := repo.All()
	assert.Equal(t, "o2", all[0].ID)

	assert.NoError(t, repo.Update(domain.Order{ID: "o1", Status: domain.StatusShipped}))
	o, err := repo.FindByID("o1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, o.Status)

	assert.Error(t, repo.Update(domain.Order{ID: "missing"}))
}

func TestSessionRepo_SetCurrentAndClear(t *testing.T) {
	store := newMemStore()
	repo := NewSessionRepository(store)

	assert.Nil(t, repo.Current())

	user := &domain.User{ID: "u1", Role: domain.RoleCustomer, FiveDigitID: "48213"}
	assert.NoError(t, repo.SetCurrent(user))
	assert.Equal(t, user, repo.Current())

	// nil clears the slot entirely.
	assert.NoError(t, repo.SetCurrent(nil))
	assert.Nil(t, repo.Current())
	_, ok := store.slots[storage.SlotCurrentUser]
	assert.False(t, ok)
}

func TestSettingsRepo_LanguageDefaults(t *testing.T) {
	store := newMemStore()
	repo := NewSettingsRepository(store)

	assert.Equal(t, domain.DefaultLanguage, repo.Language())

	assert.NoError(t, repo.SetLanguage(domain.LangEnglish))
	assert.Equal(t, domain.LangEnglish, repo.Language())

	store.slots[storage.SlotLanguage] = []byte(`"klingon"`)
	assert.Equal(t, domain.DefaultLanguage, repo.Language())

	store.slots[storage.SlotLanguage] = []byte("not json")
	assert.Equal(t, domain.DefaultLanguage, repo.Language())
}
