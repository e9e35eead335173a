package services

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDuplicateID      = errors.New("customer id already taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrAdminCredentials = errors.New("invalid admin credentials")
)

type AdminCredentials struct {
	Username string
	Password string
}

type IdentityService struct {
	users   repository.UserRepository
	session repository.SessionRepository
	admin   AdminCredentials

	newFiveDigitID func() string
}

func NewIdentityService(users repository.UserRepository, session repository.SessionRepository, admin AdminCredentials) *IdentityService {
	return &IdentityService{
		users:   users,
		session: session,
		admin:   admin,
		newFiveDigitID: func() string {
			return strconv.Itoa(rand.IntN(90000) + 10000)
		},
	}
}

// Register creates a customer account with a fresh five-digit login id.
// A generated id that collides with an existing customer rejects the whole
// registration; the caller submits again.
func (s *IdentityService) Register(name, identifier, password string) (*domain.User, error) {
	fiveDigitID := s.newFiveDigitID()

	existing, err := s.users.FindByFiveDigitID(fiveDigitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateID
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        name,
		Identifier:  identifier,
		Password:    password,
		Role:        domain.RoleCustomer,
		FiveDigitID: fiveDigitID,
	}

	if err := s.users.Append(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login matches the five-digit id and password exactly. Unknown id and wrong
// password fail the same way, so callers cannot probe for registered ids.
func (s *IdentityService) Login(fiveDigitID, password string) (*domain.User, error) {
	user, err := s.users.FindByFiveDigitID(fiveDigitID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// LoginAdmin checks the configured credential pair and materializes an
// ephemeral admin user. Admins are never written to the users slot and carry
// no five-digit id.
func (s *IdentityService) LoginAdmin(username, password string) (*domain.User, error) {
	if username != s.admin.Username || password != s.admin.Password {
		return nil, ErrAdminCredentials
	}
	return &domain.User{
		ID:         "admin",
		Name:       "Admin",
		Identifier: "admin",
		Role:       domain.RoleAdmin,
	}, nil
}

func (s *IdentityService) CurrentUser() *domain.User {
	return s.session.Current()
}

func (s *IdentityService) SetCurrentUser(user *domain.User) error {
	return s.session.SetCurrent(user)
}

func (s *IdentityService) Logout() error {
	return s.session.SetCurrent(nil)
}

func (s *IdentityService) Users() []domain.User {
	return s.users.All()
}
