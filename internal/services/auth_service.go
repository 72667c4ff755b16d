package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService binds the single operator account to a session cookie. Malformed
// credentials fail the same way as wrong ones so login probes learn nothing.
type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	email, ok := validate.Email(email)
	if !ok || !validate.Password(password) {
		return nil, ErrBadCreds
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
