package application

import (
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/linskybing/client-intake/internal/api/middleware"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminService checks the single configured admin account.
type AdminService struct {
	username     string
	passwordHash string
	tokenTTL     time.Duration
}

func NewAdminService(username, passwordHash string, tokenTTL time.Duration) *AdminService {
	if passwordHash == "" {
		log.Println("[Admin] ADMIN_PASSWORD_HASH is empty, admin login disabled")
	}
	return &AdminService{
		username:     username,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
	}
}

func (s *AdminService) Login(input submission.AdminLoginInput) (submission.AdminToken, error) {
	if s.passwordHash == "" {
		return submission.AdminToken{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) != 1 {
		return submission.AdminToken{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(input.Password)); err != nil {
		return submission.AdminToken{}, ErrInvalidCredentials
	}

	token, expiresAt, err := middleware.GenerateToken(s.username, s.tokenTTL)
	if err != nil {
		return submission.AdminToken{}, err
	}
	log.Printf("[Admin] %s logged in", s.username)
	return submission.AdminToken{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
