// Package auth signs users up and resolves the current user. Identity
// provider sign-in and sign-out happen in the upstream gateway, which
// forwards the authenticated user id in the X-User-ID header.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/unclebandit/influencer-campaign-backend/internal/errors"
)

const MinPasswordLength = 6

var ErrEmailTaken = errors.New("email already registered")

type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProfileSeed is stored with the identity and used for the profile row.
type ProfileSeed struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	CompanyType string `json:"company_type"`
}

type Authenticator interface {
	SignUp(ctx context.Context, email, password string, seed ProfileSeed) (*Identity, error)
}

// PasswordAuthenticator keeps email/password identities in auth_users.
type PasswordAuthenticator struct {
	DB   *sql.DB
	Cost int // bcrypt cost, bcrypt.DefaultCost when zero
}

func (a *PasswordAuthenticator) SignUp(ctx context.Context, email, password string, seed ProfileSeed) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	cost := a.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	query := `
        INSERT INTO auth_users (id, email, password_hash, full_name, company_name, company_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err = a.DB.ExecContext(ctx, query, id, email, string(hash),
		seed.FullName, seed.CompanyName, seed.CompanyType, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &Identity{ID: id, Email: email}, nil
}

// ValidateCredentials checks the sign-up form before anything is written.
func ValidateCredentials(email, password string) error {
	verr := &appErrors.ValidationError{}
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		verr.Add("email", "invalid email")
	}
	if len(password) < MinPasswordLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	return verr.OrNil()
}

// ParseUserID accepts a canonical uuid and returns it normalized.
func ParseUserID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", appErrors.ErrUnauthenticated
	}
	return id.String(), nil
}

var _ Authenticator = (*PasswordAuthenticator)(nil)
