package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unclebandit/influencer-campaign-backend/internal/auth"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
	"github.com/unclebandit/influencer-campaign-backend/internal/repository"
)

// ErrProfileCreation means the identity exists but its profile row does not.
var ErrProfileCreation = errors.New("error creating profile")

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	CompanyType string `json:"company_type"`
}

type RegistrationService struct {
	Auth        auth.Authenticator
	ProfileRepo repository.ProfileRepositoryInterface
	Log         zerolog.Logger
}

// Register signs the user up, then creates the profile keyed by the new
// identity id.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*model.Profile, error) {
	seed := auth.ProfileSeed{
		FullName:    strings.TrimSpace(in.FullName),
		CompanyName: strings.TrimSpace(in.CompanyName),
		CompanyType: strings.TrimSpace(in.CompanyType),
	}

	identity, err := s.Auth.SignUp(ctx, in.Email, in.Password, seed)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		ID:          identity.ID,
		Email:       identity.Email,
		FullName:    seed.FullName,
		CompanyName: seed.CompanyName,
		CompanyType: seed.CompanyType,
	}
	if err := s.ProfileRepo.Create(ctx, profile); err != nil {
		s.Log.Error().Err(err).Str("user_id", identity.ID).Msg("profile insert failed after sign-up")
		return nil, fmt.Errorf("%w: %v", ErrProfileCreation, err)
	}
	return profile, nil
}
