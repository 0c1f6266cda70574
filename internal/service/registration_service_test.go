package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/auth"
	"github.com/unclebandit/influencer-campaign-backend/internal/model"
	"github.com/unclebandit/influencer-campaign-backend/internal/service"
)

type MockAuth struct {
	err  error
	seed auth.ProfileSeed
}

func (m *MockAuth) SignUp(ctx context.Context, email, password string, seed auth.ProfileSeed) (*auth.Identity, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.seed = seed
	return &auth.Identity{ID: "11111111-1111-1111-1111-111111111111", Email: email}, nil
}

type MockProfileRepo struct {
	profiles []*model.Profile
	err      error
}

func (m *MockProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles = append(m.profiles, p)
	return nil
}

func TestRegisterCreatesProfile(t *testing.T) {
	profiles := &MockProfileRepo{}
	svc := &service.RegistrationService{Auth: &MockAuth{}, ProfileRepo: profiles, Log: zerolog.Nop()}

	p, err := svc.Register(context.Background(), service.RegisterInput{
		Email: "ana@marca.es", Password: "secreto", FullName: " Ana ", CompanyName: "Marca", CompanyType: "brand",
	})
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", p.ID)
	assert.Equal(t, "Ana", p.FullName)
	assert.Len(t, profiles.profiles, 1)
}

func TestRegisterSignUpFailure(t *testing.T) {
	profiles := &MockProfileRepo{}
	svc := &service.RegistrationService{Auth: &MockAuth{err: auth.ErrEmailTaken}, ProfileRepo: profiles, Log: zerolog.Nop()}

	_, err := svc.Register(context.Background(), service.RegisterInput{Email: "ana@marca.es", Password: "secreto"})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Empty(t, profiles.profiles)
}

func TestRegisterProfileFailure(t *testing.T) {
	svc := &service.RegistrationService{
		Auth:        &MockAuth{},
		ProfileRepo: &MockProfileRepo{err: errors.New("duplicate key")},
		Log:         zerolog.Nop(),
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{Email: "ana@marca.es", Password: "secreto"})
	assert.ErrorIs(t, err, service.ErrProfileCreation)
}
