package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ImportUser loads one account together with its profile. The pair is
// written atomically; a duplicate username fails the whole operation.
func (s *Service) ImportUser(ctx context.Context, input ImportUserInput) (*domain.User, error) {
	if _, err := s.authorize(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var passwordHash string
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hash)
	}

	user := &domain.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		IsActive:  input.IsActive,
		IsStaff:   input.IsStaff,
		CreatedAt: s.now(),
	}

	profile := &domain.Profile{
		UserID:   user.ID,
		Role:     input.Role,
		Bio:      input.Bio,
		Quote:    input.Quote,
		Avatar:   input.Avatar,
		Cover:    input.Cover,
		Website:  input.Website,
		Facebook: input.Facebook,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user, passwordHash, profile); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user imported", "user_id", user.ID, "username", user.Username)

	return user, nil
}
