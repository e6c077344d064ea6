package toml

import (
	"fmt"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Profile *profileSchema `toml:"profile,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type profileSchema struct {
	ID               int64  `toml:"id"`
	Username         string `toml:"username"`
	FirstName        string `toml:"first_name"`
	LastName         string `toml:"last_name"`
	Email            string `toml:"email"`
	Bio              string `toml:"bio,omitempty"`
	ProfilePicURL    string `toml:"profile_pic_url,omitempty"`
	IsVerified       bool   `toml:"is_verified"`
	TwoFactorEnabled bool   `toml:"two_factor_enabled"`
	BiometricEnabled bool   `toml:"biometric_enabled"`
	IsPrivate        bool   `toml:"is_private"`
}

func toSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		ID:               int64(profile.ID),
		Username:         profile.Username,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		Email:            profile.Email,
		Bio:              profile.Bio,
		ProfilePicURL:    profile.ProfilePicURL,
		IsVerified:       profile.IsVerified,
		TwoFactorEnabled: profile.TwoFactorEnabled,
		BiometricEnabled: profile.BiometricEnabled,
		IsPrivate:        profile.IsPrivate,
	}
}

func fromSchema(schema profileSchema) domain.Profile {
	return domain.Profile{
		ID:               domain.UserID(schema.ID),
		Username:         schema.Username,
		FirstName:        schema.FirstName,
		LastName:         schema.LastName,
		Email:            schema.Email,
		Bio:              schema.Bio,
		ProfilePicURL:    schema.ProfilePicURL,
		IsVerified:       schema.IsVerified,
		TwoFactorEnabled: schema.TwoFactorEnabled,
		BiometricEnabled: schema.BiometricEnabled,
		IsPrivate:        schema.IsPrivate,
	}
}
