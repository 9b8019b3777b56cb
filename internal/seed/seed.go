package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/cursoscarioca/webciclo/internal/app/models"
	appRepos "github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/config"
	"github.com/cursoscarioca/webciclo/internal/pkg/auth"
)

// CreateDefaultData creates the default staff account if it doesn't exist.
// The credentials come from the auth section of the configuration.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	username := cfg.Auth.AdminUsername
	exists, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default staff user exists")
		return err
	}
	if exists {
		lgr.Info().Str("username", username).Msg("Default staff user already exists, skipping creation")
		return nil
	}

	if cfg.Auth.AdminPassword == "" {
		lgr.Warn().Str("username", username).Msg("No admin password configured, skipping default staff user creation")
		return nil
	}

	lgr.Info().Str("username", username).Msg("Creating default staff user...")

	hashedPassword, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default staff password")
		return err
	}

	user := &appModels.User{
		Username:    username,
		Password:    hashedPassword,
		DisplayName: "Equipe WebCiclo",
		IsActive:    true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		lgr.Error().Err(err).Msg("Error creating default staff user")
		return err
	}

	lgr.Info().Int64("userID", user.ID).Msg("Default staff user created successfully")
	return nil
}
