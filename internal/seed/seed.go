package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/eduhub/internal/app/models"
	appRepos "github.com/yigit/eduhub/internal/app/repositories"
	"github.com/yigit/eduhub/internal/config"
)

// CreateDefaultData makes sure the configured admin account exists. With no
// admin uid configured it does nothing.
func CreateDefaultData(ctx context.Context, cfg *config.Config, users *appRepos.UserRepository, lgr zerolog.Logger) error {
	if cfg.Seed.AdminUID == "" {
		lgr.Debug().Msg("No seed admin configured, skipping default data")
		return nil
	}

	existing, err := users.FindExisting(ctx, cfg.Seed.AdminUID, cfg.Seed.AdminEmail)
	if err != nil && !errors.Is(err, appRepos.ErrNotFound) {
		return err
	}
	if existing != nil {
		if existing.Role != appModels.RoleAdmin {
			if _, err := users.UpdateRole(ctx, existing.ID.Hex(), appModels.RoleAdmin); err != nil {
				lgr.Error().Err(err).Str("uid", existing.UID).Msg("Error promoting seed admin")
				return err
			}
			lgr.Info().Str("uid", existing.UID).Msg("Seed admin promoted")
		}
		return nil
	}

	admin := &appModels.User{
		UID:   cfg.Seed.AdminUID,
		Name:  cfg.Seed.AdminName,
		Email: cfg.Seed.AdminEmail,
		Role:  appModels.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil && !errors.Is(err, appRepos.ErrAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating seed admin")
		return err
	}

	lgr.Info().Str("uid", admin.UID).Msg("Seed admin created")
	return nil
}
