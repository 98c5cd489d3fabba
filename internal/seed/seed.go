package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/identity"
	"gatepass-backend/internal/domain/settings"
)

type AdminAccount struct {
	Email    string
	Password string
	Name     string
}

// Ensure makes first boot usable: the settings singleton exists and at
// least one admin can sign in. It never overwrites existing data.
func Ensure(ctx context.Context, st settings.Repository, applicants applicant.Repository, idp identity.Provider, admin AdminAccount, log zerolog.Logger) error {
	if _, err := st.Ensure(ctx); err != nil {
		return err
	}

	n, err := applicants.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("no admins exist and no bootstrap admin configured")
		return nil
	}

	uid, err := idp.CreateIdentity(ctx, admin.Email, admin.Password, admin.Name)
	if err != nil {
		// identity may survive a crashed earlier boot
		if errors.Is(err, identity.ErrAlreadyExists) {
			log.Warn().Str("email", admin.Email).Msg("bootstrap admin identity already exists, skipping")
			return nil
		}
		return err
	}
	if err := applicants.CreateAdmin(ctx, &applicant.Admin{
		ApplicantID: uid,
		Name:        admin.Name,
		Email:       admin.Email,
		IsMain:      true,
	}); err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("bootstrap admin created")
	return nil
}
