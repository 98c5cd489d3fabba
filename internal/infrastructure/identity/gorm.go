package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	idDomain "gatepass-backend/internal/domain/identity"
)

// Credential is one stored login. Passwords are kept bcrypt-hashed
// only.
type Credential struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	UID          string    `gorm:"size:36;uniqueIndex:ux_credentials_uid"`
	Email        string    `gorm:"size:128;uniqueIndex:ux_credentials_email"`
	PasswordHash string    `gorm:"size:72"`
	DisplayName  string    `gorm:"size:128"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Credential) TableName() string { return "credentials" }

// GormProvider implements the credential store on the service's own
// database.
type GormProvider struct{ db *gorm.DB }

func NewGormProvider(db *gorm.DB) *GormProvider { return &GormProvider{db: db} }

func (p *GormProvider) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	var c Credential
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&c)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return "", idDomain.ErrInvalidCredentials
	}
	if res.Error != nil {
		return "", res.Error
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return "", idDomain.ErrInvalidCredentials
	}
	return c.UID, nil
}

func (p *GormProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	c := Credential{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := p.db.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", idDomain.ErrAlreadyExists
		}
		return "", err
	}
	return c.UID, nil
}

func (p *GormProvider) UpdateIdentity(ctx context.Context, uid string, upd idDomain.Update) error {
	var c Credential
	res := p.db.WithContext(ctx).Where("uid = ?", uid).First(&c)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return idDomain.ErrNotFound
	}
	if res.Error != nil {
		return res.Error
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.DisplayName != nil {
		c.DisplayName = *upd.DisplayName
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		c.PasswordHash = string(hash)
	}
	if err := p.db.WithContext(ctx).Save(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return idDomain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (p *GormProvider) DeleteIdentity(ctx context.Context, uid string) error {
	res := p.db.WithContext(ctx).Where("uid = ?", uid).Delete(&Credential{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return idDomain.ErrNotFound
	}
	return nil
}
