package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository is the persistence contract for users.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByTenantAndEmail(ctx context.Context, tenantID snowflake.ID, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

var ErrUserNotFound = errors.New("user_not_found")
