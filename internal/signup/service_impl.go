package signup

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/ambienthq/ambient/internal/auth/password"
	"github.com/ambienthq/ambient/internal/signup/domain"
	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	userdomain "github.com/ambienthq/ambient/internal/user/domain"
	"github.com/ambienthq/ambient/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// publicEmailDomains lists consumer providers rejected before any storage
// access.
var publicEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"live.com":       {},
	"icloud.com":     {},
	"proton.me":      {},
	"protonmail.com": {},
}

const tenantSlugPrefix = "t_"

// maxSlugAttempts bounds the collision-retry loop against a storage layer
// that reports every insert as a duplicate. With suffix entropy growing per
// attempt the bound is unreachable under any realistic collision rate.
const maxSlugAttempts = 32

type service struct {
	log     *zap.Logger
	tenants tenantdomain.Repository
	users   userdomain.Repository
	hasher  password.Hasher
	genID   *snowflake.Node
}

func NewService(log *zap.Logger, tenants tenantdomain.Repository, users userdomain.Repository, hasher password.Hasher, genID *snowflake.Node) domain.Service {
	return &service{
		log:     log,
		tenants: tenants,
		users:   users,
		hasher:  hasher,
		genID:   genID,
	}
}

// Signup creates the tenant for the email's domain if it does not exist yet,
// then creates the user under it. Re-signup of an existing user is a no-op
// that reports the same success as a fresh one.
func (s *service) Signup(ctx context.Context, req domain.Request) error {
	email := normalizeEmail(req.Email)
	emailDomain, err := extractDomain(email)
	if err != nil {
		return err
	}

	if _, ok := publicEmailDomains[emailDomain]; ok {
		return domain.ErrPublicEmailDomain
	}

	tenant, err := s.resolveTenant(ctx, emailDomain)
	if err != nil {
		return err
	}

	_, err = s.users.FindByTenantAndEmail(ctx, tenant.ID, email)
	if err == nil {
		// Existing user: indistinguishable from a fresh signup.
		return nil
	}
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &userdomain.User{
		ID:           s.genID.Generate(),
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			// Lost a race against an identical concurrent signup; the
			// outcome is the same account, so this is still success.
			return nil
		}
		return err
	}

	s.log.Info("user signed up",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("tenant_slug", tenant.Slug),
	)
	return nil
}

// resolveTenant returns the tenant owning emailDomain, creating it when
// absent. The storage layer's uniqueness constraints arbitrate concurrent
// creation: a primary_domain conflict means another request won the race and
// its tenant is reused; a slug conflict triggers a retry with a fresh random
// suffix of growing length.
func (s *service) resolveTenant(ctx context.Context, emailDomain string) (*tenantdomain.Tenant, error) {
	tenant, err := s.tenants.FindByPrimaryDomain(ctx, emailDomain)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, tenantdomain.ErrTenantNotFound) {
		return nil, err
	}

	base := makeTenantSlug(emailDomain)
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			suffix, err := randomSuffix(2 + attempt)
			if err != nil {
				return nil, err
			}
			candidate = base + "_" + suffix
		}

		exists, err := s.tenants.SlugExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		now := time.Now().UTC()
		created := &tenantdomain.Tenant{
			ID:            s.genID.Generate(),
			Slug:          candidate,
			Name:          emailDomain,
			PrimaryDomain: emailDomain,
			Metadata:      datatypes.JSONMap{},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		err = s.tenants.Create(ctx, created)
		if err == nil {
			s.log.Info("tenant created",
				zap.String("tenant_id", created.ID.String()),
				zap.String("tenant_slug", created.Slug),
			)
			return created, nil
		}
		if !db.IsDuplicateKeyErr(err) {
			return nil, err
		}

		// Duplicate key: either the slug or the primary domain collided.
		// A domain hit means a concurrent first signup won; reuse its tenant.
		existing, ferr := s.tenants.FindByPrimaryDomain(ctx, emailDomain)
		if ferr == nil {
			return existing, nil
		}
		if !errors.Is(ferr, tenantdomain.ErrTenantNotFound) {
			return nil, ferr
		}
		// Slug collision against an unrelated tenant; retry with more entropy.
	}

	return nil, errors.New("tenant slug allocation exhausted")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// extractDomain returns the part after "@". Validity is defined as exactly
// one separator; anything else is a malformed address.
func extractDomain(email string) (string, error) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "", domain.ErrInvalidEmail
	}
	return parts[1], nil
}

// makeTenantSlug derives the deterministic base slug for a domain, e.g.
// "acme.com" -> "t_acme_com".
func makeTenantSlug(emailDomain string) string {
	return tenantSlugPrefix + strings.ReplaceAll(slug.Make(emailDomain), "-", "_")
}

func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
