package migration

import (
	"github.com/ambienthq/ambient/internal/config"
	"github.com/ambienthq/ambient/internal/seed"
	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	userdomain "github.com/ambienthq/ambient/internal/user/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite deployments rely on gorm's schema derivation;
			// the versioned SQL is postgres-only.
			if err := conn.AutoMigrate(&tenantdomain.Tenant{}, &userdomain.User{}); err != nil {
				return err
			}
		}

		if cfg.SeedDemoTenant && !cfg.IsProduction() {
			return seed.EnsureDemoTenant(conn, genID)
		}
		return nil
	}),
)
