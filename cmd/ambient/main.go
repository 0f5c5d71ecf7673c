package main

import (
	"github.com/ambienthq/ambient/internal/config"
	"github.com/ambienthq/ambient/internal/migration"
	"github.com/ambienthq/ambient/internal/observability"
	"github.com/ambienthq/ambient/internal/server"
	"github.com/ambienthq/ambient/internal/signup"
	"github.com/ambienthq/ambient/internal/tenant"
	"github.com/ambienthq/ambient/internal/user"
	"github.com/ambienthq/ambient/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		tenant.Module,
		user.Module,
		signup.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
