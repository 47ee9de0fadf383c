package di

import (
	"go.uber.org/fx"

	"github.com/tsogoo/minimart/internal/app"
	"github.com/tsogoo/minimart/internal/config"
	"github.com/tsogoo/minimart/internal/logger"
	"github.com/tsogoo/minimart/internal/pkg/auth"
	"github.com/tsogoo/minimart/internal/server/http/router"
	"github.com/tsogoo/minimart/internal/storage/postgres"
	"github.com/tsogoo/minimart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
