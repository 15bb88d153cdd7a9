package account

import (
	"github.com/aquamitra/aquamitra/internal/account/repository"
	"github.com/aquamitra/aquamitra/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
