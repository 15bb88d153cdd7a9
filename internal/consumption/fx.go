package consumption

import (
	"github.com/aquamitra/aquamitra/internal/consumption/repository"
	"github.com/aquamitra/aquamitra/internal/consumption/service"
	"go.uber.org/fx"
)

var Module = fx.Module("consumption.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
