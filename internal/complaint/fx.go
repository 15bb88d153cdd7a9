package complaint

import (
	"github.com/aquamitra/aquamitra/internal/complaint/repository"
	"github.com/aquamitra/aquamitra/internal/complaint/service"
	"go.uber.org/fx"
)

var Module = fx.Module("complaint.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
