package dashboard

import (
	"github.com/aquamitra/aquamitra/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(service.New),
)
