package employee

import (
	"github.com/aquamitra/aquamitra/internal/employee/repository"
	"github.com/aquamitra/aquamitra/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
