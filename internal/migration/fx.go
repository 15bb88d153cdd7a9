package migration

import (
	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/aquamitra/aquamitra/internal/config"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/aquamitra/aquamitra/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite installs rely on the model definitions.
			if err := conn.AutoMigrate(
				&accountdomain.Account{},
				&employeedomain.Employee{},
				&consumptiondomain.ConsumptionEvent{},
				&complaintdomain.Complaint{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
