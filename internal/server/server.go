package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/aquamitra/aquamitra/internal/account"
	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	"github.com/aquamitra/aquamitra/internal/complaint"
	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/aquamitra/aquamitra/internal/config"
	"github.com/aquamitra/aquamitra/internal/consumption"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/internal/dashboard"
	dashboarddomain "github.com/aquamitra/aquamitra/internal/dashboard/domain"
	"github.com/aquamitra/aquamitra/internal/employee"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/aquamitra/aquamitra/internal/observability"
	obsmiddleware "github.com/aquamitra/aquamitra/internal/observability/logger"
	obsmetrics "github.com/aquamitra/aquamitra/internal/observability/metrics"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	account.Module,
	employee.Module,
	consumption.Module,
	complaint.Module,
	dashboard.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	accountSvc     accountdomain.Service
	employeeSvc    employeedomain.Service
	consumptionSvc consumptiondomain.Service
	complaintSvc   complaintdomain.Service
	dashboardSvc   dashboarddomain.Service
	obsMetrics     *obsmetrics.HTTPMetrics
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	AccountSvc     accountdomain.Service
	EmployeeSvc    employeedomain.Service
	ConsumptionSvc consumptiondomain.Service
	ComplaintSvc   complaintdomain.Service
	DashboardSvc   dashboarddomain.Service
	ObsMetrics     *obsmetrics.HTTPMetrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		accountSvc:     p.AccountSvc,
		employeeSvc:    p.EmployeeSvc,
		consumptionSvc: p.ConsumptionSvc,
		complaintSvc:   p.ComplaintSvc,
		dashboardSvc:   p.DashboardSvc,
		obsMetrics:     p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Households --------
	api.POST("/accounts", s.ProvisionAccount)
	api.POST("/users/signup", s.SignupUser)
	api.POST("/users/login", s.LoginUser)

	// -------- Employees --------
	api.POST("/employees", s.ProvisionEmployee)
	api.POST("/employees/signup", s.SignupEmployee)
	api.POST("/employees/login", s.LoginEmployee)

	// -------- Dashboards --------
	api.GET("/dashboard/:accountId", s.GetHouseholdDashboard)
	api.GET("/employee/dashboard/:employeeId", s.GetJurisdictionDashboard)

	// -------- Consumption --------
	api.POST("/consumption", s.IngestConsumption)
	api.GET("/consumption/:accountId", s.ListConsumption)

	// -------- Complaints --------
	api.POST("/complaints", s.CreateComplaint)
	api.GET("/complaints/:accountId", s.ListComplaints)
	api.PATCH("/complaints/:complaintId/status", s.UpdateComplaintStatus)
}
