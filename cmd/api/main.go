package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "foundry-trials-backend/internal/adapter/http"
	mw "foundry-trials-backend/internal/adapter/middleware"
	"foundry-trials-backend/internal/adapter/repository/mysql"
	"foundry-trials-backend/internal/config"
	auditDomain "foundry-trials-backend/internal/domain/audit"
	deptDomain "foundry-trials-backend/internal/domain/department"
	progressDomain "foundry-trials-backend/internal/domain/progress"
	sectionDomain "foundry-trials-backend/internal/domain/section"
	trialDomain "foundry-trials-backend/internal/domain/trial"
	"foundry-trials-backend/internal/infrastructure/cache"
	"foundry-trials-backend/internal/infrastructure/db"
	ucReport "foundry-trials-backend/internal/usecase/report"
	ucTrial "foundry-trials-backend/internal/usecase/trial"
	"foundry-trials-backend/internal/usecase/workflow"
	"foundry-trials-backend/pkg/logger"
)

func migrate(gdb *gorm.DB) error {
	models := []any{
		&deptDomain.Department{},
		&trialDomain.Trial{},
		&trialDomain.PartCounter{},
		&progressDomain.Record{},
		&auditDomain.Entry{},
	}
	models = append(models, sectionDomain.Models()...)
	return gdb.AutoMigrate(models...)
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zl.Fatal("mysql connect failed", "error", err)
	}
	if err := migrate(gdb); err != nil {
		zl.Fatal("migration failed", "error", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect failed", "error", err)
	}

	// repositories
	trialRepo := mysql.NewTrialRepository(gdb)
	deptRepo := mysql.NewDepartmentRepository(gdb)
	progressRepo := mysql.NewProgressRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	sectionRepo := mysql.NewSectionRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := deptRepo.Seed(ctx); err != nil {
			zl.Fatal("department seed failed", "error", err)
		}
	}

	// usecases
	trialUC := ucTrial.NewUsecase(trialRepo, txm, zl)
	workflowUC := workflow.NewUsecase(
		deptRepo, progressRepo, auditRepo, trialRepo,
		workflow.DepartmentMatch(), txm, zl)
	reportUC := ucReport.NewUsecase(trialRepo, progressRepo, sectionRepo, deptRepo, zl)

	// handlers
	h := httpadp.NewHandler()
	th := httpadp.NewTrialHandler(trialUC)
	wh := httpadp.NewWorkflowHandler(workflowUC)
	rh := httpadp.NewReportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)
	e.GET("/departments", wh.ListDepartments)
	e.GET("/trials", th.ListTrials)
	e.GET("/trials/deleted", th.ListDeletedTrials)
	e.GET("/trials/closed", wh.ListClosedTrials)
	e.GET("/trials/:trial_id", th.GetTrial)
	e.GET("/trials/:trial_id/report", rh.FullReport)
	e.GET("/trials/:trial_id/audit", wh.Trail)
	e.GET("/progress/pending", wh.ListPending)
	e.GET("/departments/:department/completed", wh.ListCompleted)

	// mutating routes sit behind the idempotency guard
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, zl)
	m := e.Group("", idemp)
	m.POST("/trials", th.CreateTrial)
	m.DELETE("/trials/:trial_id", th.SoftDeleteTrial)
	m.POST("/trials/:trial_id/restore", th.RestoreTrial)
	m.DELETE("/trials/:trial_id/permanent", th.PermanentDeleteTrial)
	m.POST("/trials/:trial_id/sections/:department", wh.SubmitSection)
	m.POST("/trials/:trial_id/departments/:department/approve", wh.Approve)
	m.POST("/trials/:trial_id/departments/:department/reject", wh.Reject)

	addr := ":" + cfg.AppPort
	zl.Info("listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		zl.Fatal("server stopped", "error", err)
	}
}
