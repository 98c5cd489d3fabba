package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "gatepass-backend/internal/adapter/http"
	mw "gatepass-backend/internal/adapter/middleware"
	"gatepass-backend/internal/adapter/repository/mysql"
	"gatepass-backend/internal/config"
	"gatepass-backend/internal/domain/applicant"
	"gatepass-backend/internal/domain/pass"
	"gatepass-backend/internal/domain/role"
	"gatepass-backend/internal/domain/settings"
	"gatepass-backend/internal/infrastructure/cache"
	"gatepass-backend/internal/infrastructure/db"
	"gatepass-backend/internal/infrastructure/identity"
	"gatepass-backend/internal/infrastructure/mail"
	"gatepass-backend/internal/pkg/authtoken"
	"gatepass-backend/internal/pkg/logger"
	"gatepass-backend/internal/scheduler"
	"gatepass-backend/internal/seed"
	applicantuc "gatepass-backend/internal/usecase/applicant"
	"gatepass-backend/internal/usecase/approval"
	"gatepass-backend/internal/usecase/auth"
	"gatepass-backend/internal/usecase/jumma"
	passuc "gatepass-backend/internal/usecase/pass"
	"gatepass-backend/internal/usecase/roles"
	"gatepass-backend/internal/usecase/sysconfig"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zl.Fatal().Err(err).Msg("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&pass.Pass{},
		&applicant.Student{},
		&applicant.Faculty{},
		&applicant.Admin{},
		&role.Role{},
		&settings.Settings{},
		&identity.Credential{},
	); err != nil {
		zl.Fatal().Err(err).Msg("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zl.Fatal().Err(err).Msg("redis connect failed")
	}

	loc := cfg.Location()

	passRepo := mysql.NewPassRepository(gdb)
	applicantRepo := mysql.NewApplicantRepository(gdb)
	roleRepo := mysql.NewRoleRepository(gdb)
	settingsRepo := mysql.NewSettingsRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	idp := identity.NewGormProvider(gdb)
	tokens := authtoken.New(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour, "gatepass")

	smtpPort, _ := strconv.Atoi(cfg.SMTPPort)
	mailer := mail.NewMailer(mail.SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      smtpPort,
		Username:  cfg.SMTPUser,
		Password:  cfg.SMTPPass,
		FromName:  "Gate Pass Office",
		FromEmail: cfg.SMTPFrom,
	}, zl)

	registry := roles.NewRegistry(roleRepo, applicantRepo)
	roleAdmin := roles.NewAdmin(roleRepo)
	passUC := passuc.NewUsecase(passRepo, applicantRepo, settingsRepo, registry, loc, zl)
	approvalUC := approval.NewUsecase(uow, registry, mailer, zl)
	jummaUC := jumma.NewUsecase(passRepo, applicantRepo, settingsRepo, loc, zl)
	authUC := auth.NewUsecase(idp, applicantRepo)
	applicantUC := applicantuc.NewUsecase(applicantRepo, roleRepo, idp, mailer, zl)
	settingsUC := sysconfig.NewUsecase(settingsRepo)

	ctx := context.Background()
	if err := seed.Ensure(ctx, settingsRepo, applicantRepo, idp, seed.AdminAccount{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	}, zl); err != nil {
		zl.Fatal().Err(err).Msg("bootstrap failed")
	}

	sched := scheduler.New(loc, zl)
	if err := registerJummaJob(ctx, sched, settingsRepo, jummaUC, time.Weekday(cfg.JummaWeekday), zl); err != nil {
		zl.Fatal().Err(err).Msg("jumma schedule failed")
	}
	sched.Start()

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC, tokens)
	passH := httpadp.NewPassHandler(passUC)
	approvalH := httpadp.NewApprovalHandler(approvalUC)
	jummaH := httpadp.NewJummaHandler(jummaUC)
	settingsH := httpadp.NewSettingsHandler(settingsUC)
	roleH := httpadp.NewRoleHandler(roleAdmin)
	applicantH := httpadp.NewApplicantHandler(applicantUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/auth/login", authH.Login)

	api := e.Group("", mw.RequireAuth(tokens))
	api.POST("/passes", passH.Submit, idem)
	api.GET("/passes", passH.History)
	api.GET("/passes/:pass_id", passH.Get)

	fac := api.Group("", mw.RequireRole("faculty"))
	fac.GET("/approvals/pending", passH.PendingInbox)
	fac.POST("/passes/:pass_id/decision", approvalH.Decide, idem)

	api.POST("/jumma/run", jummaH.Run, mw.RequireRole("admin"), idem)

	adm := api.Group("/admin", mw.RequireRole("admin"))
	adm.GET("/passes", passH.Overview)
	adm.GET("/settings", settingsH.Get)
	adm.PUT("/settings", settingsH.Update)
	adm.GET("/roles", roleH.List)
	adm.POST("/roles", roleH.Create, idem)
	adm.PUT("/roles/:role_id", roleH.Update)
	adm.GET("/students", applicantH.ListStudents)
	adm.POST("/students", applicantH.CreateStudent, idem)
	adm.PUT("/students/:applicant_id", applicantH.UpdateStudent)
	adm.DELETE("/students/:applicant_id", applicantH.DeleteStudent)
	adm.GET("/faculty", applicantH.ListFaculty)
	adm.POST("/faculty", applicantH.CreateFaculty, idem)
	adm.PUT("/faculty/:applicant_id", applicantH.UpdateFaculty)
	adm.DELETE("/faculty/:applicant_id", applicantH.DeleteFaculty)
	adm.POST("/:kind/:applicant_id/reset-password", applicantH.ResetPassword)

	go func() {
		addr := ":" + cfg.AppPort
		zl.Info().Str("addr", addr).Msg("listening")
		if err := e.Start(addr); err != nil {
			zl.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sched.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("shutdown")
	}
}

// registerJummaJob schedules the weekly batch at the time configured in
// settings. Settings are seeded before this runs, so Ensure never
// creates here in practice.
func registerJummaJob(ctx context.Context, sched *scheduler.Scheduler, st settings.Repository, uc *jumma.Usecase, day time.Weekday, zl zerolog.Logger) error {
	s, err := st.Ensure(ctx)
	if err != nil {
		return err
	}
	at, err := time.Parse("15:04", s.JummaPassStartTime)
	if err != nil {
		return err
	}
	return sched.RegisterWeekly("jumma", day, at.Hour(), at.Minute(), func(jobCtx context.Context) {
		rep := uc.Run(jobCtx)
		zl.Info().
			Str("status", rep.Status).
			Int("generated", rep.Generated).
			Int("failed", rep.Failed).
			Msg("jumma batch finished")
	})
}
