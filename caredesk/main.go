package main

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/controllers"
	"caredesk/caredesk/routes"
	"caredesk/caredesk/services/assistant"
	"caredesk/caredesk/sources/psql"
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/storage"
	"caredesk/caredesk/utils/logging"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	doctorDAO := dao.NewDoctorDAO(db.DB)
	patientDAO := dao.NewPatientDAO(db.DB)
	appointmentDAO := dao.NewAppointmentDAO(db.DB)
	taskDAO := dao.NewTaskDAO(db.DB)
	turnDAO := dao.NewSearchTurnDAO(db.DB)

	agent := assistant.NewClient(cfg.AgentURL)

	authCtrl := controllers.NewAuthController(doctorDAO, cfg)
	patientsCtrl := controllers.NewPatientsController(patientDAO)
	appointmentsCtrl := controllers.NewAppointmentsController(appointmentDAO)
	tasksCtrl := controllers.NewTasksController(taskDAO)
	assistantCtrl := controllers.NewAssistantController(doctorDAO, patientDAO, turnDAO, agent)
	healthCtrl := controllers.NewHealthController()

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logging.ErrorLogger.Error("minio connection error", zap.Error(err))
		os.Exit(1)
	}
	documentsCtrl := controllers.NewDocumentsController(store, patientsCtrl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/patients", routes.PatientsRoutes(patientsCtrl, documentsCtrl, cfg))
	r.Mount("/appointments", routes.AppointmentsRoutes(appointmentsCtrl, cfg))
	r.Mount("/tasks", routes.TasksRoutes(tasksCtrl, cfg))
	r.Mount("/assistant", routes.AssistantRoutes(assistantCtrl, cfg))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("caredesk listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
