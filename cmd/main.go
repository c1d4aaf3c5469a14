package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/create_appointment"
	createProviderHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/create_provider"
	createUserHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/create_user"
	deleteProviderHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/delete_provider"
	deleteUserHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/delete_user"
	getAppointmentHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/get_appointment"
	getDaySlotsHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/get_day_slots"
	listAppointmentsHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/list_appointments"
	listProvidersHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/list_providers"
	listUsersHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/login"
	updateProviderHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/update_provider"
	updateStatusHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/update_appointment_status"
	verifyTokenHandler "github.com/m04kA/CMG-AppointmentService/internal/api/handlers/verify_token"
	"github.com/m04kA/CMG-AppointmentService/internal/api/middleware"
	"github.com/m04kA/CMG-AppointmentService/internal/config"
	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
	providerRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/provider"
	userRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/CMG-AppointmentService/internal/integrations/mailer"
	appointmentsService "github.com/m04kA/CMG-AppointmentService/internal/service/appointments"
	authService "github.com/m04kA/CMG-AppointmentService/internal/service/auth"
	providersService "github.com/m04kA/CMG-AppointmentService/internal/service/providers"
	usersService "github.com/m04kA/CMG-AppointmentService/internal/service/users"
	checkAvailabilityUC "github.com/m04kA/CMG-AppointmentService/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/CMG-AppointmentService/internal/usecase/create_appointment"
	getDaySlotsUC "github.com/m04kA/CMG-AppointmentService/internal/usecase/get_day_slots"
	updateStatusUC "github.com/m04kA/CMG-AppointmentService/internal/usecase/update_appointment_status"
	"github.com/m04kA/CMG-AppointmentService/pkg/logger"
	"github.com/m04kA/CMG-AppointmentService/pkg/metrics"
	"github.com/m04kA/CMG-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CMG-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	appointmentRepository := apptRepo.NewRepository(db)
	providerRepository := providerRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Почтовый клиент: заглушка, если уведомления выключены
	var mailClient updateStatusUC.MailClient
	if cfg.Mailer.Enabled {
		mailClient = mailer.NewClient(cfg.Mailer.APIKey, cfg.Mailer.FromEmail, cfg.Mailer.FromName, log)
		log.Info("Mailer enabled (from=%s)", cfg.Mailer.FromEmail)
	} else {
		mailClient = mailer.NewNoopClient(log)
		log.Info("Mailer disabled, patient notifications will be logged only")
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	providersSvc := providersService.NewService(providerRepository, log)
	usersSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentRepository, txManager, log)
	updateStatusUseCase := updateStatusUC.NewUseCase(appointmentRepository, mailClient, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(appointmentRepository, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	login := loginHandler.NewHandler(authSvc, log)
	verifyToken := verifyTokenHandler.NewHandler()
	listProviders := listProvidersHandler.NewHandler(providersSvc, log)
	createProvider := createProviderHandler.NewHandler(providersSvc, log)
	updateProvider := updateProviderHandler.NewHandler(providersSvc, log)
	deleteProvider := deleteProviderHandler.NewHandler(providersSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	createUser := createUserHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (публичная форма записи, без аутентификации)
	// ============================================================

	// Создание заявки на приём
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Справочная проверка доступности слота
	api.HandleFunc("/appointments/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Сетка занятости слотов на день
	api.HandleFunc("/appointments/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Справочник страховых для выпадающего списка формы
	api.HandleFunc("/providers", listProviders.Handle).Methods(http.MethodGet)

	// Вход оператора
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (панель оператора, JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Проверка токена
	protected.HandleFunc("/auth/verify", verifyToken.Handle).Methods(http.MethodGet)

	// --- Записи на приём ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", updateStatus.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (только администратор)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))

	// --- Справочник страховых ---
	admin.HandleFunc("/providers", createProvider.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/providers/{id}", updateProvider.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/providers/{id}", deleteProvider.Handle).Methods(http.MethodDelete)

	// --- Учётные записи операторов ---
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", deleteUser.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
