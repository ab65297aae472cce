package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/infrastructure/integrator/whatsapp"
	"github.com/dfcastro/commission-tracker-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/api"
	"github.com/dfcastro/commission-tracker-api/internal/config"
	"github.com/dfcastro/commission-tracker-api/internal/scheduler"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/authenticating"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/goaling"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/reporting"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/scheduling"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	scheduleRepo := repository.NewScheduleRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)
	reportRepo := repository.NewCommissionReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	sellingService := selling.NewService(saleRepo, userRepo)
	goalingService := goaling.NewService(goalRepo, userRepo)
	reportingService := reporting.NewService(userRepo, saleRepo, goalRepo, reportRepo)
	schedulingService := scheduling.NewService(scheduleRepo, messageRepo)

	whatsappClient := whatsappclient.NewClient(cfg)
	whatsappIntegrator := whatsapp.New(cfg, whatsappClient)

	// Agendadores: disparo de mensagens recorrentes e fechamento mensal
	recurringDispatchService := scheduler.NewRecurringDispatchService(
		pgConn,
		scheduleRepo,
		messageRepo,
		whatsappIntegrator,
		cfg,
	)

	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(
		reportingService,
		cfg,
	)

	if err := recurringDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o despachante de mensagens recorrentes")
	} else {
		logrus.Info("Despachante de mensagens recorrentes iniciado com sucesso")
	}

	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento mensal")
	} else {
		logrus.Info("Agendador de fechamento mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sellingService,
		goalingService,
		reportingService,
		schedulingService,
		recurringDispatchService,
		monthlyReportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
