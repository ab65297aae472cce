package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/dfcastro/commission-tracker-api/internal/config"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/reporting"
	"github.com/dfcastro/commission-tracker-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MonthlyReportSyncConfig representa a configuração da cron de fechamento mensal
type MonthlyReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// MonthlyReportSyncService persiste os snapshots de comissão de cada
// vendedor no fechamento do mês. Roda no início do mês seguinte e pode
// refazer meses anteriores via MonthLookBack.
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	reportService       reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time

	// relógio injetável para fixar a data de referência em testes
	now func() time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de fechamento mensal
func NewMonthlyReportSyncService(
	reportService reporting.Reporter,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule:  appConfig.MonthlyReportSync.CronSchedule,
		SyncEnabled:   appConfig.MonthlyReportSync.Enabled,
		MonthLookBack: appConfig.MonthlyReportSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookBack,
	}).Info("Configuração da cron de fechamento mensal carregada")

	return &MonthlyReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		reportService: reportService,
		syncRunning:   false,
		now:           time.Now,
	}
}

// WithClock substitui o relógio do serviço. Usado em testes.
func (s *MonthlyReportSyncService) WithClock(now func() time.Time) *MonthlyReportSyncService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal de comissões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fechamento mensal de comissões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal de comissões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fechamento mensal de comissões")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports fecha os últimos MonthLookBack meses, do mais recente
// para o mais antigo. Reexecuções sobrescrevem snapshots existentes.
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	lookBack := s.config.MonthLookBack
	if lookBack < 1 {
		lookBack = 1
	}

	totalSynced := 0
	ref := s.now()
	for i := 1; i <= lookBack; i++ {
		// Recuar pelo dia evita a normalização do AddDate em fins de mês
		month, year := utils.PreviousMonth(ref)
		ref = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, ref.Location())

		logrus.WithFields(logrus.Fields{
			"month": month,
			"year":  year,
		}).Info("Fechando relatórios de comissão do período")

		synced, err := s.reportService.SyncMonthlyReports(month, year)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"month": month,
				"year":  year,
			}).Error("Erro ao fechar relatórios de comissão do período")
			continue
		}

		totalSynced += synced
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"synced":   totalSynced,
	}).Info("Fechamento mensal de comissões concluído")
}

// TriggerManualSync inicia manualmente um fechamento mensal
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento manual de comissões")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual do fechamento
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
