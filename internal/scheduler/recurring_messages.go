package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/infrastructure/integrator/whatsapp"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/config"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/recurring"
	"github.com/dfcastro/commission-tracker-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// RecurringDispatchConfig representa a configuração do despachante de mensagens recorrentes
type RecurringDispatchConfig struct {
	CronSchedule    string
	DispatchEnabled bool
	SendBatch       int
}

// RecurringDispatchService varre os agendamentos ativos, enfileira as
// mensagens devidas e drena a fila de saída via WhatsApp. O enfileiramento
// e a marcação de execução do agendamento acontecem na mesma transação.
type RecurringDispatchService struct {
	scheduler          *gocron.Scheduler
	config             RecurringDispatchConfig
	conn               postgres.Conn
	scheduleRepo       repository.ScheduleRepository
	messageRepo        repository.MessageRepository
	whatsappService    whatsapp.WhatsAppIntegrator
	dispatchRunning    bool
	dispatchMutex      sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time

	// relógio injetável para fixar a data de referência em testes
	now func() time.Time
}

// NewRecurringDispatchService cria uma nova instância do despachante de mensagens recorrentes
func NewRecurringDispatchService(
	conn postgres.Conn,
	scheduleRepo repository.ScheduleRepository,
	messageRepo repository.MessageRepository,
	whatsappService whatsapp.WhatsAppIntegrator,
	appConfig *config.Config,
) *RecurringDispatchService {
	dispatchConfig := RecurringDispatchConfig{
		CronSchedule:    appConfig.RecurringDispatch.CronSchedule,
		DispatchEnabled: appConfig.RecurringDispatch.Enabled,
		SendBatch:       appConfig.RecurringDispatch.SendBatch,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    dispatchConfig.CronSchedule,
		"dispatch_enabled": dispatchConfig.DispatchEnabled,
		"send_batch":       dispatchConfig.SendBatch,
	}).Info("Configuração do despachante de mensagens recorrentes carregada")

	return &RecurringDispatchService{
		scheduler:       scheduler,
		config:          dispatchConfig,
		conn:            conn,
		scheduleRepo:    scheduleRepo,
		messageRepo:     messageRepo,
		whatsappService: whatsappService,
		dispatchRunning: false,
		now:             time.Now,
	}
}

// WithClock substitui o relógio do serviço. Usado em testes.
func (s *RecurringDispatchService) WithClock(now func() time.Time) *RecurringDispatchService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *RecurringDispatchService) Start(ctx context.Context) error {
	if !s.config.DispatchEnabled {
		logrus.Info("Despacho de mensagens recorrentes desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando despachante de mensagens recorrentes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDispatchCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar despacho de mensagens recorrentes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando despachante de mensagens recorrentes")
		s.scheduler.Stop()
	}()

	return nil
}

// runDispatchCycle executa um ciclo completo: enfileira as ocorrências
// devidas e depois drena a fila de pendentes.
func (s *RecurringDispatchService) runDispatchCycle(ctx context.Context) {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Ciclo de despacho já em andamento, ignorando")
		return
	}
	s.dispatchRunning = true
	s.dispatchMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.dispatchMutex.Lock()
		s.dispatchRunning = false
		s.dispatchMutex.Unlock()
	}()

	enqueued := s.enqueueDueSchedules(ctx)
	sent, failed := s.drainPendingMessages()

	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"enqueued": enqueued,
		"sent":     sent,
		"failed":   failed,
	}).Info("Ciclo de despacho de mensagens recorrentes concluído")
}

// enqueueDueSchedules avalia cada agendamento ativo contra o relógio de
// referência e enfileira as ocorrências devidas. Cada ocorrência enfileira
// a mensagem e marca o agendamento como executado em uma única transação.
func (s *RecurringDispatchService) enqueueDueSchedules(ctx context.Context) int {
	schedules, err := s.scheduleRepo.ListActiveSchedules()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar agendamentos ativos")
		return 0
	}

	if len(schedules) == 0 {
		return 0
	}

	now := s.now()
	today := utils.TruncateToDay(now)

	enqueued := 0
	for _, schedule := range schedules {
		due, err := recurring.IsDue(schedule, today, now)
		if err != nil {
			var invalidErr *recurring.InvalidScheduleError
			if errors.As(err, &invalidErr) {
				logrus.WithFields(logrus.Fields{
					"schedule_id": invalidErr.ScheduleID,
					"recurrence":  invalidErr.RecurrenceType,
				}).Error("Agendamento com cadência inválida, pulando")
				continue
			}

			logrus.WithError(err).WithField("schedule_id", schedule.ID).Error("Erro ao avaliar agendamento")
			continue
		}

		if !due {
			continue
		}

		if err := s.dispatchOccurrence(ctx, schedule, today); err != nil {
			logrus.WithError(err).WithField("schedule_id", schedule.ID).Error("Erro ao enfileirar ocorrência do agendamento")
			continue
		}

		enqueued++
	}

	return enqueued
}

// dispatchOccurrence enfileira a mensagem da ocorrência e aplica o novo
// estado do agendamento. Se a chave de idempotência acusar duplicidade, a
// mensagem é pulada mas o agendamento ainda é marcado como executado, para
// realinhar a guarda diária com a fila.
func (s *RecurringDispatchService) dispatchOccurrence(ctx context.Context, schedule *domain.RecurringSchedule, today time.Time) error {
	next, err := recurring.NextExecutionDate(schedule, today)
	if err != nil {
		return err
	}

	execution := repository.ScheduleExecution{
		ScheduleID:        schedule.ID,
		ExecutionDate:     today,
		NextExecutionDate: next,
		StillActive:       stillActiveAfter(schedule, next),
	}

	reference, err := utils.GenerateID()
	if err != nil {
		return err
	}

	message := &domain.OutboundMessage{
		ScheduleID:     &schedule.ID,
		Reference:      reference,
		IdempotencyKey: fmt.Sprintf("%d:%s", schedule.ID, today.Format(time.DateOnly)),
		TargetPhone:    schedule.TargetPhone,
		Body:           schedule.MessageTemplate,
		Status:         domain.MessageStatusPending,
	}

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.messageRepo.EnqueueTx(tx, message); err != nil {
			if errors.Is(err, repository.ErrDuplicateMessage) {
				logrus.WithFields(logrus.Fields{
					"schedule_id":     schedule.ID,
					"idempotency_key": message.IdempotencyKey,
				}).Info("Ocorrência já enfileirada, realinhando estado do agendamento")
			} else {
				return err
			}
		}

		return s.scheduleRepo.MarkExecutedTx(tx, execution)
	})
}

// stillActiveAfter decide se o agendamento continua ativo após a execução
// de hoje: desliga quando o limite de execuções é atingido ou quando a
// próxima data projetada já passa da data final.
func stillActiveAfter(schedule *domain.RecurringSchedule, next time.Time) bool {
	if schedule.MaxExecutions != nil && schedule.TotalExecutions+1 >= *schedule.MaxExecutions {
		return false
	}

	if schedule.EndDate != nil && next.After(*schedule.EndDate) {
		return false
	}

	return true
}

// drainPendingMessages envia as mensagens pendentes em lote. Falha de envio
// marca a mensagem como failed com o erro; falha ao marcar como enviada
// depois de um envio bem-sucedido é logada como risco de duplicidade.
func (s *RecurringDispatchService) drainPendingMessages() (sent, failed int) {
	messages, err := s.messageRepo.ListPending(s.config.SendBatch)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar mensagens pendentes")
		return 0, 0
	}

	for _, message := range messages {
		if err := s.whatsappService.SendTextMessage(message.TargetPhone, message.Body); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"message_id": message.ID,
				"reference":  message.Reference,
			}).Warn("Falha ao enviar mensagem via WhatsApp")

			if markErr := s.messageRepo.MarkFailed(message.ID, err.Error()); markErr != nil {
				logrus.WithError(markErr).WithField("message_id", message.ID).Error("Erro ao marcar mensagem como falhada")
			}

			failed++
			continue
		}

		if err := s.messageRepo.MarkSent(message.ID, time.Now()); err != nil {
			// A mensagem saiu mas continua pendente no banco: o próximo ciclo
			// pode reenviá-la. Logar alto para investigação manual.
			logrus.WithError(err).WithField("message_id", message.ID).Error("Mensagem enviada mas não marcada como enviada, risco de duplicidade")
		}

		sent++
	}

	return sent, failed
}

// TriggerManualDispatch inicia manualmente um ciclo de despacho
func (s *RecurringDispatchService) TriggerManualDispatch() {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Ciclo de despacho já em andamento, ignorando solicitação manual")
		return
	}
	s.dispatchMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de despacho de mensagens recorrentes")
	go s.runDispatchCycle(context.Background())
}

// GetStatus retorna o status atual do despachante
func (s *RecurringDispatchService) GetStatus() map[string]any {
	s.dispatchMutex.Lock()
	defer s.dispatchMutex.Unlock()

	return map[string]any{
		"dispatch_running":      s.dispatchRunning,
		"dispatch_cron":         s.config.CronSchedule,
		"dispatch_enabled":      s.config.DispatchEnabled,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
