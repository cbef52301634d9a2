package indicator

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/RBM-ScheduleService/internal/domain"
	"github.com/m04kA/RBM-ScheduleService/pkg/types"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service сервис линии текущего времени.
// Держит свежий снимок "сейчас", пересчитываемый тикером, и отвечает
// на вопрос: видна ли линия на просматриваемой дате и на какой высоте.
type Service struct {
	axis         domain.Axis
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu  sync.RWMutex
	now time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService создает сервис индикатора с заданным интервалом обновления
func NewService(axis domain.Axis, refreshInterval time.Duration, logger Logger) *Service {
	if refreshInterval <= 0 {
		refreshInterval = time.Duration(domain.DefaultIndicatorRefreshSeconds) * time.Second
	}
	s := &Service{
		axis:         axis,
		interval:     refreshInterval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
	s.now = s.timeProvider.Now()
	return s
}

// WithTimeProvider подменяет источник времени. Используется в тестах.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	s.mu.Lock()
	s.now = tp.Now()
	s.mu.Unlock()
	return s
}

// Start запускает горутину, пересчитывающую снимок времени каждый interval.
// Пересчет безусловный: дешевле тикать раз в interval, чем следить,
// смотрит ли кто-то на сегодняшний день.
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("indicator: started with refresh interval %s", s.interval)

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("indicator: stopped")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.now = s.timeProvider.Now()
				s.mu.Unlock()
			}
		}
	}()
}

// Stop останавливает тикер и дожидается завершения горутины
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// StateFor возвращает состояние линии для просматриваемой даты.
// Линия скрыта, если дата не сегодняшняя или текущий час вне
// [StartHour, EndHour): ровно в EndHour:00 линия уже не видна.
// Видимая линия стоит на координате текущего времени без доп. смещения.
func (s *Service) StateFor(viewedDate time.Time) (visible bool, top float64) {
	s.mu.RLock()
	now := s.now
	s.mu.RUnlock()

	if !isSameDay(viewedDate, now) {
		return false, 0
	}
	if !s.axis.ContainsHour(now.Hour()) {
		return false, 0
	}

	return true, s.axis.PositionOf(types.NewTimeString(now))
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
