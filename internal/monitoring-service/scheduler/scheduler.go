package scheduler

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/config"
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EndpointScheduler interface {
	Start()
	Stop()
}

type checkJob struct {
	endpoint model.MonitoredEndpoint
	tickAt   time.Time
	token    string
}

type endpointScheduler struct {
	logger       *zap.Logger
	endpointRepo repository.EndpointRepository
	executor     CheckExecutor
	recorder     OutcomeRecorder
	locker       CheckLocker

	tickPeriod   time.Duration
	storeTimeout time.Duration
	workerCount  int
	now          func() time.Time

	jobs     chan checkJob
	stopChan chan struct{}
	loopDone chan struct{}
	workers  sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc

	mu      sync.Mutex
	started bool
	stopped bool
}

func (s *endpointScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	for i := 0; i < s.workerCount; i++ {
		s.workers.Add(1)
		go s.worker()
	}
	go func() {
		defer close(s.loopDone)
		ticker := time.NewTicker(s.tickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.onTick()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop ends ticking, cancels in-flight checks and waits for the workers.
// Outcomes of cancelled checks are dropped.
func (s *endpointScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true

	close(s.stopChan)
	if s.started {
		<-s.loopDone
	}
	close(s.jobs)
	s.cancel()
	s.workers.Wait()
}

// onTick evaluates every endpoint against the same tick-start time and hands
// due ones to the workers. It never waits on a check.
func (s *endpointScheduler) onTick() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered from panic in scheduler tick", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	now := s.now()
	ctx, cancel := context.WithTimeout(s.ctx, s.storeTimeout)
	defer cancel()

	endpoints, err := s.endpointRepo.ListAllEndpoints(ctx)
	if err != nil {
		s.logger.Error("failed to fetch endpoints", zap.Error(fmt.Errorf("endpointScheduler.onTick: %w", err)))
		return
	}

	for _, endpoint := range endpoints {
		if !IsDue(endpoint.LastCheckDate, endpoint.MonitoringInterval, now) {
			continue
		}
		token, acquired, e := s.locker.Acquire(ctx, endpoint.ID)
		if e != nil {
			s.logger.Warn("failed to claim endpoint check", zap.Error(fmt.Errorf("endpointScheduler.onTick: %w", e)), zap.String("endpoint_id", endpoint.ID))
			continue
		}
		if !acquired {
			s.logger.Debug("endpoint check still in flight", zap.String("endpoint_id", endpoint.ID))
			continue
		}
		select {
		case s.jobs <- checkJob{endpoint: endpoint, tickAt: now, token: token}:
		default:
			s.release(endpoint.ID, token)
			s.logger.Warn("check queue is full, endpoint deferred to next tick", zap.String("endpoint_id", endpoint.ID))
		}
	}
}

func (s *endpointScheduler) worker() {
	defer s.workers.Done()
	for job := range s.jobs {
		s.process(job)
	}
}

func (s *endpointScheduler) process(job checkJob) {
	logger := s.logger.With(
		zap.String("correlation_id", uuid.NewString()),
		zap.String("endpoint_id", job.endpoint.ID),
	)
	defer s.release(job.endpoint.ID, job.token)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered from panic in endpoint check", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	if !s.refresh(logger, job) {
		return
	}
	outcome := s.executor.Execute(s.ctx, job.endpoint.URL)
	if s.ctx.Err() != nil {
		logger.Info("scheduler stopped, check outcome dropped")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
	defer cancel()
	err := s.recorder.Record(ctx, job.endpoint, outcome, job.tickAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrEndpointNotFound) {
			logger.Info("endpoint removed during check, outcome dropped")
			return
		}
		if errors.Is(err, apperrors.ErrStaleCheck) {
			logger.Info("interval already recorded by another run, outcome dropped")
			return
		}
		logger.Error("failed to record check outcome", zap.Error(fmt.Errorf("endpointScheduler.process: %w", err)))
		return
	}
	logger.Debug("endpoint checked", zap.String("url", job.endpoint.URL), zap.Time("checked_at", job.tickAt))
}

// refresh restarts the claim before the request goes out. A job that waited in
// the queue past its claim is dropped, the endpoint may already be claimed again.
func (s *endpointScheduler) refresh(logger *zap.Logger, job checkJob) bool {
	ctx, cancel := context.WithTimeout(s.ctx, s.storeTimeout)
	defer cancel()
	held, err := s.locker.Refresh(ctx, job.endpoint.ID, job.token)
	if err != nil {
		logger.Warn("failed to refresh endpoint claim, check skipped", zap.Error(fmt.Errorf("endpointScheduler.refresh: %w", err)))
		return false
	}
	if !held {
		logger.Info("endpoint claim expired while queued, check skipped")
		return false
	}
	return true
}

func (s *endpointScheduler) release(endpointID string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
	defer cancel()
	if err := s.locker.Release(ctx, endpointID, token); err != nil {
		s.logger.Warn("failed to release endpoint claim", zap.Error(fmt.Errorf("endpointScheduler.release: %w", err)), zap.String("endpoint_id", endpointID))
	}
}

func NewEndpointScheduler(logger *zap.Logger, endpointRepo repository.EndpointRepository, executor CheckExecutor, recorder OutcomeRecorder, locker CheckLocker, cfg config.SchedulerConfig) EndpointScheduler {
	return newEndpointScheduler(logger, endpointRepo, executor, recorder, locker, cfg)
}

func newEndpointScheduler(logger *zap.Logger, endpointRepo repository.EndpointRepository, executor CheckExecutor, recorder OutcomeRecorder, locker CheckLocker, cfg config.SchedulerConfig) *endpointScheduler {
	workerCount := cfg.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}
	tickPeriod := cfg.TickPeriod
	if tickPeriod <= 0 {
		tickPeriod = time.Second
	}
	storeTimeout := cfg.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = workerCount
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &endpointScheduler{
		logger:       logger,
		endpointRepo: endpointRepo,
		executor:     executor,
		recorder:     recorder,
		locker:       locker,
		tickPeriod:   tickPeriod,
		storeTimeout: storeTimeout,
		workerCount:  workerCount,
		now:          time.Now,
		jobs:         make(chan checkJob, queueSize),
		stopChan:     make(chan struct{}),
		loopDone:     make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
	}
}
