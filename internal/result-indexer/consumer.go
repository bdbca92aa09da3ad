package result_indexer

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/event"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	"Endpoint_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type ResultIndexer interface {
	Start()
	Stop()
}

type resultIndexer struct {
	kafkaReader     infra.KafkaReader
	uptimeRepo      repository.UptimeRepository
	logger          *zap.Logger
	retryBackoff    time.Duration
	maxRetryBackoff time.Duration
	storeTimeout    time.Duration
	ctx             context.Context
	cancel          context.CancelFunc
	done            chan struct{}
	mu              sync.Mutex
	started         bool
}

var errMalformedEvent = errors.New("malformed monitoring event")

func (r *resultIndexer) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true
	go func() {
		defer close(r.done)
		for r.ctx.Err() == nil {
			m, err := r.kafkaReader.FetchMessage(r.ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || r.ctx.Err() != nil {
					return
				}
				r.logger.Error("failed to fetch message", zap.Error(fmt.Errorf("resultIndexer.Start: %w", err)))
				continue
			}
			r.handleMessage(m)
		}
	}()
}

// handleMessage commits malformed events right away. An event that fails to
// apply is retried until it succeeds or the indexer stops; offsets are
// committed per partition, so moving on to the next message would commit past it.
func (r *resultIndexer) handleMessage(m kafka.Message) {
	e, err := decodeEvent(m)
	if err != nil {
		r.logger.Warn("skipping undecodable message",
			zap.Error(fmt.Errorf("resultIndexer.handleMessage: %w", err)),
			zap.Int64("offset", m.Offset),
			zap.Int("partition", m.Partition),
		)
		r.commit(m)
		return
	}

	backoff := r.retryBackoff
	for attempt := 1; ; attempt++ {
		err = r.apply(e)
		if err == nil {
			break
		}
		r.logger.Error("failed to apply monitoring event",
			zap.Error(fmt.Errorf("resultIndexer.handleMessage: %w", err)),
			zap.String("type", e.Type),
			zap.String("endpoint_id", e.EndpointID),
			zap.Int("attempt", attempt),
		)
		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, r.maxRetryBackoff)
		case <-r.ctx.Done():
			return
		}
	}
	r.commit(m)
}

func (r *resultIndexer) apply(e event.MonitoringEvent) error {
	ctx, cancel := context.WithTimeout(r.ctx, r.storeTimeout)
	defer cancel()
	switch e.Type {
	case event.TypeResultRecorded:
		return r.uptimeRepo.IndexResult(ctx, model.ResultDocument{
			ResultID:   e.ResultID,
			EndpointID: e.EndpointID,
			URL:        e.URL,
			CheckDate:  *e.CheckDate,
			StatusCode: e.StatusCode,
			Up:         e.Up,
		})
	case event.TypeEndpointDeleted:
		return r.uptimeRepo.DeleteEndpointResults(ctx, e.EndpointID)
	}
	return nil
}

func (r *resultIndexer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.kafkaReader.CommitMessages(ctx, m); err != nil {
		r.logger.Error("failed to commit messages", zap.Error(fmt.Errorf("resultIndexer.commit: %w", err)))
	}
}

func decodeEvent(m kafka.Message) (event.MonitoringEvent, error) {
	var e event.MonitoringEvent
	if m.Value == nil {
		return e, fmt.Errorf("%w: empty value", errMalformedEvent)
	}
	if err := json.Unmarshal(m.Value, &e); err != nil {
		return e, err
	}
	if e.EndpointID == "" {
		return e, fmt.Errorf("%w: missing endpoint id", errMalformedEvent)
	}
	switch e.Type {
	case event.TypeResultRecorded:
		if e.ResultID == "" || e.CheckDate == nil {
			return e, fmt.Errorf("%w: incomplete result", errMalformedEvent)
		}
	case event.TypeEndpointDeleted:
	default:
		return e, fmt.Errorf("%w: unknown type %q", errMalformedEvent, e.Type)
	}
	return e, nil
}

// Stop interrupts a pending fetch or retry and waits for the loop to exit.
func (r *resultIndexer) Stop() {
	r.cancel()
	r.kafkaReader.Close()
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if started {
		<-r.done
	}
}

func NewResultIndexer(reader infra.KafkaReader, uptimeRepo repository.UptimeRepository, logger *zap.Logger, cfg IndexerConfig) ResultIndexer {
	return newResultIndexer(reader, uptimeRepo, logger, cfg)
}

func newResultIndexer(reader infra.KafkaReader, uptimeRepo repository.UptimeRepository, logger *zap.Logger, cfg IndexerConfig) *resultIndexer {
	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}
	maxRetryBackoff := cfg.MaxRetryBackoff
	if maxRetryBackoff < retryBackoff {
		maxRetryBackoff = retryBackoff
	}
	storeTimeout := cfg.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &resultIndexer{
		kafkaReader:     reader,
		uptimeRepo:      uptimeRepo,
		logger:          logger,
		retryBackoff:    retryBackoff,
		maxRetryBackoff: maxRetryBackoff,
		storeTimeout:    storeTimeout,
		ctx:             ctx,
		cancel:          cancel,
		done:            make(chan struct{}),
	}
}
