package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"venturelink/internal/common"
	"venturelink/internal/config"
)

// Manager fans lifecycle events out to subscribed observers through a worker
// pool. Decisions and message sends publish here, so subscribers see changes
// without polling while the request/response contract stays poll-compatible.
type Manager struct {
	observers    map[string]common.Observer
	eventChannel chan common.Event
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
	logger       *zap.Logger
}

func NewManager(workers, bufferSize int, logger *zap.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.Event, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.processEvents()
	}
	return m
}

func (m *Manager) Subscribe(observer common.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers[observer.Name()] = observer
	m.logger.Info("observer subscribed", zap.String("observer", observer.Name()))
}

func (m *Manager) Unsubscribe(observer common.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, observer.Name())
	m.logger.Info("observer unsubscribed", zap.String("observer", observer.Name()))
}

func (m *Manager) Notify(event common.Event) {
	m.mu.RLock()
	observers := make([]common.Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			m.logger.Warn("observer update failed",
				zap.String("observer", observer.Name()),
				zap.String("event", string(event.Type)),
				zap.Error(err),
			)
		}
	}
}

func (m *Manager) NotifyAsync(event common.Event) {
	select {
	case m.eventChannel <- event:
	case <-m.ctx.Done():
	default:
		m.logger.Warn("event channel full, dropping event", zap.String("event", string(event.Type)))
	}
}

func (m *Manager) processEvents() {
	defer m.wg.Done()
	for {
		select {
		case event := <-m.eventChannel:
			m.Notify(event)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
	m.logger.Info("notify manager shutdown complete")
}

// NewNotifier builds the manager with the default observer set subscribed.
func NewNotifier(cfg *config.Config, repo NotificationRepository, accounts AccountDirectory, logger *zap.Logger) *Manager {
	m := NewManager(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize, logger)
	m.Subscribe(NewDatabaseObserver(repo, accounts))
	m.Subscribe(NewLogObserver(logger))
	return m
}
