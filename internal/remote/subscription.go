package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// Subscription - открытая подписка на ленту изменений.
// Должна быть закрыта через Close.
type Subscription struct {
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	once      sync.Once
	ready     chan struct{}
	readyOnce sync.Once

	mu  sync.Mutex
	err error
}

// feedItem - элемент очереди применителя: событие ленты или команда перезагрузки
type feedItem struct {
	event  models.ChangeEvent
	resync bool
}

// Subscribe открывает ленту изменений. Слушатель только кладет события в очередь,
// единственная горутина-применитель разбирает очередь по порядку, обновляет Store
// и вызывает onChange (может быть nil).
//
// Коллекция перезагружается каждый раз, когда лента сообщает о готовности:
// при первом подключении и после каждого переподключения. Перезагрузка идет через
// ту же очередь, поэтому события, пришедшие во время загрузки, применяются после нее.
// При обрыве соединения лента переподключается с растущей задержкой.
func (a *Adapter) Subscribe(ctx context.Context, onChange func(models.IncidentChange)) (*Subscription, error) {
	if a.feed == nil {
		return nil, errors.New("remote: change feed is not configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, ready: make(chan struct{})}
	queue := make(chan feedItem, a.queueSize)
	log := a.logger.WithFields(logrus.Fields{
		"component": "remote",
		"method":    "Subscribe",
	})

	enqueue := func(item feedItem) {
		select {
		case queue <- item:
		case <-ctx.Done():
		}
	}

	sub.wg.Add(2)
	go func() {
		defer sub.wg.Done()
		defer close(queue)

		delay := a.retryDelay
		for {
			connected := false
			err := a.feed.Listen(ctx, func() {
				connected = true
				enqueue(feedItem{resync: true})
			}, func(ev models.ChangeEvent) {
				enqueue(feedItem{event: ev})
			})
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				err = errors.New("listener returned without error")
			}
			sub.setErr(fmt.Errorf("remote: change feed failed: %w", err))

			if connected {
				delay = a.retryDelay
			}
			log.WithError(err).WithField("retry_in", delay).Error("Change feed stopped, reconnecting")
			if !sleepCtx(ctx, delay) {
				return
			}
			delay = min(delay*2, a.maxRetryDelay)
		}
	}()

	go func() {
		defer sub.wg.Done()
		for item := range queue {
			if item.resync {
				a.resync(ctx, sub, log)
				continue
			}
			ev := item.event
			change, err := models.EventToChange(ev)
			if err != nil {
				log.WithError(err).WithField("kind", ev.Kind).Warn("Skipping malformed change event")
				continue
			}
			if err := a.store.Apply(change); err != nil {
				log.WithError(err).WithField("incident_id", change.ID).Warn("Failed to apply change event")
				continue
			}
			log.WithFields(logrus.Fields{
				"kind":        change.Kind,
				"incident_id": change.ID,
			}).Debug("Change event applied")
			if onChange != nil {
				onChange(change)
			}
		}
	}()

	a.mu.Lock()
	a.sub = sub
	a.mu.Unlock()

	log.Info("Subscribed to incident change feed")
	return sub, nil
}

// resync перезагружает коллекцию после (пере)подключения ленты
func (a *Adapter) resync(ctx context.Context, sub *Subscription, log *logrus.Entry) {
	incidents, err := a.LoadAll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.WithError(err).Error("Failed to reload incidents after feed connect")
			sub.setErr(err)
		}
		return
	}
	sub.setErr(nil)
	sub.readyOnce.Do(func() { close(sub.ready) })
	log.WithField("count", len(incidents)).Info("Incidents reloaded after feed connect")
}

// FeedErr возвращает текущую ошибку ленты изменений, если подписка открыта
func (a *Adapter) FeedErr() error {
	a.mu.Lock()
	sub := a.sub
	a.mu.Unlock()
	if sub == nil {
		return nil
	}
	return sub.Err()
}

// Ready закрывается после первой успешной загрузки коллекции
func (s *Subscription) Ready() <-chan struct{} {
	return s.ready
}

// Close отменяет подписку и ждет завершения горутин. Повторный вызов безопасен.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}

// Err возвращает последнюю ошибку ленты или перезагрузки.
// Сбрасывается после успешного переподключения.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
