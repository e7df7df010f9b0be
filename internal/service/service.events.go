package service

import (
	"github.com/guitarkeep/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// Events emitted by the service. Every payload is a map[string]string of labels.
const (
	EventStoreUnavailable = "store.unavailable"
	EventStoreFailed      = "store.failed"
	EventCacheDegraded    = "cache.degraded"
)

// OnEvent registers a callback for service events
func (s *Service) OnEvent(event string, handler func(labels map[string]string)) {
	s.events.On(event, "service_handler_"+nuts.NID("h", 8), func(args ...interface{}) {
		if len(args) > 0 {
			if labels, ok := args[0].(map[string]string); ok {
				handler(labels)
			}
		}
	})
}

func (s *Service) emit(event string, labels map[string]string) {
	s.events.Emit(event, labels)
}

func (s *Service) notifyStoreFailure(operation string, err error) {
	event := EventStoreFailed
	if errors.IsUnavailable(err) {
		event = EventStoreUnavailable
	}
	nuts.L.Errorf("[Service] %s failed: %v", operation, err)
	s.emit(event, map[string]string{"operation": operation})
}

func (s *Service) notifyCacheFailure(operation string, err error) {
	nuts.L.Warnf("[Service] Cache unavailable during %s, reading from store: %v", operation, err)
	s.emit(EventCacheDegraded, map[string]string{"operation": operation})
}
