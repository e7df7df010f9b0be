package service

import (
	"context"
	"time"

	"github.com/guitarkeep/hub/internal/cache"
	"github.com/guitarkeep/hub/internal/category"
	"github.com/guitarkeep/hub/internal/errors"
	"github.com/guitarkeep/hub/internal/repository"
	"github.com/guitarkeep/hub/internal/tip"
	nuts "github.com/vaudience/go-nuts"
)

// Recorder receives per-operation measurements
type Recorder interface {
	ObserveQuery(operation string, started time.Time, err error)
	RecordTip(dataType, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveQuery(string, time.Time, error) {}
func (noopRecorder) RecordTip(string, string)              {}

// Service answers reading queries: it resolves categories, reads the row
// store and assembles entries with their tips.
type Service struct {
	readings   repository.ReadingRepository
	categories *category.Set
	classifier *tip.Classifier
	cache      cache.Cache
	recorder   Recorder
	events     *nuts.EventEmitter
}

// Option customizes a Service
type Option func(*Service)

// WithCache enables response caching
func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithRecorder sets the metrics sink
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New creates a new service instance
func New(
	readings repository.ReadingRepository,
	categories *category.Set,
	classifier *tip.Classifier,
	opts ...Option,
) *Service {
	s := &Service{
		readings:   readings,
		categories: categories,
		classifier: classifier,
		cache:      cache.Noop{},
		recorder:   noopRecorder{},
		events:     nuts.NewEventEmitter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.readings == nil {
		return ErrMissingDependency("readings repository")
	}
	if s.categories == nil || s.categories.Rooms == nil || s.categories.Data == nil {
		return ErrMissingDependency("category registry")
	}
	if s.classifier == nil {
		return ErrMissingDependency("classifier")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

// Health checks that the row store answers
func (s *Service) Health(ctx context.Context) error {
	started := time.Now()
	err := s.readings.Ping(ctx)
	s.recorder.ObserveQuery(opHealth, started, err)
	if err != nil {
		s.notifyStoreFailure(opHealth, err)
	}
	return err
}
