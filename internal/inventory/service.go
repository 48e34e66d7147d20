package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GildedTros_Go/internal/aging"
	"github.com/osse101/GildedTros_Go/internal/domain"
	"github.com/osse101/GildedTros_Go/internal/logger"
)

// Recorder receives inventory activity for metrics
type Recorder interface {
	RecordRun(days int)
	RecordAdvance(category string, qualityDelta int)
	RecordViolation(category string)
	SetTracked(n int)
}

// Service owns a collection of items and moves them forward in time.
// It is not safe for concurrent use.
type Service interface {
	Register(ctx context.Context, item *domain.Item) error
	RegisterAll(ctx context.Context, items []*domain.Item) error
	Advance(ctx context.Context, days int) (*Report, error)
	UpdateQuality(ctx context.Context) (*Report, error)
	Revalidate(ctx context.Context) error
	Items() []*domain.Item
	Len() int
}

type service struct {
	dispatcher *aging.Dispatcher
	recorder   Recorder
	tracked    []*aging.Tracked
	seen       map[*domain.Item]struct{}
}

// NewService creates a new inventory service. recorder may be nil.
func NewService(dispatcher *aging.Dispatcher, recorder Recorder) Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &service{
		dispatcher: dispatcher,
		recorder:   recorder,
		seen:       make(map[*domain.Item]struct{}),
	}
}

// Register assigns item to its category and starts tracking it. Items that
// break their category bounds are rejected and not tracked, and so is an item
// that is already on the shelf.
func (s *service) Register(ctx context.Context, item *domain.Item) error {
	log := logger.FromContext(ctx)

	if _, dup := s.seen[item]; dup {
		log.Warn(LogMsgItemRejected, "item", item.Name, "error", ErrMsgAlreadyTracked)
		return fmt.Errorf("%w: item %q %s", domain.ErrInvalidArgument, item.Name, ErrMsgAlreadyTracked)
	}

	tracked, err := s.dispatcher.Assign(item)
	if err != nil {
		if item != nil {
			s.recorder.RecordViolation(s.dispatcher.Categorize(item).String())
			log.Warn(LogMsgItemRejected, "item", item.Name, "quality", item.Quality, "error", err)
		}
		return err
	}

	s.tracked = append(s.tracked, tracked)
	s.seen[item] = struct{}{}
	s.recorder.SetTracked(len(s.tracked))
	log.Debug(LogMsgItemRegistered, "item", item.Name, "category", tracked.Category())
	return nil
}

// RegisterAll registers every item, keeping the valid ones and returning the
// rejections joined together.
func (s *service) RegisterAll(ctx context.Context, items []*domain.Item) error {
	var errs []error
	for i, item := range items {
		if err := s.Register(ctx, item); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Advance ages every tracked item by days, each exactly once
func (s *service) Advance(ctx context.Context, days int) (*Report, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be >= 0, got %d", domain.ErrInvalidArgument, days)
	}

	runID := logger.GenerateRunID()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAdvanceStarting, "days", days, "items", len(s.tracked))

	report := &Report{
		RunID:   runID,
		Days:    days,
		Changes: make([]Change, 0, len(s.tracked)),
	}
	for _, t := range s.tracked {
		before := t.Item().State()
		if err := t.Advance(days); err != nil {
			return report, fmt.Errorf("advance %q: %w", t.Item().Name, err)
		}
		change := Change{
			Name:     t.Item().Name,
			Category: t.Category(),
			Before:   before,
			After:    t.Item().State(),
		}
		report.Changes = append(report.Changes, change)
		s.recorder.RecordAdvance(change.Category.String(), change.QualityDelta())
	}

	s.recorder.RecordRun(days)
	log.Info(LogMsgAdvanceCompleted, "days", days, "items", len(report.Changes))
	return report, nil
}

// UpdateQuality advances the inventory by a single day
func (s *service) UpdateQuality(ctx context.Context) (*Report, error) {
	return s.Advance(ctx, SingleDay)
}

// Revalidate checks every tracked item against its category bounds again
func (s *service) Revalidate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, t := range s.tracked {
		if err := aging.CheckInvariants(t.Item(), t.Category()); err != nil {
			s.recorder.RecordViolation(t.Category().String())
			log.Warn(LogMsgRevalidateFailed, "item", t.Item().Name, "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		log.Debug(LogMsgRevalidateSuccess, "items", len(s.tracked))
	}
	return errors.Join(errs...)
}

// Items returns the tracked items in registration order. The pointers are
// the caller's own items.
func (s *service) Items() []*domain.Item {
	items := make([]*domain.Item, len(s.tracked))
	for i, t := range s.tracked {
		items[i] = t.Item()
	}
	return items
}

// Len returns the number of tracked items
func (s *service) Len() int {
	return len(s.tracked)
}

type noopRecorder struct{}

func (noopRecorder) RecordRun(int) {}
func (noopRecorder) RecordAdvance(string, int) {}
func (noopRecorder) RecordViolation(string) {}
func (noopRecorder) SetTracked(int) {}
