package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"attorneycrm/internal/domain"
)

type eventService struct {
	events domain.EventRepository
	now    func() time.Time
}

// NewEventService creates an EventService over the given repository.
func NewEventService(events domain.EventRepository) domain.EventService {
	return &eventService{events: events, now: time.Now}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	// Events dated before today are dropped; undated events stay eligible.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if e.Date == nil || !e.Date.Before(today) {
			upcoming = append(upcoming, e)
		}
	}

	// Soonest first, undated events at the end.
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].Date, upcoming[j].Date
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return upcoming, nil
}
