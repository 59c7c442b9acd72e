package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/alexanderramin/tracker/internal/logfile"
	"github.com/alexanderramin/tracker/internal/timelog"
)

type timeLogService struct {
	store    LogStore
	encoder  *timelog.Encoder
	observer UseCaseObserver
}

func NewTimeLogService(store LogStore, observers ...UseCaseObserver) TimeLogService {
	return &timeLogService{
		store:    store,
		encoder:  timelog.NewEncoder(store),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timeLogService) RecordInterval(ctx context.Context, startMs, endMs uint64) (err error) {
	defer observe(ctx, s.observer, "record-interval", time.Now(), map[string]any{
		"start_ms": startMs,
		"end_ms":   endMs,
	}, &err)

	return s.encoder.AppendInterval(startMs, endMs)
}

func (s *timeLogService) SplitDay(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "split-day", time.Now(), nil, &err)
	return s.encoder.AppendDayMarker()
}

func (s *timeLogService) SplitWeek(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "split-week", time.Now(), nil, &err)
	return s.encoder.AppendWeekMarker()
}

// Report loads the whole log and aggregates it. A log that was never
// written yields the "no time logged" aggregation.
func (s *timeLogService) Report(ctx context.Context) (agg domain.Aggregation, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "report", time.Now(), fields, &err)

	content, err := s.store.ReadAll()
	if err != nil {
		if errors.Is(err, logfile.ErrNoLog) {
			return domain.Aggregation{}, nil
		}
		return domain.Aggregation{}, err
	}
	fields["log_bytes"] = len(content)

	agg, err = timelog.Aggregate(content)
	if err != nil {
		return domain.Aggregation{}, fmt.Errorf("parsing time log: %w", err)
	}
	fields["weeks"] = len(agg.Weeks)
	fields["days"] = agg.DayCount()
	fields["total_ms"] = agg.Total
	return agg, nil
}

func (s *timeLogService) Clear(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "clear-log", time.Now(), nil, &err)
	return s.store.Remove()
}

func (s *timeLogService) Export(ctx context.Context, dest string) (err error) {
	defer observe(ctx, s.observer, "export-log", time.Now(), map[string]any{"dest": dest}, &err)
	return s.store.ExportTo(dest)
}
