package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tennis-cup/metrics"
	"github.com/Dosada05/tennis-cup/services"
)

// Sink is a named destination for committed tournament events.
type Sink struct {
	Name      string
	Publisher services.Publisher
}

// Fanout delivers each event to every sink. A failing sink does not stop
// delivery to the others; the failures are joined into the returned error.
type Fanout struct {
	sinks   []Sink
	metrics metrics.Metrics
	logger  *slog.Logger
}

var _ services.Publisher = (*Fanout)(nil)

func NewFanout(m metrics.Metrics, logger *slog.Logger, sinks ...Sink) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewMock()
	}
	return &Fanout{sinks: sinks, metrics: m, logger: logger}
}

func (f *Fanout) Add(sink Sink) {
	f.sinks = append(f.sinks, sink)
}

func (f *Fanout) Publish(ctx context.Context, event services.TournamentEvent) error {
	var errs []error
	for _, sink := range f.sinks {
		if err := sink.Publisher.Publish(ctx, event); err != nil {
			f.metrics.IncPublishFailed(sink.Name)
			f.logger.Warn("sink rejected tournament event",
				slog.String("sink", sink.Name),
				slog.String("tournament", event.Key),
				slog.String("event", string(event.Type)),
				slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name, err))
		}
	}
	return errors.Join(errs...)
}
