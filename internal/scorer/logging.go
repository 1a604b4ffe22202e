package scorer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingScorer is a decorator that logs every scoring call with latency
// and outcome.
type LoggingScorer struct {
	inner Scorer
	log   *zap.Logger
}

// WithLogging wraps a Scorer with structured logging.
func WithLogging(s Scorer, log *zap.Logger) Scorer {
	return &LoggingScorer{inner: s, log: log}
}

func (l *LoggingScorer) Score(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Score(ctx, req)
	latency := time.Since(start)

	fields := []zap.Field{
		zap.String("vendor", l.inner.VendorID()),
		zap.String("reference_text", req.ReferenceText),
		zap.Duration("latency", latency),
	}
	if err != nil {
		l.log.Warn("scoring call failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.log.Debug("scoring call succeeded", append(fields,
		zap.Float64("utterance_score", resp.UtteranceScore),
		zap.Int("words", len(resp.Words)),
	)...)
	return resp, nil
}

func (l *LoggingScorer) VendorID() string {
	return l.inner.VendorID()
}
