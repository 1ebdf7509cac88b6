package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"SwapDesk/internal/classify"
	"SwapDesk/internal/domain/models"
	"SwapDesk/internal/engine"
	"SwapDesk/pkg/cache"
	applogger "SwapDesk/pkg/logger"
	"SwapDesk/pkg/metrics"
)

// SwapQuoter computes contract quotes against the quarterly rate series
// loaded at startup. The series and anchor set never change after
// construction, so quoting is a pure function of the parameters and results
// are memoized per parameter set.
type SwapQuoter struct {
	quarterly models.QuarterlyRateSeries
	anchors   []time.Time
	tenor     models.Tenor

	cache    cache.Service
	cacheTTL time.Duration
	metrics  *metrics.Recorder
	logger   *applogger.Logger
}

// NewSwapQuoter creates a quoter over an immutable quarterly series. cache,
// metrics and logger may be nil.
func NewSwapQuoter(quarterly models.QuarterlyRateSeries, anchors []time.Time, tenor models.Tenor, c cache.Service, cacheTTL time.Duration, m *metrics.Recorder, l *applogger.Logger) *SwapQuoter {
	return &SwapQuoter{
		quarterly: quarterly,
		anchors:   anchors,
		tenor:     tenor,
		cache:     c,
		cacheTTL:  cacheTTL,
		metrics:   m,
		logger:    l,
	}
}

// Anchors returns the valid contract start dates, oldest first.
func (q *SwapQuoter) Anchors() []time.Time {
	out := make([]time.Time, len(q.anchors))
	copy(out, q.anchors)
	return out
}

// Quote validates the contract parameters and computes the windowed quote.
// An empty contract window is a valid result, not an error.
func (q *SwapQuoter) Quote(ctx context.Context, start time.Time, tenureYears int, notional, fixedRatePct, spreadPct float64) (*models.QuoteResult, error) {
	began := time.Now()

	params, err := models.NewContractParameters(start, tenureYears, notional, fixedRatePct, spreadPct, q.anchors)
	if err != nil {
		if q.metrics != nil {
			q.metrics.RecordQuote("invalid")
		}
		return nil, err
	}

	key := cache.GenerateKeyWithParams("quote",
		params.Start.Format(models.DateOnlyLayout),
		params.TenureYears,
		params.Notional,
		params.FixedRatePct,
		params.SpreadPct,
	)
	if cached := q.fromCache(ctx, key); cached != nil {
		if q.metrics != nil {
			q.metrics.RecordCacheHit()
		}
		return cached, nil
	}

	res := engine.Compute(q.quarterly, q.tenor, params)
	result := &models.QuoteResult{
		Contract:   params,
		Rates:      q.quarterly.Window(params.Start, params.End()),
		Cashflows:  res.Window,
		Overlay:    res.Full,
		Classified: classify.Split(res.Window),
	}

	q.toCache(ctx, key, result)

	if q.metrics != nil {
		q.metrics.RecordQuote("ok")
		q.metrics.RecordQuoteDuration(time.Since(began).Seconds())
		q.metrics.RecordWindowSize(len(res.Window))
	}
	if q.logger != nil {
		q.logger.Debug("quote computed",
			applogger.Time("start", params.Start),
			applogger.Int("tenure_years", params.TenureYears),
			applogger.Int("window_quarters", len(res.Window)),
		)
	}
	return result, nil
}

// fromCache returns a memoized result or nil. Cache failures degrade to a
// recompute, never to an error.
func (q *SwapQuoter) fromCache(ctx context.Context, key string) *models.QuoteResult {
	if q.cache == nil {
		return nil
	}

	var raw string
	if err := q.cache.Get(ctx, key, &raw); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) && q.logger != nil {
			q.logger.Warn("quote cache read failed", applogger.Error(err))
		}
		return nil
	}

	var result models.QuoteResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		if q.logger != nil {
			q.logger.Warn("quote cache entry corrupt", applogger.Error(err))
		}
		return nil
	}
	return &result
}

func (q *SwapQuoter) toCache(ctx context.Context, key string, result *models.QuoteResult) {
	if q.cache == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := q.cache.Set(ctx, key, string(raw), q.cacheTTL); err != nil && q.logger != nil {
		q.logger.Warn("quote cache write failed", applogger.Error(err))
	}
}
