package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/draftline/draftline/pkg/buildinfo"
	"github.com/draftline/draftline/pkg/cache"
	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/layout"
	"github.com/draftline/draftline/pkg/observability"
	"github.com/draftline/draftline/pkg/schema"
	"github.com/draftline/draftline/pkg/source"
	"github.com/draftline/draftline/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete ingest → parse → validate → layout pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ConfigHash: opts.Config.Hash()}

	// Stage 1+2: Ingest and parse
	ingestStart := time.Now()
	rows, header, err := r.ingest(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Header = header
	result.Stats.IngestTime = time.Since(ingestStart)
	result.Stats.RowCount = len(rows)

	if !header.Passed() {
		// Without the required columns no row can parse; fail the run
		// rather than reject every room with the same noise.
		return result, errors.New(errors.ErrCodeInvalidInput,
			"input header is unusable: %s", header.Errors()[0].Message)
	}

	r.Logger.Info("ingested rooms",
		"rows", len(rows),
		"duration", result.Stats.IngestTime)

	// Stage 3: Validate
	validateStart := time.Now()
	observability.Pipeline().OnValidateStart(ctx, len(rows))
	result.Batch = validate.Batch(rows, opts.Config, opts.Strict)
	result.Stats.ValidateTime = time.Since(validateStart)
	observability.Pipeline().OnValidateComplete(ctx,
		result.Batch.Summary.Accepted, result.Batch.Summary.Rejected,
		result.Stats.ValidateTime)

	r.Logger.Info("validated rooms",
		"accepted", result.Batch.Summary.Accepted,
		"rejected", result.Batch.Summary.Rejected,
		"duration", result.Stats.ValidateTime)

	// Stage 4: Layout
	layoutStart := time.Now()
	engine := layout.New(opts.Config, opts.EngineOptions...)
	for _, room := range result.Batch.Accepted() {
		l, hit, err := r.computeWithCacheInfo(ctx, engine, &room, opts)
		if err != nil {
			if demoteContractFailure(&result.Batch, &room, err) {
				r.Logger.Warn("layout rejected room", "room", room.RoomID, "error", err)
				continue
			}
			return nil, err
		}
		if hit {
			result.CacheInfo.LayoutHits++
		} else {
			result.CacheInfo.LayoutMisses++
		}
		result.Layouts = append(result.Layouts, l)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layouts",
		"layouts", len(result.Layouts),
		"cache_hits", result.CacheInfo.LayoutHits,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// demoteContractFailure turns a per-room layout contract error into a batch
// rejection. Any other error is left for the caller to propagate, since it
// signals a run-level problem rather than a bad row.
func demoteContractFailure(batch *validate.BatchResult, room *schema.Room, err error) bool {
	if !errors.Is(err, errors.ErrCodeLayoutContract) {
		return false
	}
	batch.Reject(room.RoomID, schema.FieldRoomID, errors.UserMessage(err))
	return true
}

// ingest reads the input into parsed rows, from a file or inline rows.
func (r *Runner) ingest(ctx context.Context, opts Options) ([]validate.ParsedRow, schema.Result, error) {
	if len(opts.Rows) > 0 {
		var parsed []validate.ParsedRow
		for i, values := range opts.Rows {
			room, res := schema.ParseRow(values, i+1, "")
			parsed = append(parsed, validate.ParsedRow{Room: room, Result: res})
		}
		return parsed, schema.Result{}, nil
	}

	observability.Pipeline().OnIngestStart(ctx, opts.Input)
	start := time.Now()
	table, header, err := source.Read(opts.Input)
	rowCount := 0
	if table != nil {
		rowCount = len(table.Rows)
	}
	observability.Pipeline().OnIngestComplete(ctx, opts.Input, rowCount, time.Since(start), err)
	if err != nil {
		return nil, schema.Result{}, err
	}

	var parsed []validate.ParsedRow
	for _, row := range table.Rows {
		room, res := schema.ParseRow(row.Values, row.Number, table.File)
		parsed = append(parsed, validate.ParsedRow{Room: room, Result: res})
	}
	return parsed, header, nil
}

// computeWithCacheInfo computes one room's layout with caching and reports
// whether the cache served it.
func (r *Runner) computeWithCacheInfo(ctx context.Context, engine *layout.Engine, room *schema.Room, opts Options) (*layout.Layout, bool, error) {
	observability.Pipeline().OnLayoutStart(ctx, room.RoomID)
	start := time.Now()

	roomHash, err := layout.HashRoom(room)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.LayoutKey(opts.Config.Hash(), roomHash, cache.LayoutKeyOpts{
		Version: buildinfo.Version,
	})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := layout.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				observability.Pipeline().OnLayoutComplete(ctx, room.RoomID, time.Since(start), nil)
				return cached, true, nil
			}
			// Corrupt entry - fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := engine.Compute(room)
	observability.Pipeline().OnLayoutComplete(ctx, room.RoomID, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := layout.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil
}
