package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/draftline/draftline/pkg/buildinfo"
	"github.com/draftline/draftline/pkg/config"
	"github.com/draftline/draftline/pkg/errors"
	"github.com/draftline/draftline/pkg/geometry"
	"github.com/draftline/draftline/pkg/schema"
)

// Engine computes layouts from validated rooms. It is stateless apart from
// its configuration and safe for concurrent use. The clock and ID source are
// injectable so callers can pin metadata for reproducible output.
type Engine struct {
	cfg   *config.Config
	now   func() time.Time
	newID func() string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the timestamp source used for layout metadata.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource replaces the run ID generator used for layout metadata.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an Engine for the given configuration.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute produces the layout for one room. The room must already have
// passed validation; Compute re-checks only the structural contracts it
// depends on and fails fast with a LAYOUT_CONTRACT error if the caller
// skipped validation. It never emits partial geometry.
func (e *Engine) Compute(room *schema.Room) (*Layout, error) {
	if err := e.checkContract(room); err != nil {
		return nil, err
	}

	counterHeight := e.cfg.CounterHeight
	if room.CounterHeightIn != nil {
		counterHeight = *room.CounterHeightIn
	}

	l := &Layout{RoomID: room.RoomID}

	// Modules run left to right, starting after the left filler.
	cursor := room.LeftFillerIn
	for i, w := range room.ModuleWidths {
		l.Modules = append(l.Modules, Module{
			Index:    i + 1,
			Rect:     geometry.Rect{X: cursor, Y: 0, Width: w, Height: counterHeight},
			Depth:    e.cfg.BaseDepth,
			Material: room.MaterialCasework,
		})
		cursor += w
	}

	if room.LeftFillerIn > 0 {
		l.Fillers = append(l.Fillers, Filler{
			Side:  SideLeft,
			Rect:  geometry.Rect{X: 0, Y: 0, Width: room.LeftFillerIn, Height: counterHeight},
			Depth: e.cfg.BaseDepth,
		})
	}
	if room.RightFillerIn > 0 {
		l.Fillers = append(l.Fillers, Filler{
			Side:  SideRight,
			Rect:  geometry.Rect{X: cursor, Y: 0, Width: room.RightFillerIn, Height: counterHeight},
			Depth: e.cfg.BaseDepth,
		})
	}

	// The countertop spans the full run of casework below it.
	span := make([]geometry.Rect, 0, len(l.Modules)+len(l.Fillers))
	for _, m := range l.Modules {
		span = append(span, m.Rect)
	}
	for _, f := range l.Fillers {
		span = append(span, f.Rect)
	}
	base := geometry.Union(span)
	l.Countertop = Countertop{
		Rect: geometry.Rect{
			X:      base.X,
			Y:      counterHeight,
			Width:  base.Width,
			Height: e.cfg.CountertopThickness,
		},
		Depth:     e.cfg.BaseDepth,
		Thickness: e.cfg.CountertopThickness,
		Material:  room.MaterialTop,
	}

	l.ADA = e.adaBoxes(base, counterHeight)

	all := append(span, l.Countertop.Rect, l.ADA.Knee.Rect, l.ADA.Toe.Rect)
	l.Bounds = geometry.Union(all)

	meta, err := e.metadata(room)
	if err != nil {
		return nil, err
	}
	l.Metadata = meta
	return l, nil
}

// adaBoxes places the accessibility envelopes declared by the configuration
// profile: the toe clearance sits on the floor across the full run, the knee
// clearance sits on top of it, centered under the counter.
func (e *Engine) adaBoxes(base geometry.Rect, counterHeight float64) *ADABoxes {
	knee := e.cfg.KneeClearance()
	toe := e.cfg.ToeClearance()

	kneeHeight := knee.Height
	if kneeHeight > counterHeight-toe.Height {
		kneeHeight = counterHeight - toe.Height
	}

	return &ADABoxes{
		ClearWidth:    e.cfg.ADA.ClearWidth,
		CounterHeight: counterHeight,
		Toe: ClearanceBox{
			Rect:  geometry.Rect{X: base.X, Y: 0, Width: base.Width, Height: toe.Height},
			Depth: toe.Depth,
		},
		Knee: ClearanceBox{
			Rect: geometry.Rect{
				X:      base.X + (base.Width-knee.Width)/2,
				Y:      toe.Height,
				Width:  knee.Width,
				Height: kneeHeight,
			},
			Depth: knee.Depth,
		},
	}
}

func (e *Engine) checkContract(room *schema.Room) error {
	if room.RoomID == "" {
		return errors.New(errors.ErrCodeLayoutContract, "room has no room_id")
	}
	if len(room.ModuleWidths) == 0 {
		return errors.New(errors.ErrCodeLayoutContract,
			"room %s has no module widths", room.RoomID)
	}
	if room.NumModules != len(room.ModuleWidths) {
		return errors.New(errors.ErrCodeLayoutContract,
			"room %s declares %d modules but has %d widths",
			room.RoomID, room.NumModules, len(room.ModuleWidths))
	}
	delta := geometry.LengthSumDelta(room.ModuleWidths,
		room.LeftFillerIn, room.RightFillerIn, room.TotalLengthIn)
	if delta > e.cfg.Tolerances.LengthSum {
		return errors.New(errors.ErrCodeLayoutContract,
			"room %s widths do not account for total length (off by %v\")",
			room.RoomID, geometry.RoundTo(delta, e.cfg.Tolerances.LengthRounding))
	}
	return nil
}

func (e *Engine) metadata(room *schema.Room) (Metadata, error) {
	inputHash, err := hashRoom(room)
	if err != nil {
		return Metadata{}, errors.Wrap(errors.ErrCodeInternal, err,
			"failed to fingerprint room %s", room.RoomID)
	}
	return Metadata{
		RoomID:      room.RoomID,
		RunID:       e.newID(),
		GeneratedAt: e.now().Format(time.RFC3339),
		ConfigHash:  e.cfg.Hash(),
		InputHash:   inputHash,
		Tolerance:   e.cfg.Tolerances.LengthSum,
		CodeBasis:   e.cfg.CodeBasis,
		Version:     buildinfo.Version,
	}, nil
}

// hashRoom returns a stable fingerprint of a room's specification fields.
// Provenance fields are excluded so the same room hashes the same wherever
// it appeared in the input.
func hashRoom(room *schema.Room) (string, error) {
	clean := *room
	clean.RowNumber = 0
	clean.SourceFile = ""
	data, err := json.Marshal(&clean)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HashRoom is the exported form used by the cache keyer.
func HashRoom(room *schema.Room) (string, error) {
	return hashRoom(room)
}
