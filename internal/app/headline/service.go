package headline

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/headliner/internal/compose"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/fonts"
	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/paint"
	"github.com/alexisbeaulieu97/headliner/internal/store"
	"github.com/alexisbeaulieu97/headliner/internal/wordspec"
)

// Frame is the render output derived from one settings revision.
type Frame struct {
	Revision   uint64
	Settings   headline.HeadlineSettings
	FontString string
	Segments   []compose.Segment
	Paint      paint.Descriptor
	Motion     compose.Motion
	// PaintErr is set when the paint could not be resolved; Paint is zero then.
	PaintErr error
}

// Options configures a Service.
type Options struct {
	Initial    headline.HeadlineSettings
	Fonts      fonts.Table
	IDs        headline.IDGenerator
	ExportPath string
	Logger     *logger.Logger
}

// Service coordinates the settings store with composition, paint resolution
// and export. Each mutation replaces the stored value wholesale and the
// frame is recomputed before the mutation returns.
type Service struct {
	store      *store.Store
	fonts      fonts.Table
	ids        headline.IDGenerator
	exportPath string
	log        *logger.Logger

	mu    sync.RWMutex
	frame Frame
}

// NewService constructs a service seeded with opts.Initial.
func NewService(opts Options) *Service {
	table := opts.Fonts
	if table == nil {
		table = fonts.Default()
	}
	ids := opts.IDs
	if ids == nil {
		ids = headline.DefaultIDs
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Service{
		store:      store.New(opts.Initial),
		fonts:      table,
		ids:        ids,
		exportPath: opts.ExportPath,
		log:        log.With("component", "headline"),
	}
	s.recompose(s.store.Get(), 0)
	s.store.Subscribe(s.recompose)

	return s
}

// Settings returns the current settings value.
func (s *Service) Settings() headline.HeadlineSettings {
	return s.store.Get()
}

// Fonts returns the font table the service resolves against.
func (s *Service) Fonts() fonts.Table {
	return s.fonts
}

// ExportPath returns the configured export destination.
func (s *Service) ExportPath() string {
	return s.exportPath
}

// Frame returns the render output for the current revision.
func (s *Service) Frame() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frame
}

// Replace installs next wholesale.
func (s *Service) Replace(next headline.HeadlineSettings) {
	s.store.Replace(next)
}

// SetText replaces the headline text.
func (s *Service) SetText(text string) {
	s.store.Replace(s.store.Get().WithText(text))
}

// SetFontSizeInput applies raw font-size input. Invalid input keeps the
// previous size; the returned error is informational only.
func (s *Service) SetFontSizeInput(input string) error {
	err := s.store.Update(func(cur headline.HeadlineSettings) (headline.HeadlineSettings, error) {
		return cur.WithFontSizeInput(input)
	})
	if err != nil {
		s.log.WithFields(map[string]any{"input": input, "kept": s.store.Get().FontSize}).Debug("font size input rejected")
	}
	return err
}

// SetFontFamily selects a font-family key; keys missing from the table are refused.
func (s *Service) SetFontFamily(key string) error {
	if !s.fonts.Has(key) {
		return headline.NewUnknownFontFamilyError(key)
	}
	s.store.Replace(s.store.Get().WithFontFamily(key))
	return nil
}

// SetFontWeight selects one of headline.FontWeights.
func (s *Service) SetFontWeight(weight int) error {
	return s.store.Update(func(cur headline.HeadlineSettings) (headline.HeadlineSettings, error) {
		return cur.WithFontWeight(weight)
	})
}

// SetTextColor replaces the solid text color.
func (s *Service) SetTextColor(color string) {
	s.store.Replace(s.store.Get().WithTextColor(color))
}

// SetGradient toggles gradient painting.
func (s *Service) SetGradient(enabled bool) {
	s.store.Replace(s.store.Get().WithGradient(enabled))
}

// SetGradientDirection selects the gradient direction.
func (s *Service) SetGradientDirection(direction headline.Direction) error {
	return s.store.Update(func(cur headline.HeadlineSettings) (headline.HeadlineSettings, error) {
		return cur.WithGradientDirection(direction)
	})
}

// SetGradientFrom replaces the first gradient stop.
func (s *Service) SetGradientFrom(color string) {
	s.store.Replace(s.store.Get().WithGradientFrom(color))
}

// SetGradientTo replaces the second gradient stop.
func (s *Service) SetGradientTo(color string) {
	s.store.Replace(s.store.Get().WithGradientTo(color))
}

// SetEffect sets a single effect flag.
func (s *Service) SetEffect(flag headline.EffectFlag, value bool) error {
	return s.store.Update(func(cur headline.HeadlineSettings) (headline.HeadlineSettings, error) {
		return cur.WithEffect(flag, value)
	})
}

// ToggleEffect flips a single effect flag.
func (s *Service) ToggleEffect(flag headline.EffectFlag) error {
	return s.store.Update(func(cur headline.HeadlineSettings) (headline.HeadlineSettings, error) {
		return cur.WithEffect(flag, !cur.Effects.Enabled(flag))
	})
}

// AddWord adds a word override. Duplicates are a silent no-op.
func (s *Service) AddWord(raw string) {
	cur := s.store.Get()
	next := headline.AddWord(cur, raw, s.ids)
	if len(next.StyledWords) == len(cur.StyledWords) {
		s.log.With("word", raw).Debug("word override unchanged")
		return
	}
	s.store.Replace(next)
}

// ApplyOverrides adds the parsed overrides and switches their flags on.
func (s *Service) ApplyOverrides(overrides []wordspec.Override) {
	if len(overrides) == 0 {
		return
	}
	s.store.Replace(wordspec.Apply(s.store.Get(), overrides, s.ids))
}

// ToggleWordStyle flips one flag of the override identified by id. Unknown ids are a no-op.
func (s *Service) ToggleWordStyle(id string, field headline.StyleField) {
	cur := s.store.Get()
	if _, ok := headline.FindWord(cur, id); !ok {
		s.log.With("id", id).Debug("toggle ignored for unknown word id")
		return
	}
	s.store.Replace(headline.ToggleStyle(cur, id, field))
}

// RemoveWord removes the override identified by id. Unknown ids are a no-op.
func (s *Service) RemoveWord(id string) {
	cur := s.store.Get()
	if _, ok := headline.FindWord(cur, id); !ok {
		s.log.With("id", id).Debug("remove ignored for unknown word id")
		return
	}
	s.store.Replace(headline.RemoveWord(cur, id))
}

// Export serializes the current settings.
func (s *Service) Export() ([]byte, error) {
	return export.Marshal(s.store.Get(), s.fonts)
}

// ExportTo serializes the current settings and writes them to path, or to
// the configured export path when path is empty. Nothing is written when
// serialization fails.
func (s *Service) ExportTo(path string) (string, error) {
	data, err := s.Export()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = s.exportPath
	}

	written, err := export.WriteFile(path, data)
	if err != nil {
		return "", err
	}

	s.log.WithFields(map[string]any{"path": written, "bytes": len(data)}).Info("headline exported")
	return written, nil
}

func (s *Service) recompose(next headline.HeadlineSettings, revision uint64) {
	frame := Frame{
		Revision: revision,
		Settings: next,
		Segments: compose.ComposeSettings(next),
		Motion:   compose.MotionFor(next),
	}
	frame.FontString, _ = s.fonts.Lookup(next.FontFamily)

	descriptor, err := paint.ForSettings(next)
	if err != nil {
		frame.PaintErr = fmt.Errorf("resolve paint: %w", err)
	} else {
		frame.Paint = descriptor
	}

	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"revision": revision,
		"segments": len(frame.Segments),
	}).Debug("settings replaced")
}
