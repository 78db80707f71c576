package preset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-mathsheet/pkg/model"
)

// ErrUnknownPreset is returned when a preset name is not in the store.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Preset is a named combination of category, operand pattern and bounds.
// Nil bounds leave the target configuration untouched.
type Preset struct {
	Name        string
	Description string
	Source      string
	Category    model.Category
	Pattern     string
	Operands    model.OperandConfig
	NumberMin   *int
	NumberMax   *int
	ResultMin   *int
	ResultMax   *int
	RoundUnit   *int
}

// Store holds presets keyed by name.
type Store struct {
	presets map[string]Preset
}

// Get returns the preset registered under name.
func (s *Store) Get(name string) (Preset, error) {
	if s != nil {
		if p, ok := s.presets[name]; ok {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// Names returns the sorted preset names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any presets.
func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

// Merge returns a store holding the presets of s and others. Later stores
// replace presets of the same name.
func (s *Store) Merge(others ...*Store) *Store {
	merged := &Store{presets: make(map[string]Preset)}
	for _, src := range append([]*Store{s}, others...) {
		if src == nil {
			continue
		}
		for name, p := range src.presets {
			merged.presets[name] = p
		}
	}
	return merged
}

// Apply overlays the named preset onto cfg.
func (s *Store) Apply(name string, cfg *model.GenerationConfig) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	p.overlay(cfg)
	return nil
}

func (p Preset) overlay(cfg *model.GenerationConfig) {
	cfg.Category = p.Category
	cfg.Operands = p.Operands
	setInt(&cfg.NumberMin, p.NumberMin)
	setInt(&cfg.NumberMax, p.NumberMax)
	setInt(&cfg.ResultMin, p.ResultMin)
	setInt(&cfg.ResultMax, p.ResultMax)
	setInt(&cfg.RoundUnit, p.RoundUnit)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
