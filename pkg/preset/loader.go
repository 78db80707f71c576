package preset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
)

// LoadFS walks the provided filesystem and parses JSON/YAML preset files.
// When fsys is nil or no preset files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("preset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Presets {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("preset: file %s defines an empty preset name", path)
			}
			if _, exists := store.presets[name]; exists {
				return fmt.Errorf("preset: duplicate preset %q (file %s)", name, path)
			}

			p, err := normalisePreset(raw, name, path)
			if err != nil {
				return err
			}
			store.presets[name] = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Presets map[string]presetFile `json:"presets" yaml:"presets"`
}

type presetFile struct {
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	NumberMin   *int   `json:"numberMin" yaml:"numberMin"`
	NumberMax   *int   `json:"numberMax" yaml:"numberMax"`
	ResultMin   *int   `json:"resultMin" yaml:"resultMin"`
	ResultMax   *int   `json:"resultMax" yaml:"resultMax"`
	RoundUnit   *int   `json:"roundUnit" yaml:"roundUnit"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("preset: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("preset: parse %s: invalid JSON or YAML", source)
}

func normalisePreset(raw presetFile, name, source string) (Preset, error) {
	category, err := model.ParseCategory(raw.Category)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %q (file %s): %w", name, source, err)
	}

	rawPattern := strings.TrimSpace(raw.Pattern)
	if rawPattern == "" {
		rawPattern = pattern.Default
	}
	operands, err := pattern.Parse(rawPattern)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %q (file %s): %w", name, source, err)
	}

	p := Preset{
		Name:        name,
		Description: strings.TrimSpace(raw.Description),
		Source:      source,
		Category:    category,
		Pattern:     rawPattern,
		Operands:    operands,
		NumberMin:   raw.NumberMin,
		NumberMax:   raw.NumberMax,
		ResultMin:   raw.ResultMin,
		ResultMax:   raw.ResultMax,
		RoundUnit:   raw.RoundUnit,
	}

	probe := model.DefaultGenerationConfig()
	p.overlay(&probe)
	if err := probe.ValidateSampling(); err != nil {
		return Preset{}, fmt.Errorf("preset: %q (file %s): %w", name, source, err)
	}
	return p, nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
