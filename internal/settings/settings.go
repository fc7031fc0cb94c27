// Package settings persists the rename options as a flat YAML document and
// turns them into rename parameters.
package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/pattern"
	"github.com/osse101/filecatalog/internal/rename"
	"github.com/osse101/filecatalog/internal/validation"
)

//go:embed rename.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     validation.SchemaValidator
	schemaErr  error
)

func documentSchema() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = validation.NewSchemaValidator(schemaName, schemaJSON)
	})
	return schema, schemaErr
}

// RenameOptions are the persisted rename dialog settings.
type RenameOptions struct {
	Pattern           string `yaml:"pattern" validate:"required,namepattern"`
	BaseDir           string `yaml:"basedir"`
	Sidecars          string `yaml:"sidecars" validate:"sidecars"`
	NameNorm          string `yaml:"name_norm" validate:"oneof=off upper lower"`
	ExtNorm           string `yaml:"ext_norm" validate:"oneof=off upper lower"`
	OnExisting        string `yaml:"on_existing" validate:"oneof=skip rename"`
	AllowWhitespace   bool   `yaml:"allow_whitespace"`
	ProgressiveNumber int    `yaml:"progressive_number" validate:"min=1"`
}

// Defaults returns the options of a fresh installation.
func Defaults() RenameOptions {
	return RenameOptions{
		Pattern:           DefaultPattern,
		NameNorm:          DefaultNorm,
		ExtNorm:           DefaultNorm,
		OnExisting:        DefaultOnExisting,
		ProgressiveNumber: DefaultProgressiveNumber,
	}
}

// Validate checks the options with the struct validator. The error wraps
// domain.ErrInvalidSettings.
func (o RenameOptions) Validate() error {
	if err := validation.GetValidator().ValidateStruct(o); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSettings, validation.Summary(err))
	}
	return nil
}

// Parse decodes a settings document. Keys left out keep their defaults.
func Parse(data []byte) (RenameOptions, error) {
	s, err := documentSchema()
	if err != nil {
		return RenameOptions{}, err
	}
	if err := s.ValidateYAML(data); err != nil {
		return RenameOptions{}, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}

	opts := Defaults()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return RenameOptions{}, fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	if err := opts.Validate(); err != nil {
		return RenameOptions{}, err
	}
	return opts, nil
}

// Load reads the settings at path. A missing file yields Defaults.
func Load(fs afero.Fs, path string) (RenameOptions, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug(LogMsgSettingsMissing, "path", path)
		return Defaults(), nil
	}
	if err != nil {
		return RenameOptions{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return Parse(data)
}

// Save validates and writes the options to path, creating its directory.
func Save(fs afero.Fs, path string, o RenameOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	slog.Debug(LogMsgSettingsSaved, "path", path)
	return nil
}

// Params compiles the options into rename parameters. A base directory
// that does not exist on fs is replaced by "." so names stay next to their
// sources.
func (o RenameOptions) Params(fs afero.Fs, paramFileExt string) (*rename.Params, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	p, err := pattern.Compile(o.Pattern, o.ProgressiveNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}
	nameCase, err := pattern.ParseCaseMode(o.NameNorm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}
	extCase, err := pattern.ParseCaseMode(o.ExtNorm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}
	onExisting, err := rename.ParseOnExisting(o.OnExisting)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}

	baseDir := o.BaseDir
	if baseDir != "" && baseDir != currentDir {
		if ok, _ := afero.IsDir(fs, baseDir); !ok {
			slog.Warn(LogMsgBaseDirMissing, "basedir", baseDir)
			baseDir = currentDir
		}
	}

	return &rename.Params{
		Pattern: p,
		Render: pattern.RenderParams{
			BaseDir:         baseDir,
			AllowWhitespace: o.AllowWhitespace,
			NameCase:        nameCase,
			ExtCase:         extCase,
		},
		OnExisting:   onExisting,
		Sidecars:     rename.ParseSidecars(o.Sidecars),
		ParamFileExt: paramFileExt,
	}, nil
}
