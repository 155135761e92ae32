// Package dataset carrega o dataset declarativo que alimenta o relatório
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vfg2006/organic-report/internal/domain"
)

//go:embed organic_report.yaml
var embedded []byte

// EmbeddedName identifica o dataset embutido no binário
const EmbeddedName = "embedded:organic_report.yaml"

type Source interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Name() string
}

// FileSource lê o dataset de um arquivo (yaml, json ou toml).
// Com Path vazio usa o dataset embutido.
type FileSource struct {
	Path string
}

func NewSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	if s.Path == "" {
		return EmbeddedName
	}
	return s.Path
}

func (s *FileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.Path == "" {
		return Decode(embedded, "yaml")
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "lendo dataset %s", s.Path)
	}

	ds, err := Decode(content, configType(s.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", s.Path)
	}

	return ds, nil
}

// Decode interpreta o conteúdo com uma instância própria do viper,
// sem interferir na configuração global.
func Decode(content []byte, format string) (*domain.Dataset, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, errors.Wrap(err, "conteúdo inválido")
	}

	ds := &domain.Dataset{}
	err := v.Unmarshal(ds, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return nil, errors.Wrap(err, "decodificando dataset")
	}

	if len(ds.Months) == 0 {
		return nil, ErrEmptyDataset
	}

	return ds, nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
