package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"devdash/internal/domain/archive"
	"devdash/internal/domain/document"
	"devdash/internal/domain/file"
	"devdash/internal/domain/project"
	"devdash/internal/domain/secret"
	"devdash/internal/domain/snippet"
	"devdash/internal/domain/team"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtures []byte

// Dataset - начальное наполнение всех видов записей
type Dataset struct {
	Projects []project.Project   `yaml:"projects"`
	Snippets []snippet.Snippet   `yaml:"snippets"`
	Secrets  []secret.Secret     `yaml:"secrets"`
	Files    []file.File         `yaml:"files"`
	Team     []team.Member       `yaml:"team"`
	Docs     []document.Document `yaml:"docs"`
	Archives []archive.Archive   `yaml:"archives"`
}

// Default возвращает встроенный набор данных
func Default() (*Dataset, error) {
	return Decode(bytes.NewReader(fixtures))
}

// Load читает набор данных из файла; пустой путь означает встроенный набор
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	return &ds, nil
}
