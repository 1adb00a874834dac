package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes a project's defmod.toml.
//
//	[package]
//	name = "myproject"
//
//	[expand]
//	out_dir = "generated"
//	jobs = 4
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Expand struct {
		OutDir string `toml:"out_dir"`
		Jobs   int    `toml:"jobs"`
	} `toml:"expand"`

	// Dir — каталог, где лежит манифест; заполняется при загрузке.
	Dir string `toml:"-"`
}

// LoadManifest parses a defmod.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %q", undecoded[0].String(), path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	m.Dir = filepath.Dir(abs)
	return &m, nil
}

// Discover ищет defmod.toml вверх от startDir и загружает его.
// Отсутствие манифеста — не ошибка: возвращается (nil, "", nil).
func Discover(startDir string) (*Manifest, string, error) {
	path, ok, err := FindDefmodToml(startDir)
	if err != nil || !ok {
		return nil, "", err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

// OutDirFor resolves the output directory relative to the manifest location.
func (m *Manifest) OutDirFor() string {
	if m.Expand.OutDir == "" {
		return m.Dir
	}
	if filepath.IsAbs(m.Expand.OutDir) {
		return m.Expand.OutDir
	}
	return filepath.Join(m.Dir, m.Expand.OutDir)
}
