package splitpdf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the optional per-directory configuration file.
const SettingsFile = "split-rename-pdf.yaml"

// DefaultMappingFile is the mapping table looked for when no settings
// override it. A .csv sibling with the same stem is accepted when the
// workbook is absent.
const DefaultMappingFile = "rename-pdf-mapping.xlsx"

// Settings are the tunables a directory may override via SettingsFile.
type Settings struct {
	// MappingFile is the mapping table path, relative to the working
	// directory unless absolute.
	MappingFile string `yaml:"mapping_file"`
	// OutputDir overrides the output directory. Empty means a
	// directory named after the source PDF.
	OutputDir string `yaml:"output_dir"`
	// Overwrite replaces existing outputs without asking.
	Overwrite bool `yaml:"overwrite"`
}

func defaultSettings() Settings {
	return Settings{MappingFile: DefaultMappingFile}
}

// loadSettings reads SettingsFile from dir. A missing file yields the
// defaults; an unreadable or malformed file is an error.
func loadSettings(dir string) (Settings, error) {
	settings := defaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("cannot read %s: %w", SettingsFile, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("cannot parse %s: %w", SettingsFile, err)
	}
	if settings.MappingFile == "" {
		settings.MappingFile = DefaultMappingFile
	}
	return settings, nil
}
