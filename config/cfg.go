package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"utdfmt/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// EngineConfig describes braille page geometry and numbering.
	EngineConfig struct {
		CellsPerLine      int                       `yaml:"cells_per_line" validate:"min=10,max=100"`
		LinesPerPage      int                       `yaml:"lines_per_page" validate:"min=3,max=100"`
		Interpoint        bool                      `yaml:"interpoint"`
		BrailleCode       common.BrailleCode        `yaml:"braille_code" validate:"gte=0"`
		BreakRulesPath    string                    `yaml:"break_rules_path" sanitize:"assure_file_access"`
		LineSpacing       int                       `yaml:"line_spacing" validate:"gte=0,lte=3"`
		ContinuePages     bool                      `yaml:"continue_pages"`
		PageNumberPadding int                       `yaml:"page_number_padding" validate:"gte=0,lte=10"`
		BraillePageNumber common.PageNumberPosition `yaml:"braille_page_number" validate:"gte=0"`
		PrintPageNumber   common.PageNumberPosition `yaml:"print_page_number" validate:"gte=0"`
		RunningHead       string                    `yaml:"running_head"`
		GuideWords        bool                      `yaml:"guide_words"`
		MaxChainSplits    int                       `yaml:"max_chain_splits" validate:"gte=0,lte=10"`
	}

	DocumentConfig struct {
		StylesheetPath        string `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
		WriteUTD              bool   `yaml:"write_utd"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Engine    EngineConfig   `yaml:"engine"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands configuration template to get defaults, then
// superimposes values from the file at path (if any) and validates result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates default configuration from template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
