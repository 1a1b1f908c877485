package publish

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tagtree-dev/tagtree/pkg/render"
)

// Config is the YAML site configuration understood by the tagtree command.
type Config struct {
	// OutputDir is the directory the site is written into.
	OutputDir string `yaml:"output_dir"`

	// Pretty enables indented markup.
	Pretty bool `yaml:"pretty"`

	// IndentWidth is the indent size per nesting level in pretty mode.
	IndentWidth int `yaml:"indent_width"`

	// XHTML switches void elements to self-closing syntax.
	XHTML bool `yaml:"xhtml"`

	// Title is the default page title.
	Title string `yaml:"title"`

	// Lang is the document language attribute.
	Lang string `yaml:"lang"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		OutputDir:   "public",
		IndentWidth: 2,
		Lang:        "en",
	}
}

// LoadConfig reads a YAML config file, applies defaults for missing fields,
// and validates the result.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir must not be empty")
	}
	if c.IndentWidth < 0 {
		return fmt.Errorf("config: indent_width must not be negative")
	}
	return nil
}

// Renderer builds a renderer matching the configuration.
func (c Config) Renderer() *render.Renderer {
	return render.NewRenderer(render.Config{
		Pretty:      c.Pretty,
		IndentWidth: c.IndentWidth,
		XHTML:       c.XHTML,
	})
}
