package griddata

import "github.com/kelseyhightower/envconfig"

// Config carries environment-supplied defaults for the CLI.
type Config struct {
	// WorkbookPath is the pool workbook to read.
	WorkbookPath string `envconfig:"GRID_WORKBOOK" default:"2025 Grid.xlsm"`
	// OutputPath is where the JSON document is written.
	OutputPath string `envconfig:"GRID_OUTPUT" default:"docs/assets/grid-data.json"`
	// Env selects logger behavior; "local" enables development output.
	Env string `envconfig:"GRID_ENV" default:"production"`
}

// NewConfig reads configuration from the environment.
func NewConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
