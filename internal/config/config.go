// Package config defines the data structures related to configuration and
// includes functions for loading and validating the scenario catalogue.
package config

import (
	"fmt"

	"github.com/gridedge/financial-model/internal/capex"
	"github.com/gridedge/financial-model/internal/projection"
	"github.com/gridedge/financial-model/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds the full model input: project metadata, the CapEx
// table, and the scenario catalogue, along with logging and output options.
type Configuration struct {
	Project   Project
	Scenarios []Scenario
	CapEx     capex.Table
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// Project holds facility-level metadata reported on the summary sheet.
type Project struct {
	Name       string
	CapacityMW float64
	Location   string
}

// Scenario pairs a name with one full set of projection assumptions.
type Scenario struct {
	Name       string
	Active     bool
	Assumption projection.Assumption
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output destination and format options
type OutputConfig struct {
	Format       string `yaml:"format,omitempty"`       // pretty, csv
	WorkbookFile string `yaml:"workbookFile,omitempty"` // xlsx destination
	GraphsDir    string `yaml:"graphsDir,omitempty"`    // chart destination
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills unset output options with their defaults.
func (c *Configuration) applyDefaults() {
	if c.Output.WorkbookFile == "" {
		c.Output.WorkbookFile = constants.DefaultWorkbookFile
	}
	if c.Output.GraphsDir == "" {
		c.Output.GraphsDir = constants.DefaultGraphsDir
	}
}

// ActiveScenarios returns the scenarios flagged active, preserving order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// FindScenario returns the named scenario, active or not.
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
