package ticket

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed options.yaml
var optionsYAML []byte

// Options lists the allowed values of the ticket form dropdowns. The first
// entry of each list is the "--None--" placeholder.
type Options struct {
	Products        []string `yaml:"products" json:"products"`
	TimeZones       []string `yaml:"time_zones" json:"timeZones"`
	TestingTypes    []string `yaml:"testing_types" json:"testingTypes"`
	AffectedUsers   []string `yaml:"affected_users" json:"affectedUsers"`
	KatalonVersions []string `yaml:"katalon_versions" json:"katalonVersions"`
	AffectedWork    []string `yaml:"affected_work" json:"affectedWork"`
}

var (
	optionsOnce sync.Once
	options     *Options
	optionsErr  error
)

// LoadOptions parses the embedded vocabularies once.
func LoadOptions() (*Options, error) {
	optionsOnce.Do(func() {
		var o Options
		if err := yaml.Unmarshal(optionsYAML, &o); err != nil {
			optionsErr = fmt.Errorf("failed to parse ticket options: %w", err)
			return
		}
		options = &o
	})
	return options, optionsErr
}
