package stopreport

import (
	"github.com/theoremus-urban-solutions/stop-schedule-report/config"
)

// Config is the configuration loaded by the last successful LoadAppConfig.
var Config config.AppConfig

// LoadAppConfig loads and validates the configuration. path may be empty, in which
// case config.yml is used when present. Overrides are applied before validation.
func LoadAppConfig(path string, overrides ...func(*config.AppConfig)) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, apply := range overrides {
		apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	Config = cfg
	return nil
}
