package diagflags

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config is the declarative form of the controller policies, decodable from
// command-line flags, environment variables, or configuration files.
type Config struct {
	Assertions  bool        `mapstructure:"assertions"`
	Debug       []string    `mapstructure:"debug" validate:"dive,min=1"`
	ExitAction  ExitAction  `mapstructure:"exit-action"`
	DebugAction DebugAction `mapstructure:"debug-action"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration. Debug tags are arbitrary, case-sensitive
// strings, but they cannot be empty.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid diagnostics configuration: %w", err)
	}

	return nil
}

// Apply copies the configuration onto ctrl: the three policy values are set,
// and every listed debug tag is enabled on top of the tags already enabled.
func (cfg *Config) Apply(ctrl *Controller) {
	ctrl.SetAssertionsEnabled(cfg.Assertions)
	ctrl.SetDefaultExitAction(cfg.ExitAction)
	ctrl.SetDefaultDebugAction(cfg.DebugAction)
	for _, tag := range cfg.Debug {
		ctrl.EnableDebug(tag)
	}
}

// FromViper decodes and validates a Config from v, applying the action
// decode hooks so values may arrive as strings from any viper source.
//
// Keys not present in v keep the controller defaults (assertions on, exit
// action ExitTerminate, debug action DebugAsk).
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Assertions:  true,
		ExitAction:  ExitTerminate,
		DebugAction: DebugAsk,
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			StringToExitActionHookFunc(),
			StringToDebugActionHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
