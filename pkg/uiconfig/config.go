// Package uiconfig loads the YAML-backed tuning configuration for a uicore
// instance. Grounded in pkg/config/config.go's Load/LoadFromDir shape.
package uiconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uicore/pkg/action"
)

// Config is the top-level uicore tuning file. OpArgs carries every
// action.OpArgs tunable; ScrollSettleWaitMs is the supplemental,
// opt-in delay between ScrollSearch iterations (see SPEC_FULL.md open
// question 3), 0 (disabled) by default.
type Config struct {
	OpArgs             OpArgsConfig `yaml:"opArgs"`
	ScrollSettleWaitMs uint32       `yaml:"scrollSettleWaitMs"`
}

// OpArgsConfig mirrors action.OpArgs field-for-field as YAML tags, so a
// config file can override any subset of the tunables.
type OpArgsConfig struct {
	ClickHoldMs           uint32 `yaml:"clickHoldMs"`
	LongClickHoldMs       uint32 `yaml:"longClickHoldMs"`
	DoubleClickIntervalMs uint32 `yaml:"doubleClickIntervalMs"`
	KeyHoldMs             uint32 `yaml:"keyHoldMs"`

	SwipeVelocityPps        uint32 `yaml:"swipeVelocityPps"`
	MinSwipeVelocityPps     uint32 `yaml:"minSwipeVelocityPps"`
	MaxSwipeVelocityPps     uint32 `yaml:"maxSwipeVelocityPps"`
	DefaultSwipeVelocityPps uint32 `yaml:"defaultSwipeVelocityPps"`
	SwipeStepsCount         uint16 `yaml:"swipeStepsCount"`

	ScrollWidgetDeadZone int32  `yaml:"scrollWidgetDeadZone"`
	UiSteadyThresholdMs  uint32 `yaml:"uiSteadyThresholdMs"`
	WaitUiSteadyMaxMs    uint32 `yaml:"waitUiSteadyMaxMs"`
	WaitWidgetMaxMs      uint32 `yaml:"waitWidgetMaxMs"`
}

// Default returns the config that reproduces the original engine's tuning
// exactly, matching action.DefaultOpArgs.
func Default() Config {
	d := action.DefaultOpArgs()
	return Config{
		OpArgs: OpArgsConfig{
			ClickHoldMs:             d.ClickHoldMs,
			LongClickHoldMs:         d.LongClickHoldMs,
			DoubleClickIntervalMs:   d.DoubleClickIntervalMs,
			KeyHoldMs:               d.KeyHoldMs,
			SwipeVelocityPps:        d.SwipeVelocityPps,
			MinSwipeVelocityPps:     d.MinSwipeVelocityPps,
			MaxSwipeVelocityPps:     d.MaxSwipeVelocityPps,
			DefaultSwipeVelocityPps: d.DefaultSwipeVelocityPps,
			SwipeStepsCount:         d.SwipeStepsCount,
			ScrollWidgetDeadZone:    d.ScrollWidgetDeadZone,
			UiSteadyThresholdMs:     d.UiSteadyThresholdMs,
			WaitUiSteadyMaxMs:       d.WaitUiSteadyMaxMs,
			WaitWidgetMaxMs:         d.WaitWidgetMaxMs,
		},
		ScrollSettleWaitMs: 0,
	}
}

// ToOpArgs converts the loaded config's tunables into an action.OpArgs.
func (c Config) ToOpArgs() action.OpArgs {
	o := c.OpArgs
	return action.OpArgs{
		ClickHoldMs:             o.ClickHoldMs,
		LongClickHoldMs:         o.LongClickHoldMs,
		DoubleClickIntervalMs:   o.DoubleClickIntervalMs,
		KeyHoldMs:               o.KeyHoldMs,
		SwipeVelocityPps:        o.SwipeVelocityPps,
		MinSwipeVelocityPps:     o.MinSwipeVelocityPps,
		MaxSwipeVelocityPps:     o.MaxSwipeVelocityPps,
		DefaultSwipeVelocityPps: o.DefaultSwipeVelocityPps,
		SwipeStepsCount:         o.SwipeStepsCount,
		ScrollWidgetDeadZone:    o.ScrollWidgetDeadZone,
		UiSteadyThresholdMs:     o.UiSteadyThresholdMs,
		WaitUiSteadyMaxMs:       o.WaitUiSteadyMaxMs,
		WaitWidgetMaxMs:         o.WaitWidgetMaxMs,
	}
}

// Load loads a Config from a YAML file, seeded with Default() so a partial
// override file only needs to name the fields it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- caller-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromDir looks for uicore.yaml or uicore.yml in dir, falling back to
// Default() when neither exists.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"uicore.yaml", "uicore.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	cfg := Default()
	return &cfg, nil
}
