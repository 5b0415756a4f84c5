package cmd

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	log "github.com/sirupsen/logrus"
	"github.com/soypat/foc"
	"github.com/soypat/foc/trig"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// supported sine implementations
const (
	SineMath32 = "math32"
	SineLUT    = "lut"
)

// Config describes the motor and inverter focctl computes for
type Config struct {
	PolePairs int     `yaml:"pole_pairs"` // motor pole pairs
	VoltageDC float32 `yaml:"voltage_dc"` // DC bus voltage
	PWMPeriod uint32  `yaml:"pwm_period"` // timer counts per PWM period, 0 disables compare value output
	DeadTime  float32 `yaml:"dead_time"`  // inverter dead time as a fraction of the PWM period
	Sine      string  `yaml:"sine"`       // sine implementation used by the modulator
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		PolePairs: 4,
		VoltageDC: 24,
		Sine:      SineMath32,
	}
}

// Validate config is sane
func (c *Config) Validate() error {
	if c.PolePairs <= 0 {
		return fmt.Errorf("pole_pairs must be greater than zero")
	}
	if c.VoltageDC <= 0 {
		return fmt.Errorf("voltage_dc must be greater than zero")
	}
	if c.DeadTime < 0 || c.DeadTime >= 0.5 {
		return fmt.Errorf("dead_time must be in [0, 0.5)")
	}
	if c.Sine != SineMath32 && c.Sine != SineLUT {
		return fmt.Errorf("sine must be either %q or %q", SineMath32, SineLUT)
	}
	return nil
}

// Modulator returns the SVPWM modulator using the configured sine
func (c *Config) Modulator() foc.Modulator {
	if c.Sine == SineLUT {
		return foc.Modulator{Sin: trig.Sin}
	}
	return foc.Modulator{Sin: math32.Sin}
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, &c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// PrepareConfig prepares final version of config based on defaults, on-disk config and CLI flags, and validates resulting config
func PrepareConfig(cfgPath string, polePairs int, vdc float32, lut bool, setFlags map[string]bool) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfgPath != "" {
		cfg, err = ReadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("reading config from %q: %w", cfgPath, err)
		}
		log.Debugf("loaded config from %q", cfgPath)
	}
	if setFlags["pole-pairs"] {
		log.Debugf("overriding pole_pairs from CLI flag")
		cfg.PolePairs = polePairs
	}
	if setFlags["vdc"] {
		log.Debugf("overriding voltage_dc from CLI flag")
		cfg.VoltageDC = vdc
	}
	if setFlags["lut"] {
		log.Debugf("overriding sine from CLI flag")
		cfg.Sine = SineMath32
		if lut {
			cfg.Sine = SineLUT
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	log.Debugf("config: %+v", *cfg)
	return cfg, nil
}

// changedFlags returns the set of flags explicitly passed to cmd
func changedFlags(cmd *cobra.Command) map[string]bool {
	set := map[string]bool{}
	for _, name := range []string{"pole-pairs", "vdc", "lut"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			set[name] = true
		}
	}
	return set
}
