package perf

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Op string

const (
	OpAppend  Op = "append"
	OpPrepend Op = "prepend"
	OpInsert  Op = "insert"
	OpIterate Op = "iterate"
)

var ErrInvalidConfig = errors.New("perf: invalid config")

func (o Op) valid() bool {
	switch o {
	case OpAppend, OpPrepend, OpInsert, OpIterate:
		return true
	}
	return false
}

// Config describes one comparison sweep. Lengths run from 1 up to, but not
// including, MaxLength in increments of Step.
type Config struct {
	MaxLength int           `yaml:"max_length"`
	Step      int           `yaml:"step"`
	N         int           `yaml:"n"`
	Repeats   int           `yaml:"repeats"`
	Budget    time.Duration `yaml:"budget"`
	Ops       []Op          `yaml:"ops"`
}

func DefaultConfig() Config {
	return Config{
		MaxLength: 10001,
		Step:      1000,
		N:         100,
		Repeats:   10,
		Budget:    10 * time.Second,
		Ops:       []Op{OpAppend, OpPrepend, OpInsert, OpIterate},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.MaxLength < 2:
		return fmt.Errorf("%w: max_length %d must be at least 2", ErrInvalidConfig, c.MaxLength)
	case c.Step < 1:
		return fmt.Errorf("%w: step %d must be positive", ErrInvalidConfig, c.Step)
	case c.N < 1:
		return fmt.Errorf("%w: n %d must be positive", ErrInvalidConfig, c.N)
	case c.Repeats < 1:
		return fmt.Errorf("%w: repeats %d must be positive", ErrInvalidConfig, c.Repeats)
	case c.Budget < 0:
		return fmt.Errorf("%w: budget %s must not be negative", ErrInvalidConfig, c.Budget)
	case len(c.Ops) == 0:
		return fmt.Errorf("%w: no ops", ErrInvalidConfig)
	}
	for _, op := range c.Ops {
		if !op.valid() {
			return fmt.Errorf("%w: unknown op %q", ErrInvalidConfig, op)
		}
	}
	return nil
}
