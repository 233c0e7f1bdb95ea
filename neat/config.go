package neat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// configValidate checks the range tags on Config fields.
var configValidate = validator.New()

// Config stores the configuration parameters for the NEAT algorithm.
type Config struct {
	Neat          NeatConfig          `yaml:"neat"`
	Mutation      MutationConfig      `yaml:"mutation"`
	Crossover     CrossoverConfig     `yaml:"crossover"`
	Compatibility CompatibilityConfig `yaml:"compatibility"`
	Reproduction  ReproductionConfig  `yaml:"reproduction"`
	Stagnation    StagnationConfig    `yaml:"stagnation"`
}

// NeatConfig holds parameters of the run as a whole.
type NeatConfig struct {
	PopulationSize int `ini:"population_size" yaml:"population_size" validate:"gte=1"`
}

// MutationConfig holds the per-offspring mutation probabilities and the
// weight mutation parameters.
type MutationConfig struct {
	WeightMutateProb      float64 `ini:"weight_mutate_prob" yaml:"weight_mutate_prob" validate:"gte=0,lte=1"`
	AddConnectionProb     float64 `ini:"add_connection_prob" yaml:"add_connection_prob" validate:"gte=0,lte=1"`
	AddNodeProb           float64 `ini:"add_node_prob" yaml:"add_node_prob" validate:"gte=0,lte=1"`
	ToggleConnectionProb  float64 `ini:"toggle_connection_prob" yaml:"toggle_connection_prob" validate:"gte=0,lte=1"`
	DeleteConnectionProb  float64 `ini:"delete_connection_prob" yaml:"delete_connection_prob" validate:"gte=0,lte=1"`
	WeightPerturbProb     float64 `ini:"weight_perturb_prob" yaml:"weight_perturb_prob" validate:"gte=0,lte=1"`
	WeightSigma           float64 `ini:"weight_sigma" yaml:"weight_sigma" validate:"gte=0"`
	WeightReplaceProb     float64 `ini:"weight_replace_prob" yaml:"weight_replace_prob" validate:"gte=0,lte=1"`
	AddConnectionAttempts int     `ini:"add_connection_attempts" yaml:"add_connection_attempts" validate:"gte=1"`
}

// CrossoverConfig holds parameters related to sexual reproduction.
type CrossoverConfig struct {
	CrossoverProb    float64 `ini:"crossover_prob" yaml:"crossover_prob" validate:"gte=0,lte=1"`
	DisableProb      float64 `ini:"disable_prob" yaml:"disable_prob" validate:"gte=0,lte=1"`
	InterspeciesProb float64 `ini:"interspecies_prob" yaml:"interspecies_prob" validate:"gte=0,lte=1"` // Carried but not used by reproduction.
}

// CompatibilityConfig holds the speciation distance coefficients and threshold.
type CompatibilityConfig struct {
	C1                 float64 `ini:"c1" yaml:"c1" validate:"gte=0"`
	C2                 float64 `ini:"c2" yaml:"c2" validate:"gte=0"`
	C3                 float64 `ini:"c3" yaml:"c3" validate:"gte=0"`
	NormaliseThreshold int     `ini:"normalise_threshold" yaml:"normalise_threshold" validate:"gte=1"`
	Threshold          float64 `ini:"compat_threshold" yaml:"compat_threshold" validate:"gte=0"`
}

// Params returns the distance coefficients as CompatibilityParams.
func (c CompatibilityConfig) Params() CompatibilityParams {
	return CompatibilityParams{C1: c.C1, C2: c.C2, C3: c.C3, NormaliseThreshold: c.NormaliseThreshold}
}

// ReproductionConfig holds parameters related to reproduction.
type ReproductionConfig struct {
	SurvivalRate   float64 `ini:"survival_rate" yaml:"survival_rate" validate:"gt=0,lte=1"`
	Elitism        int     `ini:"elitism" yaml:"elitism" validate:"gte=0"`
	TournamentSize int     `ini:"tournament_size" yaml:"tournament_size" validate:"gte=1"`
}

// StagnationConfig holds parameters related to species stagnation.
type StagnationConfig struct {
	MaxStagnation int `ini:"max_stagnation" yaml:"max_stagnation" validate:"gte=1"`
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() *Config {
	return &Config{
		Neat: NeatConfig{
			PopulationSize: 150,
		},
		Mutation: MutationConfig{
			WeightMutateProb:      0.8,
			AddConnectionProb:     0.05,
			AddNodeProb:           0.03,
			ToggleConnectionProb:  0.01,
			DeleteConnectionProb:  0.01,
			WeightPerturbProb:     0.8,
			WeightSigma:           0.3,
			WeightReplaceProb:     0.1,
			AddConnectionAttempts: DefaultAddConnectionAttempts,
		},
		Crossover: CrossoverConfig{
			CrossoverProb:    0.75,
			DisableProb:      DefaultDisableProb,
			InterspeciesProb: 0.001,
		},
		Compatibility: CompatibilityConfig{
			C1:                 1.0,
			C2:                 1.0,
			C3:                 0.4,
			NormaliseThreshold: 20,
			Threshold:          3.0,
		},
		Reproduction: ReproductionConfig{
			SurvivalRate:   0.25,
			Elitism:        1,
			TournamentSize: 2,
		},
		Stagnation: StagnationConfig{
			MaxStagnation: 15,
		},
	}
}

// LoadConfig loads configuration parameters from a file, overlaying them on
// DefaultConfig. Files ending in .yaml or .yml are read as YAML, anything
// else as INI with [NEAT], [Mutation], [Crossover], [Compatibility],
// [Reproduction] and [Stagnation] sections. The result is validated.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := loadYAML(filePath, config); err != nil {
			return nil, err
		}
	default:
		if err := loadINI(filePath, config); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadYAML(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}
	// Only keys present in the file overwrite the defaults.
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	return nil
}

func loadINI(filePath string, config *Config) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	sections := []struct {
		name   string
		target any
	}{
		{"NEAT", &config.Neat},
		{"Mutation", &config.Mutation},
		{"Crossover", &config.Crossover},
		{"Compatibility", &config.Compatibility},
		{"Reproduction", &config.Reproduction},
		{"Stagnation", &config.Stagnation},
	}
	for _, s := range sections {
		if err := cfg.Section(s.name).MapTo(s.target); err != nil {
			return fmt.Errorf("failed to map [%s] section: %w", s.name, err)
		}
	}
	return nil
}

// Validate checks every parameter against its allowed range.
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
