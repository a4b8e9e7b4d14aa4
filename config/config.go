package config

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

import (
	"github.com/timtadh/data-structures/errors"
	"gopkg.in/yaml.v3"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/stores/bytes_int"
)

const (
	SupportEnv = "RPM_SUPPORT"
	WorkersEnv = "RPM_WORKERS"
)

// UnsetSupport marks a Support that no flag, env var or file provided.
const UnsetSupport = math.MinInt

type Config struct {
	Cache         string   `yaml:"cache"`
	Output        string   `yaml:"output"`
	Support       int      `yaml:"min_support"`
	Parallelism   int      `yaml:"workers"`
	Names         []string `yaml:"names"`
	AllLevels     bool     `yaml:"all_levels"`
	FoldRotations bool     `yaml:"fold_rotations"`
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) BytesIntMultiMap(name string) (bytes_int.MultiMap, error) {
	if c.Cache == "" {
		return bytes_int.AnonBpTree()
	} else {
		return bytes_int.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}

// Load reads a yaml config file and then applies the environment
// overrides. An empty path only applies the environment.
func Load(path string) (*Config, error) {
	c := &Config{Support: UnsetSupport}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Errorf("could not read config %v: %v", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Errorf("could not parse config %v: %v", path, err)
		}
	}
	if err := c.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if s := getenv(SupportEnv); s != "" {
		i, err := strconv.Atoi(s)
		if err != nil {
			return errors.Errorf("%v=%q is not an int", SupportEnv, s)
		}
		c.Support = i
	}
	if s := getenv(WorkersEnv); s != "" {
		i, err := strconv.Atoi(s)
		if err != nil {
			return errors.Errorf("%v=%q is not an int", WorkersEnv, s)
		}
		c.Parallelism = i
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Support == UnsetSupport {
		return errors.Errorf("min_support was never set (--support, %v or min_support)", SupportEnv)
	}
	if c.Support < 0 {
		return errors.Errorf("min_support must be >= 0 (got %d)", c.Support)
	}
	if c.Parallelism < -1 {
		return errors.Errorf("workers must be >= -1 (got %d)", c.Parallelism)
	}
	if c.Output == "" {
		return errors.Errorf("an output directory is required")
	}
	return nil
}
