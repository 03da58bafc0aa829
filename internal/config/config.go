// Package config загружает настройки клиента из YAML файла и .env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/egovcms/internal/client/board"
)

const (
	DefaultAPIURL = "http://localhost:8080"
	DefaultDBPath = "egovcms-client.db"
)

// Config настройки клиента
type Config struct {
	APIURL string        `yaml:"api_url"`
	DBPath string        `yaml:"db_path"`
	Boards []board.Board `yaml:"boards"`
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() Config {
	return Config{
		APIURL: DefaultAPIURL,
		DBPath: DefaultDBPath,
		Boards: board.DefaultCatalog(),
	}
}

// Load читает настройки из configPath.
// Пустой путь или отсутствующий файл дают настройки по умолчанию.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Override заменяет значения из флагов и переменных окружения.
// Пустые значения игнорируются.
func (c *Config) Override(apiURL, dbPath string) {
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
}

// applyDefaults заполняет незаданные значения
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.APIURL) == "" {
		c.APIURL = defaults.APIURL
	}
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = defaults.DBPath
	}
	if len(c.Boards) == 0 {
		c.Boards = defaults.Boards
	}
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = errs.Append("api_url", fmt.Errorf("invalid url %q", c.APIURL))
	}
	if c.DBPath == "" {
		errs = errs.Append("db_path", fmt.Errorf("cannot be empty"))
	}

	seen := make(map[string]bool, len(c.Boards))
	for i, b := range c.Boards {
		field := fmt.Sprintf("boards[%d].bbs_id", i)
		if b.BbsID == "" {
			errs = errs.Append(field, fmt.Errorf("cannot be empty"))
			continue
		}
		if seen[b.BbsID] {
			errs = errs.Append(field, fmt.Errorf("duplicate bbs_id %q", b.BbsID))
			continue
		}
		seen[b.BbsID] = true
	}

	return errs.ToError()
}

// LoadDotEnv загружает переменные из .env файлов.
// Отсутствующий файл не считается ошибкой, уже заданные переменные не перезаписываются.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
