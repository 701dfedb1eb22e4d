package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/atomicstack/recipebox/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Demo bool
}

const (
	envConfig     = "RECIPEBOX_CONFIG"
	envBaseURL    = "RECIPEBOX_BASE_URL"
	envUser       = "RECIPEBOX_USER"
	envToken      = "RECIPEBOX_TOKEN"
	envTimeout    = "RECIPEBOX_TIMEOUT"
	envExportPath = "RECIPEBOX_EXPORT_PATH"
	envWidth      = "RECIPEBOX_WIDTH"
	envHeight     = "RECIPEBOX_HEIGHT"
	envShowFooter = "RECIPEBOX_FOOTER"
	envDemo       = "RECIPEBOX_DEMO"
	envTrace      = "RECIPEBOX_TRACE"
	envLogFile    = "RECIPEBOX_LOG_FILE"

	defaultConfigFile = "recipebox.toml"
	defaultBaseURL    = "http://localhost:8080"
	defaultExportPath = "recipes.xlsx"
)

// fileConfig mirrors recipebox.toml. Unset keys leave the built-in defaults.
type fileConfig struct {
	BaseURL    string `toml:"base_url"`
	User       string `toml:"user"`
	Token      string `toml:"token"`
	Timeout    string `toml:"timeout"`
	ExportPath string `toml:"export_path"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Footer     *bool  `toml:"footer"`
	Demo       *bool  `toml:"demo"`
	Log        struct {
		File  string `toml:"file"`
		Trace *bool  `toml:"trace"`
	} `toml:"log"`
}

// Load parses configuration from CLI arguments, environment variables and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath, explicit := configPath(args, env)
	file, err := readFile(filePath, explicit)
	if err != nil {
		return Config{}, err
	}
	if file == nil {
		filePath = ""
		file = &fileConfig{}
	}

	fileTimeout := time.Duration(0)
	if strings.TrimSpace(file.Timeout) != "" {
		fileTimeout, err = time.ParseDuration(file.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("%s: timeout: %w", filePath, err)
		}
	}

	fs := flag.NewFlagSet("recipebox", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", filePath, "path to a TOML config file (default recipebox.toml when present)")
	baseURL := fs.String("base-url", envOrDefault(env, envBaseURL, orString(file.BaseURL, defaultBaseURL)), "root URL of the recipe service")
	user := fs.String("user", envOrDefault(env, envUser, file.User), "signed-in user name shown in the header")
	token := fs.String("token", envOrDefault(env, envToken, file.Token), "bearer token sent with every request")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, fileTimeout), "per-request timeout (0 waits indefinitely)")
	exportPath := fs.String("export", envOrDefault(env, envExportPath, orString(file.ExportPath, defaultExportPath)), "destination for the x export (.xlsx or .csv)")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, orBool(file.Footer, true)), "show the key hint footer")
	demo := fs.Bool("demo", envOrBool(env, envDemo, orBool(file.Demo, false)), "serve a built-in in-memory recipe service and use it")
	trace := fs.Bool("trace", envOrBool(env, envTrace, orBool(file.Log.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.Log.File), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			BaseURL:    strings.TrimSpace(*baseURL),
			User:       strings.TrimSpace(*user),
			Token:      *token,
			Timeout:    *timeout,
			ExportPath: *exportPath,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Demo:       *demo,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Demo: *demo,
		},
		File: filePath,
		Flags: map[string]string{
			"baseURL": *baseURL,
			"user":    *user,
			"timeout": timeout.String(),
			"export":  *exportPath,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"demo":    strconv.FormatBool(*demo),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the config file before flags are defined, since file
// values become flag defaults.
func configPath(args []string, env map[string]string) (string, bool) {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v, ok := env[envConfig]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	return defaultConfigFile, false
}

func readFile(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func orString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func orBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the program cannot start with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout)
	}
	if !cfg.App.Demo {
		u, err := url.Parse(cfg.App.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("base url %q must be an absolute http(s) URL", cfg.App.BaseURL)
		}
	}
	return nil
}
