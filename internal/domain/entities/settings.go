package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultOrganization = "l10n-works"
	documentFileName    = "README.md"
	defaultCacheDirPath = ".translation-cache"
	defaultPerPage      = 100
	defaultUserAgent    = "transindex"
)

// defaultExclusions lists repositories never rendered into the index,
// starting with the index project itself.
var defaultExclusions = []string{"translation-index"}

// Settings is the explicit configuration value for one run. It is built
// once at startup and passed by parameter to every component.
type Settings struct {
	Token                string
	Organization         string
	DocumentPath         string
	CacheDirPath         string
	PerPage              int
	ExcludedRepositories []string
	UserAgent            string
}

// fileSettings is the optional YAML configuration file shape.
type fileSettings struct {
	Token        string   `yaml:"token"`
	Organization string   `yaml:"organization"`
	DocumentPath string   `yaml:"document_path"`
	CacheDir     string   `yaml:"cache_dir"`
	PerPage      int      `yaml:"per_page"`
	Excluded     []string `yaml:"excluded"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings builds the run configuration from defaults, an optional
// config file, and the environment. configPath may be empty, in which case
// standard locations are searched; a missing file is not an error.
func NewSettings(configPath string) (*Settings, error) {
	_ = godotenv.Load(".env")

	settings := &Settings{
		Organization:         defaultOrganization,
		DocumentPath:         defaultDocumentPath(),
		CacheDirPath:         defaultCacheDirPath,
		PerPage:              defaultPerPage,
		ExcludedRepositories: defaultExclusions,
		UserAgent:            defaultUserAgent,
	}

	path := configPath
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := applyConfigFile(settings, path); err != nil {
			return nil, err
		}
	}

	if org := os.Getenv("TRANSINDEX_ORG"); org != "" {
		settings.Organization = org
	}
	if doc := os.Getenv("TRANSINDEX_DOCUMENT"); doc != "" {
		settings.DocumentPath = doc
	}
	if settings.Token == "" {
		settings.Token = tokenFromEnv()
	}

	if settings.Token == "" {
		return nil, errors.New(
			"no auth token configured: set GITHUB_TOKEN (or GH_TOKEN), or a token entry in the config file",
		)
	}

	return settings, nil
}

// applyConfigFile overlays values from a YAML configuration file.
func applyConfigFile(settings *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var file fileSettings
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if file.Token != "" {
		settings.Token = resolveToken(file.Token)
	}
	if file.Organization != "" {
		settings.Organization = file.Organization
	}
	if file.DocumentPath != "" {
		settings.DocumentPath = file.DocumentPath
	}
	if file.CacheDir != "" {
		settings.CacheDirPath = file.CacheDir
	}
	if file.PerPage > 0 {
		settings.PerPage = file.PerPage
	}
	if len(file.Excluded) > 0 {
		settings.ExcludedRepositories = file.Excluded
	}

	return nil
}

// defaultDocumentPath anchors the index document next to the program
// itself, so the tool finds its document regardless of the invocation
// directory. Config and environment overrides are taken as given.
func defaultDocumentPath() string {
	executable, err := os.Executable()
	if err != nil {
		return documentFileName
	}
	return filepath.Join(filepath.Dir(executable), documentFileName)
}

// findConfigFile searches standard locations for a configuration file and
// returns the first hit, or an empty string when none exists.
func findConfigFile() string {
	locations := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{".transindex.yaml", ".transindex.yml", "transindex.yaml", "transindex.yml"}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p
			}
		}
	}

	return ""
}

// resolveToken expands environment variable references (${VAR}) in a token
// value from the config file.
func resolveToken(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func tokenFromEnv() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return strings.TrimSpace(os.Getenv("GH_TOKEN"))
}
