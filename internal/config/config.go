package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "RP"
	DirName   = ".richpresence"
	FileName  = "config.toml"

	SecretsBackendPass = "pass"
	SecretsBackendFile = "file"
)

// Provider holds everything needed to talk to one identity provider.
type Provider struct {
	ID         domain.ProviderID
	ClientID   string
	Authority  string
	AuthPath   string
	TokenPath  string
	DevicePath string
	LogoutPath string
	Scopes     []string
	Mode       string
	Listen     string
	Timeout    time.Duration
}

func (p Provider) Domain() domain.ProviderConfig {
	scopes := make([]string, len(p.Scopes))
	copy(scopes, p.Scopes)

	return domain.ProviderConfig{
		ID:         p.ID,
		ClientID:   p.ClientID,
		Authority:  p.Authority,
		LogoutPath: p.LogoutPath,
		Scopes:     scopes,
	}
}

type Config struct {
	File           string
	Providers      map[domain.ProviderID]Provider
	Activity       domain.ActivityConfig
	PollIntervals  map[domain.Platform]time.Duration
	AccountsPath   string
	FocusPath      string
	PresenceDir    string
	SecretsDir     string
	SecretsBackend string
	OpenBrowser    bool
	LogLevel       string
	LogFormat      string
}

// ProviderConfigs returns the configured providers sorted by id.
func (c Config) ProviderConfigs() []domain.ProviderConfig {
	ids := make([]string, 0, len(c.Providers))
	for id := range c.Providers {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	out := make([]domain.ProviderConfig, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.Providers[domain.ProviderID(id)].Domain())
	}
	return out
}

// New returns a viper instance with defaults, RP_* environment overrides and
// the config file when one exists. An empty file means the default location.
func New(file string) (*viper.Viper, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	SetDefaults(v, filepath.Join(home, DirName))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		file = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if file == "" {
		file = filepath.Join(home, DirName, FileName)
	}
	v.SetConfigFile(file)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return v, nil
}

// Load decodes and validates the current viper state.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		File:           v.ConfigFileUsed(),
		Providers:      map[domain.ProviderID]Provider{},
		PollIntervals:  map[domain.Platform]time.Duration{},
		AccountsPath:   v.GetString("accounts.path"),
		FocusPath:      v.GetString("focus.path"),
		PresenceDir:    v.GetString("presence.dir"),
		SecretsDir:     v.GetString("secrets.dir"),
		SecretsBackend: strings.ToLower(v.GetString("secrets.backend")),
		OpenBrowser:    v.GetBool("login.open_browser"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
	}

	switch cfg.SecretsBackend {
	case SecretsBackendPass, SecretsBackendFile:
	default:
		return Config{}, fmt.Errorf("secrets.backend: unsupported backend %q", cfg.SecretsBackend)
	}

	for _, id := range providerIDs(v) {
		provider, err := loadProvider(v, id)
		if err != nil {
			return Config{}, err
		}
		cfg.Providers[id] = provider
	}

	activity, intervals, err := loadActivity(v)
	if err != nil {
		return Config{}, err
	}
	cfg.Activity = activity
	cfg.PollIntervals = intervals

	return cfg, nil
}

// Watch reloads the config file on change and hands the result to onChange.
// A reload that fails validation is reported with its error.
func Watch(v *viper.Viper, onChange func(Config, error)) {
	v.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}
		onChange(Load(v))
	})
	v.WatchConfig()
}

func providerIDs(v *viper.Viper) []domain.ProviderID {
	names := sectionNames(v, "providers")
	out := make([]domain.ProviderID, 0, len(names))
	for _, name := range names {
		out = append(out, domain.ProviderID(name))
	}
	return out
}

// sectionNames lists the sorted table names below section across defaults,
// the config file and overrides.
func sectionNames(v *viper.Viper, section string) []string {
	prefix := section + "."
	seen := map[string]struct{}{}
	for _, key := range v.AllKeys() {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		name, _, ok := strings.Cut(rest, ".")
		if !ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadProvider(v *viper.Viper, id domain.ProviderID) (Provider, error) {
	key := func(field string) string { return "providers." + string(id) + "." + field }

	timeout := v.GetDuration(key("timeout"))
	if timeout < 0 {
		return Provider{}, fmt.Errorf("%s: must not be negative", key("timeout"))
	}
	if authority := v.GetString(key("authority")); authority != "" && !strings.HasPrefix(authority, "http://") && !strings.HasPrefix(authority, "https://") {
		return Provider{}, fmt.Errorf("%s: must be an http(s) url", key("authority"))
	}

	return Provider{
		ID:         id,
		ClientID:   strings.TrimSpace(v.GetString(key("client_id"))),
		Authority:  strings.TrimRight(v.GetString(key("authority")), "/"),
		AuthPath:   v.GetString(key("auth_path")),
		TokenPath:  v.GetString(key("token_path")),
		DevicePath: v.GetString(key("device_path")),
		LogoutPath: v.GetString(key("logout_path")),
		Scopes:     v.GetStringSlice(key("scopes")),
		Mode:       v.GetString(key("mode")),
		Listen:     v.GetString(key("listen")),
		Timeout:    timeout,
	}, nil
}

func loadActivity(v *viper.Viper) (domain.ActivityConfig, map[domain.Platform]time.Duration, error) {
	priority, err := domain.ParsePriority(v.GetStringSlice("activity.priority"))
	if err != nil {
		return domain.ActivityConfig{}, nil, fmt.Errorf("activity.priority: %w", err)
	}

	activity := domain.ActivityConfig{
		PollingActive: v.GetBool("activity.polling_active"),
		Enabled:       make(map[domain.Platform]bool, len(domain.Platforms())),
		Priority:      priority,
	}
	intervals := make(map[domain.Platform]time.Duration, len(domain.Platforms()))

	for _, name := range sectionNames(v, "platforms") {
		p, err := domain.ParsePlatform(name)
		if err != nil || p.IsNone() {
			return domain.ActivityConfig{}, nil, fmt.Errorf("platforms.%s: %w", name, domain.ErrUnknownPlatform)
		}
	}

	for _, p := range domain.Platforms() {
		prefix := "platforms." + string(p) + "."
		activity.Enabled[p] = v.GetBool(prefix + "enabled")

		interval := v.GetDuration(prefix + "poll_interval")
		if interval <= 0 {
			return domain.ActivityConfig{}, nil, fmt.Errorf("%spoll_interval: must be positive", prefix)
		}
		intervals[p] = interval
	}

	if err := activity.Validate(); err != nil {
		return domain.ActivityConfig{}, nil, fmt.Errorf("activity: %w", err)
	}
	return activity, intervals, nil
}
