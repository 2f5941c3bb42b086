package config

import (
	"path/filepath"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	defaultTimeout        = 5 * time.Minute
	defaultListen         = "127.0.0.1:0"
	defaultPollInterval   = 30 * time.Second
	defaultXboxPollPeriod = 10 * time.Second
)

type providerDefaults struct {
	authority  string
	authPath   string
	tokenPath  string
	devicePath string
	logoutPath string
	scopes     []string
	mode       string
}

// Client ids are left empty: each install registers its own application.
var builtinProviders = map[domain.ProviderID]providerDefaults{
	domain.ProviderXbox: {
		authority:  "https://login.microsoftonline.com/consumers",
		authPath:   "/oauth2/v2.0/authorize",
		tokenPath:  "/oauth2/v2.0/token",
		devicePath: "/oauth2/v2.0/devicecode",
		logoutPath: "/oauth2/v2.0/logout",
		scopes:     []string{"xboxlive.signin", "xboxlive.offline_access"},
		mode:       "browser",
	},
	domain.ProviderTwitch: {
		authority:  "https://id.twitch.tv",
		authPath:   "/oauth2/authorize",
		tokenPath:  "/oauth2/token",
		devicePath: "/oauth2/device",
		scopes:     []string{"openid", "user:read:email"},
		mode:       "device",
	},
}

// SetDefaults registers every default below dataDir, normally
// ~/.richpresence.
func SetDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("accounts.path", filepath.Join(dataDir, "accounts.toml"))
	v.SetDefault("focus.path", filepath.Join(dataDir, "focus.toml"))
	v.SetDefault("presence.dir", filepath.Join(dataDir, "presence"))
	v.SetDefault("secrets.dir", filepath.Join(dataDir, "secrets"))
	v.SetDefault("secrets.backend", SecretsBackendPass)
	v.SetDefault("login.open_browser", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	for id, d := range builtinProviders {
		prefix := "providers." + string(id) + "."
		v.SetDefault(prefix+"client_id", "")
		v.SetDefault(prefix+"authority", d.authority)
		v.SetDefault(prefix+"auth_path", d.authPath)
		v.SetDefault(prefix+"token_path", d.tokenPath)
		v.SetDefault(prefix+"device_path", d.devicePath)
		v.SetDefault(prefix+"logout_path", d.logoutPath)
		v.SetDefault(prefix+"scopes", d.scopes)
		v.SetDefault(prefix+"mode", d.mode)
		v.SetDefault(prefix+"listen", defaultListen)
		v.SetDefault(prefix+"timeout", defaultTimeout)
	}

	v.SetDefault("activity.polling_active", true)
	v.SetDefault("activity.priority", []string{
		string(domain.PlatformXbox),
		string(domain.PlatformPlayStation),
		string(domain.PlatformSteam),
		string(domain.PlatformNintendo),
	})
	for _, p := range domain.Platforms() {
		prefix := "platforms." + string(p) + "."
		v.SetDefault(prefix+"enabled", false)
		interval := defaultPollInterval
		if p == domain.PlatformXbox {
			interval = defaultXboxPollPeriod
		}
		v.SetDefault(prefix+"poll_interval", interval)
	}
}
