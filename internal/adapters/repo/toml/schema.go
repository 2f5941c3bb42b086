package toml

import "fmt"

const currentSchemaVersion = 1

type accountsFile struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

type accountSchema struct {
	ID        string            `toml:"id"`
	Provider  string            `toml:"provider"`
	Username  string            `toml:"username,omitempty"`
	LoginHint string            `toml:"login_hint,omitempty"`
	SecretRef string            `toml:"secret_ref,omitempty"`
	UpdatedAt string            `toml:"updated_at,omitempty"`
	Claims    map[string]string `toml:"claims,omitempty"`
}

type focusFile struct {
	Version   int    `toml:"version"`
	Focused   string `toml:"focused"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

func applyVersion(version *int) {
	if *version == 0 {
		*version = currentSchemaVersion
	}
}

func validateVersion(kind string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, version, currentSchemaVersion)
	}
	return nil
}
