package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("testdata", "config.ini"))
	if err != nil {
		t.Fatalf("failed to resolve testdata path: %v", err)
	}

	return path
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// The four [mysql] values parse into strings as-is.
	if cfg.DB.User != "scryfall" {
		t.Errorf("DB.User = %q, want %q", cfg.DB.User, "scryfall")
	}

	if cfg.DB.Password != "secret" {
		t.Errorf("DB.Password = %q, want %q", cfg.DB.Password, "secret")
	}

	if cfg.DB.Host != "localhost" {
		t.Errorf("DB.Host = %q, want %q", cfg.DB.Host, "localhost")
	}

	if cfg.DB.Name != "mtg" {
		t.Errorf("DB.Name = %q, want %q", cfg.DB.Name, "mtg")
	}

	// Keys absent from the file fall back to defaults.
	if cfg.DB.Engine != "mysql" {
		t.Errorf("DB.Engine = %q, want default %q", cfg.DB.Engine, "mysql")
	}

	if cfg.DB.Port != 3306 {
		t.Errorf("DB.Port = %d, want default %d", cfg.DB.Port, 3306)
	}

	if cfg.Scryfall.BaseURL != "https://api.scryfall.com" {
		t.Errorf("Scryfall.BaseURL = %q, want default", cfg.Scryfall.BaseURL)
	}

	if cfg.Scryfall.TimeoutSeconds != 300 {
		t.Errorf("Scryfall.TimeoutSeconds = %d, want default %d", cfg.Scryfall.TimeoutSeconds, 300)
	}

	if cfg.HTTP.ShutDownTime != 5 {
		t.Errorf("HTTP.ShutDownTime = %d, want default %d", cfg.HTTP.ShutDownTime, 5)
	}

	// Keys present in the file win over defaults.
	if cfg.Scryfall.Dir != "./downloads" {
		t.Errorf("Scryfall.Dir = %q, want %q", cfg.Scryfall.Dir, "./downloads")
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}

	if cfg.HTTP.Port != 8085 {
		t.Errorf("HTTP.Port = %d, want %d", cfg.HTTP.Port, 8085)
	}

	if cfg.Sync.Schedule != "0 4 * * *" {
		t.Errorf("Sync.Schedule = %q, want %q", cfg.Sync.Schedule, "0 4 * * *")
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	if err == nil {
		t.Fatal("ReadConfig() on a missing file should fail")
	}
}

func TestConfigValidation(t *testing.T) {
	base := func() Config {
		cfg := Config{}
		cfg.DB = DB{Engine: "mysql", Host: "localhost", Port: 3306, User: "u", Name: "db"}
		cfg.Scryfall = Scryfall{BaseURL: "https://api.scryfall.com", TimeoutSeconds: 300}
		cfg.HTTP = HTTPServer{Port: 8080}
		cfg.Sync = Sync{Schedule: "@daily"}

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing user",
			mutate:  func(c *Config) { c.DB.User = "" },
			wantErr: ErrDBUserEmpty,
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.DB.Host = "" },
			wantErr: ErrDBHostEmpty,
		},
		{
			name:    "missing database",
			mutate:  func(c *Config) { c.DB.Name = "" },
			wantErr: ErrDBNameEmpty,
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.DB.Engine = "sqlite"
				c.DB.Path = ""
			},
			wantErr: ErrDBPathEmpty,
		},
		{
			name: "sqlite needs no credentials",
			mutate: func(c *Config) {
				c.DB.Engine = "sqlite"
				c.DB.Path = "cards.db"
				c.DB.User = ""
				c.DB.Host = ""
				c.DB.Name = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidationRejectsBadEngine(t *testing.T) {
	cfg := Config{}
	cfg.DB = DB{Engine: "mssql", Host: "localhost", User: "u", Name: "db"}
	cfg.Scryfall = Scryfall{BaseURL: "https://api.scryfall.com", TimeoutSeconds: 300}
	cfg.HTTP = HTTPServer{Port: 8080}
	cfg.Sync = Sync{Schedule: "@daily"}

	if err := validate(&cfg); err == nil {
		t.Error("validate() should reject an unknown engine")
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"DB":{"Host":"db.internal"},"HTTP":{"Port":9090}}`
	t.Setenv("SCRYDB_CONFIG_JSON", jsonOverride)

	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.DB.Host != "db.internal" {
		t.Errorf("DB.Host = %q, want %q", cfg.DB.Host, "db.internal")
	}

	if cfg.HTTP.Port != 9090 {
		t.Errorf("HTTP.Port = %d, want %d", cfg.HTTP.Port, 9090)
	}

	// Values the override does not name stay from the file.
	if cfg.DB.User != "scryfall" {
		t.Errorf("DB.User = %q, want %q", cfg.DB.User, "scryfall")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "scryfall") {
		t.Error("DumpConfigJSON() output should contain the configured user")
	}
}
