package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadYAML(t *testing.T, doc string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigType("yaml")
	setDefaults()
	if err := viper.ReadConfig(strings.NewReader(doc)); err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	return fromViper()
}

func TestDefaults(t *testing.T) {
	cfg, err := loadYAML(t, "")
	if err != nil {
		t.Fatalf("fromViper() error = %v", err)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Parser.CacheSize != 1024 || cfg.Parser.CacheTTL != 10*time.Minute {
		t.Errorf("Parser = %+v", cfg.Parser)
	}
	if cfg.Enhancer.Enabled || cfg.Enhancer.Timeout != 8*time.Second {
		t.Errorf("Enhancer = %+v", cfg.Enhancer)
	}
	if cfg.RateLimit.PerMin != 30 {
		t.Errorf("RateLimit.PerMin = %d, want 30", cfg.RateLimit.PerMin)
	}
}

func TestProvidersAndCorrections(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret")
	cfg, err := loadYAML(t, `
parser:
  timezone: Asia/Jerusalem
transcript:
  corrections:
    אלונה: אלון
enhancer:
  enabled: true
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.0-flash
`)
	if err != nil {
		t.Fatalf("fromViper() error = %v", err)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "secret" {
		t.Errorf("Providers = %+v", cfg.LLM.Providers)
	}
	if cfg.Transcript.Corrections["אלונה"] != "אלון" {
		t.Errorf("Corrections = %v", cfg.Transcript.Corrections)
	}
	loc, err := cfg.Parser.Location()
	if err != nil || loc.String() != "Asia/Jerusalem" {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestEnhancerNeedsProviders(t *testing.T) {
	if _, err := loadYAML(t, "enhancer:\n  enabled: true\n"); err == nil {
		t.Error("enabled enhancer without providers: error = nil")
	}
}

func TestBadTimezone(t *testing.T) {
	if _, err := loadYAML(t, "parser:\n  timezone: Mars/Olympus\n"); err == nil {
		t.Error("bad timezone: error = nil")
	}
}

func TestParserLocation(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		want    string
		wantErr bool
	}{
		{name: "empty is local", zone: "", want: time.Local.String()},
		{name: "named zone", zone: "Asia/Jerusalem", want: "Asia/Jerusalem"},
		{name: "utc", zone: "UTC", want: "UTC"},
		{name: "unknown zone", zone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParserConfig{Timezone: tt.zone}.Location()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Location() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !strings.HasPrefix(err.Error(), "parser.timezone: ") {
					t.Errorf("error = %q, want a parser.timezone prefix", err)
				}
				return
			}
			if loc.String() != tt.want {
				t.Errorf("Location() = %s, want %s", loc, tt.want)
			}
		})
	}
}
