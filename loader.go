package rxhttp

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig reads client configuration from a YAML file, with environment
// variables (prefix RXHTTP_, e.g. RXHTTP_BASE_URL) overriding file values.
// A .env file in the working directory is loaded first when present. Path may
// be empty to configure from environment alone.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("rxhttp: load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("RXHTTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("rxhttp: read config %s: %w", path, err)
		}
	}

	// Bind explicitly so env-only keys resolve without a file.
	for _, key := range []string{
		"base_url", "timeout", "raw_stream_accept",
		"success_from", "success_to",
		"tls.skip_verify", "tls.ca_file", "tls.cert_file", "tls.key_file",
		"tls.server_name",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("rxhttp: bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("rxhttp: unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
