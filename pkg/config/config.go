package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e
// opcionalmente de arquivo).
type Config struct {
	App      AppConfig
	API      APIConfig
	Download DownloadConfig
	Stub     StubConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig endereço e timeout da loja externa de contagens.
type APIConfig struct {
	BaseURL        string // base incluindo o prefixo /api
	TimeoutSeconds int
}

// Timeout devolve o timeout de requisição como duração.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DownloadConfig destino dos relatórios exportados.
type DownloadConfig struct {
	Dir string
}

// StubConfig endereço de escuta do servidor stub da loja.
type StubConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de
// arquivo). As env vars têm prioridade. Nomes esperados: APP_ENV,
// API_BASE_URL, DOWNLOAD_DIR, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "contagem-estoque"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Download: DownloadConfig{
			Dir: getString(v, "DOWNLOAD_DIR", "."),
		},
		Stub: StubConfig{
			Host: getString(v, "STUB_HOST", "0.0.0.0"),
			Port: getInt(v, "STUB_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
