package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Banco struct {
	Host         string
	Porta        uint
	Nome         string
	Usuario      string
	Senha        string
	SecretID     string
	SSLDesativar bool
	MaxAbertas   int
	MaxOciosas   int
}

type Auth struct {
	ChavePublicaPath string
	KID              string
	Issuer           string
	Audience         string
}

type Config struct {
	HTTPAddr     string
	ServiceName  string
	LogLevel     string
	Banco        Banco
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopico  string
	Auth         Auth
	CORSOrigens  []string
	WebhookAlert string
}

// Load lê o .env (se existir) e monta a configuração a partir das variáveis de ambiente.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		ServiceName: getenv("SERVICE_NAME", "api-pedidos"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Banco: Banco{
			Host:         getenv("DB_HOST", "localhost"),
			Porta:        uint(getenvInt("DB_PORT", 5432)),
			Nome:         getenv("DB_NAME", "pedidos"),
			Usuario:      os.Getenv("DB_USERNAME"),
			Senha:        os.Getenv("DB_PASSWORD"),
			SecretID:     os.Getenv("DB_SECRET_ID"),
			SSLDesativar: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
			MaxAbertas:   getenvInt("DB_MAX_OPEN_CONNS", 20),
			MaxOciosas:   getenvInt("DB_MAX_IDLE_CONNS", 10),
		},
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopico:  getenv("KAFKA_TOPICO", "pedidos.eventos"),
		Auth: Auth{
			ChavePublicaPath: os.Getenv("AUTH_RSA_PUBLIC_PATH"),
			KID:              os.Getenv("AUTH_KID"),
			Issuer:           os.Getenv("AUTH_ISSUER"),
			Audience:         os.Getenv("AUTH_AUDIENCE"),
		},
		CORSOrigens:  splitCSV(getenv("CORS_ORIGINS", "http://localhost:3000")),
		WebhookAlert: os.Getenv("ALERTA_WEBHOOK_URL"),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
