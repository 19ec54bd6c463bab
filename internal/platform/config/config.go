package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration so main stays lean.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	KafkaBrokers            []string
	ConsumerGroup           string
	ParticipantDeletedTopic string
	AuditTopic              string

	PolicyDirectoryURL  string
	SubjectDirectoryURL string
	AccountServiceURL   string
	MailRelayURL        string

	JWTSigningKey string

	PolicyCacheTTL      time.Duration
	CollaboratorTimeout time.Duration
}

// FromEnv builds a Config from environment variables with development
// defaults. Empty DatabaseURL selects the in-memory stores; empty broker list
// disables the cascade consumer.
func FromEnv() Config {
	cfg := Config{
		Addr:                    getenv("CUSTODIA_ADDR", ":8080"),
		DatabaseURL:             os.Getenv("CUSTODIA_DATABASE_URL"),
		RedisURL:                os.Getenv("CUSTODIA_REDIS_URL"),
		ConsumerGroup:           getenv("CUSTODIA_CONSUMER_GROUP", "custodia"),
		ParticipantDeletedTopic: getenv("CUSTODIA_PARTICIPANT_DELETED_TOPIC", "participant.deleted"),
		AuditTopic:              getenv("CUSTODIA_AUDIT_TOPIC", "audit.deletions"),
		PolicyDirectoryURL:      getenv("CUSTODIA_POLICY_DIRECTORY_URL", "http://localhost:8081"),
		SubjectDirectoryURL:     getenv("CUSTODIA_SUBJECT_DIRECTORY_URL", "http://localhost:8082"),
		AccountServiceURL:       getenv("CUSTODIA_ACCOUNT_SERVICE_URL", "http://localhost:8083"),
		MailRelayURL:            getenv("CUSTODIA_MAIL_RELAY_URL", "http://localhost:8084"),
		JWTSigningKey:           getenv("CUSTODIA_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PolicyCacheTTL:          getduration("CUSTODIA_POLICY_CACHE_TTL", 5*time.Minute),
		CollaboratorTimeout:     getduration("CUSTODIA_COLLABORATOR_TIMEOUT", 5*time.Second),
	}

	if brokers := os.Getenv("CUSTODIA_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
