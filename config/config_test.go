package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigReadsSecretsFromEnv(t *testing.T) {
	// Secrets only ever arrive via environment; viper must pick them up even
	// when no config file is present.
	t.Setenv("STRIPE_KEY", "sk_test_123")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASSWORD", "relay-secret")
	t.Setenv("CRM_API_KEY", "crm-token")
	t.Setenv("SUPPORT_EMAIL", "ops@example.com")

	LoadConfig()

	assert.Equal(t, "sk_test_123", AppConfig.StripeKey)
	assert.Equal(t, "mailer", AppConfig.SMTPUser)
	assert.Equal(t, "relay-secret", AppConfig.SMTPPassword)
	assert.Equal(t, "crm-token", AppConfig.CRMAPIKey)
	assert.Equal(t, "ops@example.com", AppConfig.SupportEmail)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "development")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "/api", AppConfig.APIBasePath)
	assert.Equal(t, "motorover", AppConfig.MongoDBName)
	assert.Equal(t, "INR", AppConfig.Currency)
	assert.Equal(t, "stripe", AppConfig.PaymentProvider)
	assert.False(t, IsProduction())
}
