package authn

import (
	"strings"

	"github.com/medalforge/medalforge-go/common"
)

type Credentials struct {
	APIKey    string
	SecretKey string
}

func CredentialsFromEnv() Credentials {
	key := common.Credentials()
	return Credentials{
		APIKey:    key.ID,
		SecretKey: key.Secret,
	}
}

// Redacted returns a form of the api key that is safe to log.
func (c Credentials) Redacted() string {
	return RedactKey(c.APIKey)
}

// RedactKey keeps at most the first four characters of key.
func RedactKey(key string) string {
	if len(key) <= 4 {
		return "***"
	}
	return key[:4] + strings.Repeat("*", 3)
}

// FillFromEnv sets empty keys from MEDALFORGE_API_KEY and MEDALFORGE_SECRET_KEY.
func (c *Credentials) FillFromEnv() {
	credsFromEnv := CredentialsFromEnv()
	if c.APIKey == "" {
		c.APIKey = credsFromEnv.APIKey
	}
	if c.SecretKey == "" {
		c.SecretKey = credsFromEnv.SecretKey
	}
}
