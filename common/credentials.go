package common

import (
	"os"
)

const (
	EnvAPIKey      = "MEDALFORGE_API_KEY"
	EnvSecretKey   = "MEDALFORGE_SECRET_KEY"
	EnvEnvironment = "MEDALFORGE_ENVIRONMENT"
	EnvEndpoint    = "MEDALFORGE_ENDPOINT"
)

type APIKey struct {
	ID     string
	Secret string
}

// Credentials returns the user's MedalForge API key
// and secret key for use through the SDK.
func Credentials() *APIKey {
	return &APIKey{
		ID:     os.Getenv(EnvAPIKey),
		Secret: os.Getenv(EnvSecretKey),
	}
}
