package medalforge

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/medalforge/medalforge-go/common"
	"github.com/medalforge/medalforge-go/internal/authn"
	"github.com/medalforge/medalforge-go/render"
)

// Environment selects the MedalForge deployment the client talks to.
type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
	// Custom requires ClientOpts.CustomEndpoint.
	Custom Environment = "custom"
)

var endpoints = map[Environment]string{
	Production:  "https://api.medalforge.com",
	Staging:     "https://api.staging.medalforge.com",
	Development: "http://localhost:8000",
}

// DefaultTimeout is the per-request budget when ClientOpts.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// ClientOpts contains options for the MedalForge client.
type ClientOpts struct {
	// APIKey and SecretKey fall back to MEDALFORGE_API_KEY and
	// MEDALFORGE_SECRET_KEY when empty.
	APIKey    string `validate:"required"`
	SecretKey string `validate:"required"`
	// Debug logs every request (api-key redacted) and every failure.
	Debug bool
	// AutoShowModal shows the unlock modal after Events.Track. Defaults to true.
	AutoShowModal *bool
	// Environment defaults to Production.
	Environment    Environment `validate:"oneof=production staging development custom"`
	CustomEndpoint string      `validate:"required_if=Environment custom"`
	// ModalContainer is where unlock modals are mounted. Defaults to an in-memory render.Body.
	ModalContainer render.Target `validate:"-"`
	// Timeout is the per-request budget. Defaults to DefaultTimeout.
	Timeout    time.Duration `validate:"gte=0"`
	HTTPClient *http.Client  `validate:"-"`
	// Logger receives debug output. Only used when Debug is set.
	Logger *zerolog.Logger `validate:"-"`
}

// Bool returns a pointer to v, for optional settings such as AutoShowModal.
func Bool(v bool) *bool {
	return &v
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (o *ClientOpts) applyDefaults() {
	creds := authn.Credentials{APIKey: o.APIKey, SecretKey: o.SecretKey}
	creds.FillFromEnv()
	o.APIKey, o.SecretKey = creds.APIKey, creds.SecretKey

	if o.Environment == "" {
		if s := os.Getenv(common.EnvEnvironment); s != "" {
			o.Environment = Environment(strings.ToLower(s))
		} else {
			o.Environment = Production
		}
	}
	if o.CustomEndpoint == "" {
		o.CustomEndpoint = os.Getenv(common.EnvEndpoint)
	}
	if o.AutoShowModal == nil {
		o.AutoShowModal = Bool(true)
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.ModalContainer == nil {
		o.ModalContainer = render.NewBody()
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
}

func (o *ClientOpts) validate() error {
	err := getValidator().Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ConfigurationError{Reason: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	return &ConfigurationError{
		Field:  fe.Field(),
		Reason: describeFieldError(fe),
		Err:    err,
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when environment is custom"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "gte":
		return "must not be negative"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// resolveBaseURL returns the origin requests are sent to, without a trailing slash.
func (o *ClientOpts) resolveBaseURL() (string, error) {
	if o.Environment != Custom {
		return endpoints[o.Environment], nil
	}

	u, err := url.Parse(o.CustomEndpoint)
	if err != nil {
		return "", &ConfigurationError{Field: "CustomEndpoint", Reason: "is not a valid URL", Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &ConfigurationError{
			Field:  "CustomEndpoint",
			Reason: fmt.Sprintf("must be an absolute http(s) URL, got %q", o.CustomEndpoint),
		}
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", &ConfigurationError{
			Field:  "CustomEndpoint",
			Reason: fmt.Sprintf("must not carry a query or fragment, got %q", o.CustomEndpoint),
		}
	}
	return strings.TrimRight(o.CustomEndpoint, "/"), nil
}
