package medalforge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"

	"github.com/medalforge/medalforge-go/internal/authn"
	"github.com/medalforge/medalforge-go/render"
)

const apiPrefix = "api/v1/events"

// Client is the MedalForge client. It is safe for concurrent use.
type Client struct {
	opts    ClientOpts
	baseURL string
	auth    *authn.RestAuthProvider
	log     zerolog.Logger

	Users      *UsersService
	Medals     *MedalsService
	UserMedals *UserMedalsService
	Badges     *BadgesService
	Events     *EventsService
	// Viewer renders medals and badges into ClientOpts.ModalContainer.
	Viewer *render.Renderer

	do func(c *Client, req *http.Request) (*http.Response, error)
}

// NewClient validates opts and creates a new MedalForge client.
// Empty credentials and environment are read from MEDALFORGE_* variables.
// It returns a *ConfigurationError when opts are unusable.
func NewClient(opts ClientOpts) (*Client, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	baseURL, err := opts.resolveBaseURL()
	if err != nil {
		return nil, err
	}

	auth, err := authn.NewRestAuthProvider(authn.RestAuthProviderOptions{
		Credentials: authn.Credentials{
			APIKey:    opts.APIKey,
			SecretKey: opts.SecretKey,
		},
	})
	if err != nil {
		return nil, &ConfigurationError{Field: "SecretKey", Reason: err.Error(), Err: err}
	}

	c := &Client{
		opts:    opts,
		baseURL: baseURL,
		auth:    auth,
		log:     newLogger(opts),

		do: defaultDo,
	}
	c.Users = &UsersService{c: c}
	c.Medals = &MedalsService{c: c}
	c.UserMedals = &UserMedalsService{c: c}
	c.Badges = &BadgesService{c: c}
	c.Events = &EventsService{c: c}
	c.Viewer = render.NewRenderer(render.RendererOpts{
		Target: opts.ModalContainer,
		Logger: c.log,
	})

	c.log.Debug().
		Str("environment", string(opts.Environment)).
		Str("base_url", baseURL).
		Str("api_key", authn.RedactKey(opts.APIKey)).
		Bool("auto_show_modal", *opts.AutoShowModal).
		Dur("timeout", opts.Timeout).
		Msg("medalforge client initialized")

	return c, nil
}

// BaseURL returns the origin every request is sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Environment returns the resolved environment.
func (c *Client) Environment() Environment {
	return c.opts.Environment
}

func defaultDo(c *Client, req *http.Request) (*http.Response, error) {
	signed, err := c.auth.SetAuthHeader(req)
	if err != nil {
		return nil, &ConfigurationError{Field: "SecretKey", Reason: err.Error(), Err: err}
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dict("headers", zerolog.Dict().
			Str("content-type", req.Header.Get("Content-Type")).
			Str(authn.HeaderAPIKey, "***").
			Str(authn.HeaderNonce, signed.Nonce).
			Str(authn.HeaderTimestamp, signed.Timestamp).
			Str(authn.HeaderSignature, truncate(signed.Signature, 8))).
		Msg("sending request")

	return c.opts.HTTPClient.Do(req)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// endpoint joins path onto the base URL. path must not start with a scheme.
func (c *Client) endpoint(path string) (*url.URL, error) {
	u, err := url.Parse(fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/")))
	if err != nil {
		return nil, &UnknownError{Err: err}
	}
	return u, nil
}

// Get sends a signed GET to path with params encoded in order and
// returns the JSON body.
func (c *Client) Get(ctx context.Context, path string, params Params) (json.RawMessage, error) {
	u, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}
	u.RawQuery = params.Encode()

	return c.get(ctx, u)
}

// Post sends body as JSON to path and returns the JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	u, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	return c.post(ctx, u, body)
}

func (c *Client) get(ctx context.Context, u *url.URL) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, u, nil)
}

// post sends data as JSON. A nil data sends no body.
func (c *Client) post(ctx context.Context, u *url.URL, data interface{}) (json.RawMessage, error) {
	if data == nil {
		return c.request(ctx, http.MethodPost, u, nil)
	}

	buf, err := marshal(data)
	if err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	return c.request(ctx, http.MethodPost, u, buf)
}

func (c *Client) request(ctx context.Context, method string, u *url.URL, body []byte) (data json.RawMessage, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	defer func() {
		if err != nil {
			c.log.Debug().Err(err).Str("method", method).Str("url", u.String()).Msg("request failed")
		}
	}()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.send(req)
	if err != nil {
		return nil, normalizeError(err)
	}

	var raw []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		// The body must be read before cancel runs.
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, normalizeError(err)
		}
	}

	if err = verify(resp, raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, &UnknownError{Err: errors.New("response body is not valid JSON")}
	}

	return raw, nil
}

// send calls the do hook, turning a panic into an error.
func (c *Client) send(req *http.Request) (resp *http.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &UnknownError{Err: fmt.Errorf("panic during request: %v", r)}
		}
	}()

	resp, err = c.do(c, req)
	if err == nil && resp == nil {
		err = &UnknownError{Err: errors.New("no response")}
	}
	return resp, err
}

func marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(easyjson.Marshaler); ok {
		return easyjson.Marshal(m)
	}
	return json.Marshal(v)
}

// unmarshal decodes data into v. An empty body leaves v untouched.
func unmarshal(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return nil
	}

	var err error
	if u, ok := v.(easyjson.Unmarshaler); ok {
		err = easyjson.Unmarshal(data, u)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return &UnknownError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
