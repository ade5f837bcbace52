package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, endpoint string) {
	t.Setenv("MEDALFORGE_API_KEY", "pk_cli")
	t.Setenv("MEDALFORGE_SECRET_KEY", "sk_cli")
	t.Setenv("MEDALFORGE_ENVIRONMENT", "custom")
	t.Setenv("MEDALFORGE_ENDPOINT", endpoint)
	t.Setenv("MEDALFORGE_CONFIG", "")
	t.Setenv("MEDALFORGE_TIMEOUT", "")
	t.Setenv("MEDALFORGE_DEBUG", "")
}

func TestLoadConfig_Layers(t *testing.T) {
	t.Setenv("MEDALFORGE_API_KEY", "")
	t.Setenv("MEDALFORGE_SECRET_KEY", "")
	t.Setenv("MEDALFORGE_ENVIRONMENT", "")
	t.Setenv("MEDALFORGE_ENDPOINT", "")
	t.Setenv("MEDALFORGE_CONFIG", "")
	t.Setenv("MEDALFORGE_DEBUG", "")
	t.Setenv("MEDALFORGE_TIMEOUT", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	path := filepath.Join(t.TempDir(), "medalforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_key: file_key\nsecret_key: file_secret\nenvironment: staging\ntimeout: 3s\n"), 0o600))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file_key", cfg.APIKey)
	assert.Equal(t, "file_secret", cfg.SecretKey)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 3*time.Second, cfg.Timeout)

	// env wins over the file
	t.Setenv("MEDALFORGE_API_KEY", "env_key")
	t.Setenv("MEDALFORGE_CONFIG", path)
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env_key", cfg.APIKey)
	assert.Equal(t, "file_secret", cfg.SecretKey)

	opts := cfg.ClientOpts()
	assert.False(t, *opts.AutoShowModal)
	assert.Equal(t, "staging", string(opts.Environment))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), nil, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "user-medals")

	stderr.Reset()
	err = run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}

func TestRun_ConfigurationError(t *testing.T) {
	setEnv(t, "")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"medals"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CustomEndpoint")
}

func TestRun_Commands(t *testing.T) {
	type call struct {
		method string
		path   string
		query  string
		body   string
	}
	var last call
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = call{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(body)}
		assert.Equal(t, "pk_cli", r.Header.Get("api-key"))

		switch r.URL.Path {
		case "/api/v1/events/":
			fmt.Fprint(w, `{"event":"medal_unlocked","success":true,"medal":{"id":"m1","name":"Pioneer"}}`)
		case "/api/v1/events/users/u1/events/":
			fmt.Fprint(w, `[{"event":"login","timestamp":"2024-01-01T00:00:00Z"}]`)
		case "/api/v1/events/medals/user/u1/":
			fmt.Fprint(w, `[{"id":"m1","name":"Pioneer"},{"id":"m2","name":"Veteran"}]`)
		case "/api/v1/events/medals/user/u1/award/":
			fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"not found","code":"NOT_FOUND"}`)
		}
	}))
	defer ts.Close()
	setEnv(t, ts.URL)

	var stdout, stderr bytes.Buffer
	exec := func(args ...string) error {
		stdout.Reset()
		stderr.Reset()
		return run(context.Background(), args, &stdout, &stderr)
	}

	require.NoError(t, exec("track", "-priority", "2", "login", "u1", "count=3", "page=home"))
	assert.Equal(t, http.MethodPost, last.method)
	assert.JSONEq(t, `{"event":"login","user_id":"u1","metadata":{"count":3,"page":"home"},"options":{"priority":2}}`, last.body)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "medal_unlocked", resp["event"])

	require.NoError(t, exec("track", "-html", "login", "u1"))
	assert.Contains(t, stdout.String(), `data-medalforge="modal"`)
	assert.Contains(t, stdout.String(), "Pioneer")

	require.NoError(t, exec("history", "-limit", "5", "u1"))
	assert.Equal(t, "limit=5", last.query)
	assert.Contains(t, stdout.String(), `"event": "login"`)

	require.NoError(t, exec("user-medals", "-rarity", "rare,epic", "u1"))
	assert.Equal(t, "rarityFilter=rare%2Cepic", last.query)

	require.NoError(t, exec("award", "u1", "m7"))
	assert.JSONEq(t, `{"badgeId":"m7"}`, last.body)

	require.NoError(t, exec("render", "u1"))
	assert.Contains(t, stdout.String(), `data-medalforge="gallery"`)
	assert.Contains(t, stdout.String(), "Veteran")

	require.NoError(t, exec("render", "-container", "u1"))
	assert.Contains(t, stdout.String(), `data-medalforge="container"`)

	err := exec("medal", "missing")
	require.Error(t, err)
	assert.Equal(t, "not found (HTTP 404, Code NOT_FOUND)", err.Error())

	require.ErrorIs(t, exec("award", "u1"), errUsage)
}

func TestParseMetadata(t *testing.T) {
	md, err := parseMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, md)

	md, err = parseMetadata([]string{"n=1.5", "ok=true", "name=ada", "raw={\"a\":1}"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"n":    1.5,
		"ok":   true,
		"name": "ada",
		"raw":  map[string]interface{}{"a": float64(1)},
	}, md)

	_, err = parseMetadata([]string{"novalue"})
	require.Error(t, err)
}
