package medalforge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalforge/medalforge-go/render"
)

const unlockedResponse = `{"event":"medal_unlocked","success":true,
	"medal":{"id":"m1","name":"First Steps","description":"Finished onboarding","styles":{"color":"bg-green-500","icon":{"name":"Rocket"}}}}`

func TestTrack_Request(t *testing.T) {
	c := testClient(t, ClientOpts{AutoShowModal: Bool(false)})
	rec := &recorder{}
	rec.stub(c, http.StatusOK, map[string]interface{}{"event": "page_view", "success": true})

	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	resp, err := c.Events.Track(context.Background(), "page_view", "u1",
		map[string]interface{}{"page": "/home"},
		&TrackOptions{Timestamp: &ts, Priority: 2})
	require.NoError(t, err)
	assert.Equal(t, "page_view", resp.Event)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Medal)
	assert.JSONEq(t, `{"event":"page_view","success":true}`, string(resp.Raw))

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v1/events/", rec.path)
	assert.JSONEq(t, `{
		"event": "page_view",
		"user_id": "u1",
		"metadata": {"page": "/home"},
		"options": {"timestamp": "2024-03-01T15:30:00.000Z", "priority": 2}
	}`, string(rec.body))

	_, err = c.Events.Track(context.Background(), "login", "u2", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"login","user_id":"u2"}`, string(rec.body))
}

func TestTrack_AutoShowsUnlockedMedal(t *testing.T) {
	body := render.NewBody()
	c := testClient(t, ClientOpts{ModalContainer: body})
	rec := &recorder{}
	rec.stub(c, http.StatusOK, json.RawMessage(unlockedResponse))

	resp, err := c.Events.Track(context.Background(), "login", "u1", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Medal)
	assert.Equal(t, "m1", resp.Medal.ID)

	require.Eventually(t, func() bool { return len(body.Elements()) == 1 }, time.Second, 5*time.Millisecond)
	el := body.Elements()[0]
	assert.Equal(t, render.KindModal, el.Kind)
	assert.Equal(t, "m1", el.ID)
	assert.Contains(t, string(el.HTML), "First Steps")
	assert.Contains(t, string(el.HTML), render.IconPath("Rocket"))
}

func TestTrack_AutoShowsUnlockedBadge(t *testing.T) {
	body := render.NewBody()
	c := testClient(t, ClientOpts{ModalContainer: body})
	rec := &recorder{}
	rec.stub(c, http.StatusOK, json.RawMessage(
		`{"event":"badge_unlocked","success":true,"badge":{"id":"b1","name":"Explorer"},"verification_url":"https://verify.example.com/b1"}`))

	_, err := c.Events.Track(context.Background(), "visit", "u1", nil, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(body.Elements()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Contains(t, string(body.Elements()[0].HTML), "https://verify.example.com/b1")
}

func TestTrack_NoAutoShow(t *testing.T) {
	tests := []struct {
		name     string
		autoShow *bool
		opts     *TrackOptions
		response string
	}{
		{
			name:     "disabled",
			autoShow: Bool(false),
			response: unlockedResponse,
		},
		{
			name:     "silent",
			opts:     &TrackOptions{Silent: true},
			response: unlockedResponse,
		},
		{
			name:     "not an unlock",
			response: `{"event":"login","success":true}`,
		},
		{
			name:     "unlock without medal",
			response: `{"event":"medal_unlocked","success":true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := render.NewBody()
			c := testClient(t, ClientOpts{ModalContainer: body, AutoShowModal: tt.autoShow})
			rec := &recorder{}
			rec.stub(c, http.StatusOK, json.RawMessage(tt.response))

			_, err := c.Events.Track(context.Background(), "login", "u1", nil, tt.opts)
			require.NoError(t, err)
			assert.Never(t, func() bool { return len(body.Elements()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
		})
	}
}

func TestTrack_RenderFailureDoesNotChangeResult(t *testing.T) {
	mounted := make(chan struct{}, 2)
	targets := []render.Target{
		render.TargetFunc(func(render.Element) error {
			mounted <- struct{}{}
			return errors.New("container detached")
		}),
		render.TargetFunc(func(render.Element) error {
			mounted <- struct{}{}
			panic("host exploded")
		}),
	}

	for _, target := range targets {
		withShow := testClient(t, ClientOpts{ModalContainer: target})
		withoutShow := testClient(t, ClientOpts{AutoShowModal: Bool(false)})
		for _, c := range []*Client{withShow, withoutShow} {
			rec := &recorder{}
			rec.stub(c, http.StatusOK, json.RawMessage(unlockedResponse))
		}

		a, errA := withShow.Events.Track(context.Background(), "login", "u1", nil, nil)
		b, errB := withoutShow.Events.Track(context.Background(), "login", "u1", nil, nil)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, b, a)

		select {
		case <-mounted:
		case <-time.After(time.Second):
			t.Fatal("modal was never mounted")
		}
	}
}

func TestTrack_Error(t *testing.T) {
	body := render.NewBody()
	c := testClient(t, ClientOpts{ModalContainer: body})
	rec := &recorder{}
	rec.stub(c, http.StatusBadRequest, map[string]string{"error": "unknown event"})

	resp, err := c.Events.Track(context.Background(), "nope", "u1", nil, nil)
	assert.Nil(t, resp)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, strings.HasPrefix(apiErr.Error(), "unknown event (HTTP 400"))
	assert.Empty(t, body.Elements())
}
