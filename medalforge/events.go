package medalforge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/medalforge/medalforge-go/render"
)

// DefaultHistoryLimit is used by GetHistory when limit is not positive.
const DefaultHistoryLimit = 25

// EventsService tracks user events and reads event history.
type EventsService struct {
	c *Client
}

// Track records event for userID. metadata and opts may be nil.
//
// When the server reports an unlock, AutoShowModal is on and opts is not
// Silent, the unlocked medal or badge is shown on the modal container in
// the background. Rendering never changes the returned response or error.
func (s *EventsService) Track(ctx context.Context, event, userID string, metadata map[string]interface{}, opts *TrackOptions) (*TrackResponse, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/", apiPrefix))
	if err != nil {
		return nil, err
	}

	data, err := s.c.post(ctx, u, trackRequest{
		Event:    event,
		UserID:   userID,
		Metadata: metadata,
		Options:  opts,
	})
	if err != nil {
		return nil, err
	}

	resp := &TrackResponse{}
	if err = unmarshal(data, resp); err != nil {
		return nil, err
	}
	resp.Raw = data

	if s.shouldShow(opts) {
		if item := resp.unlocked(); item != nil {
			go s.c.showUnlocked(item)
		}
	}

	return resp, nil
}

func (s *EventsService) shouldShow(opts *TrackOptions) bool {
	if opts != nil && opts.Silent {
		return false
	}
	return *s.c.opts.AutoShowModal
}

// showUnlocked renders item as a modal. Failures are only logged.
func (c *Client) showUnlocked(item *render.Item) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Str("id", item.ID).Msg("unlock modal panicked")
		}
	}()

	if _, err := c.Viewer.ShowModal(item, nil); err != nil {
		c.log.Error().Err(err).Str("id", item.ID).Msg("failed to show unlock modal")
	}
}

// BatchTrack records several events in one request.
func (s *EventsService) BatchTrack(ctx context.Context, events []BatchEvent) error {
	u, err := s.c.endpoint(fmt.Sprintf("%s/batch", apiPrefix))
	if err != nil {
		return err
	}

	_, err = s.c.post(ctx, u, batchTrackRequest{Events: events})
	return err
}

// GetHistory returns up to limit past events of userID.
func (s *EventsService) GetHistory(ctx context.Context, userID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	u, err := s.c.endpoint(fmt.Sprintf("%s/users/%s/events/", apiPrefix, url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}
	u.RawQuery = Params{}.Add("limit", limit).Encode()

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	history := []HistoryEntry{}
	if err = unmarshal(data, &history); err != nil {
		return nil, err
	}

	return history, nil
}
