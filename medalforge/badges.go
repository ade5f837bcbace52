package medalforge

import (
	"context"
	"fmt"
	"net/url"
)

// BadgesService reads badges and the badges held by users.
type BadgesService struct {
	c *Client
}

// GetUserBadges returns the badges held by userID, with progress when
// opts.IncludeProgress is set.
func (s *BadgesService) GetUserBadges(ctx context.Context, userID string, opts *ListOptions) ([]Badge, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/users/%s/badges/", apiPrefix, url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}
	u.RawQuery = opts.params().Encode()

	return s.list(ctx, u)
}

// Get returns a single badge.
func (s *BadgesService) Get(ctx context.Context, badgeID string) (*Badge, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/badges/%s/", apiPrefix, url.PathEscape(badgeID)))
	if err != nil {
		return nil, err
	}

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	badge := &Badge{}
	if err = unmarshal(data, badge); err != nil {
		return nil, err
	}

	return badge, nil
}

// List returns every badge matching opts. opts may be nil.
func (s *BadgesService) List(ctx context.Context, opts *ListOptions) ([]Badge, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/badges/", apiPrefix))
	if err != nil {
		return nil, err
	}
	u.RawQuery = opts.params().Encode()

	return s.list(ctx, u)
}

func (s *BadgesService) list(ctx context.Context, u *url.URL) ([]Badge, error) {
	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	badges := []Badge{}
	if err = unmarshal(data, &badges); err != nil {
		return nil, err
	}

	return badges, nil
}
