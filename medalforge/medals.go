package medalforge

import (
	"context"
	"fmt"
	"net/url"
)

// MedalsService reads the medal catalog.
type MedalsService struct {
	c *Client
}

// Get returns a single medal.
func (s *MedalsService) Get(ctx context.Context, medalID string) (*Medal, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/medals/%s/", apiPrefix, url.PathEscape(medalID)))
	if err != nil {
		return nil, err
	}

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	medal := &Medal{}
	if err = unmarshal(data, medal); err != nil {
		return nil, err
	}

	return medal, nil
}

// List returns every medal matching opts. opts may be nil.
func (s *MedalsService) List(ctx context.Context, opts *ListOptions) ([]Medal, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/medals/", apiPrefix))
	if err != nil {
		return nil, err
	}
	u.RawQuery = opts.params().Encode()

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	medals := []Medal{}
	if err = unmarshal(data, &medals); err != nil {
		return nil, err
	}

	return medals, nil
}

// UserMedalsService manages the medals held by a user.
type UserMedalsService struct {
	c *Client
}

// GetAll returns the medals held by userID.
func (s *UserMedalsService) GetAll(ctx context.Context, userID string, opts *ListOptions) ([]Medal, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/medals/user/%s/", apiPrefix, url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}
	u.RawQuery = opts.params().Encode()

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	medals := []Medal{}
	if err = unmarshal(data, &medals); err != nil {
		return nil, err
	}

	return medals, nil
}

// Award grants medalID to userID.
func (s *UserMedalsService) Award(ctx context.Context, userID, medalID string) error {
	return s.grant(ctx, userID, medalID, "award")
}

// Revoke takes medalID away from userID.
func (s *UserMedalsService) Revoke(ctx context.Context, userID, medalID string) error {
	return s.grant(ctx, userID, medalID, "revoke")
}

func (s *UserMedalsService) grant(ctx context.Context, userID, medalID, action string) error {
	u, err := s.c.endpoint(fmt.Sprintf("%s/medals/user/%s/%s/", apiPrefix, url.PathEscape(userID), action))
	if err != nil {
		return err
	}

	_, err = s.c.post(ctx, u, medalGrantRequest{BadgeID: medalID})
	return err
}
