package medalforge

import (
	"context"
	"fmt"
	"net/url"
)

// UsersService registers and manages end users.
type UsersService struct {
	c *Client
}

// Register creates a user on the MedalForge side.
func (s *UsersService) Register(ctx context.Context, req RegisterUserRequest) (*UserRegistrationResponse, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/users/register/", apiPrefix))
	if err != nil {
		return nil, err
	}

	data, err := s.c.post(ctx, u, req)
	if err != nil {
		return nil, err
	}

	resp := &UserRegistrationResponse{}
	if err = unmarshal(data, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// Get returns the user with the given id.
func (s *UsersService) Get(ctx context.Context, userID string) (*User, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/users/%s/", apiPrefix, url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}

	data, err := s.c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err = unmarshal(data, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update changes the fields set in req.
func (s *UsersService) Update(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	u, err := s.c.endpoint(fmt.Sprintf("%s/users/%s/", apiPrefix, url.PathEscape(userID)))
	if err != nil {
		return nil, err
	}

	data, err := s.c.post(ctx, u, req)
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err = unmarshal(data, user); err != nil {
		return nil, err
	}

	return user, nil
}
