package medalforge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	// Required for easyjson generation
	_ "github.com/mailru/easyjson/gen"
	"github.com/shopspring/decimal"

	"github.com/medalforge/medalforge-go/render"
)

//go:generate go install github.com/mailru/easyjson/...@v0.7.7
//go:generate easyjson -snake_case $GOFILE

// Event names with built-in meaning.
const (
	EventMedalUnlocked = "medal_unlocked"
	EventBadgeUnlocked = "badge_unlocked"
)

// Rarity is a medal or badge rarity tier.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Style is the visual description the server attaches to medals and badges.
type Style = render.Style

//easyjson:json
type User struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt string                 `json:"created_at,omitempty"`
	UpdatedAt string                 `json:"updated_at,omitempty"`
}

type RegisterUserRequest struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name,omitempty"`
	Email    string                 `json:"email,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string                `json:"name,omitempty"`
	Email    *string                `json:"email,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

//easyjson:json
type UserRegistrationResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

//easyjson:json
type Medal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	TriggerType string   `json:"trigger_type,omitempty"`
	Description string   `json:"description,omitempty"`
	IsActive    FlexBool `json:"is_active"`
	UnlockedAt  string   `json:"unlockedAt,omitempty"`
	Styles      *Style   `json:"styles,omitempty"`
}

// Item converts m for the renderer.
func (m *Medal) Item() *render.Item {
	if m == nil {
		return nil
	}
	return &render.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Style:       m.Styles,
	}
}

//easyjson:json
type Badge struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	UnlockedAt      string           `json:"unlockedAt,omitempty"`
	Styles          *Style           `json:"styles,omitempty"`
	VerificationURL string           `json:"verificationUrl,omitempty"`
	Progress        *decimal.Decimal `json:"progress,omitempty"`
}

// Item converts b for the renderer.
func (b *Badge) Item() *render.Item {
	if b == nil {
		return nil
	}
	return &render.Item{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		Style:           b.Styles,
		Progress:        b.Progress,
		VerificationURL: b.VerificationURL,
	}
}

// TrackOptions tune a single tracked event.
type TrackOptions struct {
	// Silent suppresses the unlock modal for this event.
	Silent    bool
	Timestamp *time.Time
	// Priority defaults to 1 on the server when zero.
	Priority int
}

//easyjson:json
type TrackResponse struct {
	Event           string `json:"event"`
	Success         bool   `json:"success"`
	Medal           *Medal `json:"medal,omitempty"`
	Badge           *Badge `json:"badge,omitempty"`
	VerificationURL string `json:"verification_url,omitempty"`
	// Raw is the undecoded response body.
	Raw json.RawMessage `json:"-"`
}

// unlocked returns the item to show for an unlock event, if any.
func (r *TrackResponse) unlocked() *render.Item {
	switch r.Event {
	case EventMedalUnlocked:
		return r.Medal.Item()
	case EventBadgeUnlocked:
		item := r.Badge.Item()
		if item != nil && item.VerificationURL == "" {
			item.VerificationURL = r.VerificationURL
		}
		return item
	}
	return nil
}

//easyjson:json
type HistoryEntry struct {
	Event     string                 `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type BatchEvent struct {
	Event    string                 `json:"event"`
	UserID   string                 `json:"userId"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// FlexBool decodes booleans sent as JSON booleans, strings or numbers.
// Any non-zero number is true.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = false
		return nil
	}
	if v, err := strconv.ParseBool(s); err == nil {
		*b = FlexBool(v)
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid boolean %s", data)
	}
	*b = n != 0
	return nil
}
