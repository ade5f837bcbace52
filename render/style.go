package render

import (
	"encoding/json"
	"strings"
)

// Style is the visual description attached to a medal or badge.
// Empty fields take the defaults listed in Defaults.
type Style struct {
	Size    string  `json:"size,omitempty"`
	Color   string  `json:"color,omitempty"`
	Format  string  `json:"format,omitempty"`
	Texture string  `json:"texture,omitempty"`
	Icon    *Icon   `json:"icon,omitempty"`
	Rarity  *Rarity `json:"rarity,omitempty"`
}

type Icon struct {
	Name string `json:"name,omitempty"`
	Size string `json:"size,omitempty"`
}

// Rarity holds the border and glow classes of a rarity tier.
type Rarity struct {
	BorderClass string `json:"border_class,omitempty"`
	GlowClass   string `json:"glow_class,omitempty"`
}

// UnmarshalJSON accepts both snake_case and camelCase class keys.
func (r *Rarity) UnmarshalJSON(data []byte) error {
	var aux struct {
		BorderClass      string `json:"border_class"`
		GlowClass        string `json:"glow_class"`
		BorderClassCamel string `json:"borderClass"`
		GlowClassCamel   string `json:"glowClass"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.BorderClass = firstNonEmpty(aux.BorderClass, aux.BorderClassCamel)
	r.GlowClass = firstNonEmpty(aux.GlowClass, aux.GlowClassCamel)
	return nil
}

// Descriptor is a Style with every default applied.
type Descriptor struct {
	Size        string
	Format      string
	Texture     string
	Color       string
	BorderClass string
	GlowClass   string
	IconName    string
	IconSize    string
}

// Defaults is the single source of style defaults.
var Defaults = Descriptor{
	Size:        "w-24 h-24",
	Format:      "rounded-full",
	Texture:     "",
	Color:       "bg-blue-500",
	BorderClass: "border-2 border-white",
	GlowClass:   "",
	IconSize:    "w-10 h-10",
}

// Resolve applies Defaults to s. A nil style resolves to Defaults.
func Resolve(s *Style) Descriptor {
	d := Defaults
	if s == nil {
		return d
	}

	d.Size = firstNonEmpty(s.Size, d.Size)
	d.Format = firstNonEmpty(s.Format, d.Format)
	d.Texture = firstNonEmpty(s.Texture, d.Texture)
	d.Color = firstNonEmpty(s.Color, d.Color)
	if s.Rarity != nil {
		d.BorderClass = firstNonEmpty(s.Rarity.BorderClass, d.BorderClass)
		d.GlowClass = firstNonEmpty(s.Rarity.GlowClass, d.GlowClass)
	}
	if s.Icon != nil {
		d.IconName = s.Icon.Name
		d.IconSize = firstNonEmpty(s.Icon.Size, d.IconSize)
	}
	return d
}

// Gradient reports whether the texture needs a color overlay layer.
func (d Descriptor) Gradient() bool {
	return strings.Contains(d.Texture, "gradient")
}

// Classes returns the class list of the medal shape.
func (d Descriptor) Classes() string {
	return joinClasses(
		"group", d.Size, d.Format, d.Texture, d.Color, d.BorderClass, d.GlowClass,
		"flex items-center justify-center relative overflow-hidden",
		"transition-all duration-300 hover:scale-105 mx-auto mb-4",
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// joinClasses joins class lists, dropping empty entries and extra spaces.
func joinClasses(classes ...string) string {
	return strings.Join(strings.Fields(strings.Join(classes, " ")), " ")
}
