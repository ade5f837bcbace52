package medalforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Encode(t *testing.T) {
	var nilBool *bool
	tests := []struct {
		name   string
		params Params
		exp    string
	}{
		{
			name:   "insertion order",
			params: Params{}.Add("z", 1).Add("a", "x").Add("m", true),
			exp:    "z=1&a=x&m=true",
		},
		{
			name:   "nil dropped",
			params: Params{}.Add("a", 1).Add("b", nil).Add("c", "x"),
			exp:    "a=1&c=x",
		},
		{
			name:   "nil pointer dropped",
			params: Params{}.Add("a", nilBool).Add("b", Bool(false)),
			exp:    "b=false",
		},
		{
			name:   "numbers",
			params: Params{}.Add("i", 25).Add("f", 1.5).Add("n", int64(-3)),
			exp:    "i=25&f=1.5&n=-3",
		},
		{
			name:   "escaped",
			params: Params{}.Add("q", "a b&c"),
			exp:    "q=a+b%26c",
		},
		{
			name:   "string slice joined",
			params: Params{}.Add("r", []string{"rare", "epic"}),
			exp:    "r=rare%2Cepic",
		},
		{
			name:   "empty",
			params: nil,
			exp:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, tt.params.Encode())
		})
	}
}

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV([]Rarity{}))
	assert.Nil(t, CSV[string](nil))
	assert.Equal(t, "rare,epic", CSV([]Rarity{Rare, Epic}))
}

func TestListOptions_Params(t *testing.T) {
	var opts *ListOptions
	assert.Empty(t, opts.params().Encode())

	opts = &ListOptions{
		RarityFilter:    []Rarity{Legendary, Common},
		OnlyUnlocked:    Bool(true),
		IncludeProgress: Bool(false),
	}
	assert.Equal(t, "includeProgress=false&onlyUnlocked=true&rarityFilter=legendary%2Ccommon", opts.params().Encode())

	opts = &ListOptions{OnlyUnlocked: Bool(true)}
	assert.Equal(t, "onlyUnlocked=true", opts.params().Encode())
}
