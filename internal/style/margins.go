package style

import "fmt"

// Margins are cell margins in inches
type Margins struct {
	Top, Bottom, Left, Right float64
}

// "tight" does not exist in Office, it is half of "narrow"
var marginPresets = map[string]Margins{
	"normal": {Top: 0.05, Bottom: 0.05, Left: 0.1, Right: 0.1},
	"none":   {},
	"narrow": {Top: 0.05, Bottom: 0.05, Left: 0.05, Right: 0.05},
	"wide":   {Top: 0.15, Bottom: 0.15, Left: 0.15, Right: 0.15},
	"tight":  {Top: 0.025, Bottom: 0.025, Left: 0.025, Right: 0.025},
}

// MarginPreset looks up one of normal, none, narrow, wide or tight
func MarginPreset(name string) (Margins, error) {
	m, ok := marginPresets[name]
	if !ok {
		return Margins{}, fmt.Errorf("%w: %q", ErrMargins, name)
	}
	return m, nil
}
