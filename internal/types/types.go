package types

// Preset is a saved axis configuration that can be rendered by name.
type Preset struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	YMin            float64 `json:"y_min"`
	YMax            float64 `json:"y_max"`
	Mode            string  `json:"mode"` // e.g., "normal, percentage, wiggle"
	DefaultYExtents bool    `json:"default_y_extents"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	CreatedAt       string  `json:"created_at"`
}
