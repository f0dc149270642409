package models

// MemberState is the last known snapshot of one tracked light.
type MemberState struct {
	EntityID   string
	On         bool
	Attributes map[string]any
}

// AggregateState is the composite state of a group of lights, derived at query time.
// Nil fields are absent.
type AggregateState struct {
	Name       string         `json:"name"`
	On         bool           `json:"on"`
	Brightness *float64       `json:"brightness,omitempty"`
	ColorTemp  *int           `json:"color_temp,omitempty"`
	XYColor    *[2]float64    `json:"xy_color,omitempty"`
	RGBColor   *[3]int        `json:"rgb_color,omitempty"`
	Attributes map[string]any `json:"attributes"`
}

// a named group of member lights as read from config
type LightGroup struct {
	Name string `mapstructure:"name"`
	// entity ids of the members, in the order they are tracked
	Entities []string `mapstructure:"entities"`
	// group is only on when every member is on
	All bool `mapstructure:"all"`
	// derive an rgb colour from xy + brightness when the members don't report one
	DeriveRGB bool `mapstructure:"deriveRgb"`
	// group was created automatically rather than defined by the user
	Auto bool `mapstructure:"auto"`
}

// a member entry in a state snapshot file
type SnapshotEntry struct {
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}
