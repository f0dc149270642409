package aggregate

import (
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

type groupStateProvider interface {
	Name() string
	State() string
	StateAttributes() map[string]any
	// snapshots of the tracked members, in tracking order
	TrackingStates() []models.MemberState
}

// LightStateProvider supplies the light specific part of a group's state attributes.
type LightStateProvider interface {
	LightStateAttributes() map[string]any
}

type Options struct {
	// add an rgb colour derived from xy + brightness when no member reports one
	DeriveRGB bool
}

// LightGroupAggregator presents a group of lights as a single light.
// Nothing is cached, every read is computed from the group's current member states.
type LightGroupAggregator struct {
	group   groupStateProvider
	options Options
	logger  *log.Logger
}

func NewLightGroupAggregator(logger *log.Logger, group groupStateProvider, options Options) *LightGroupAggregator {
	return &LightGroupAggregator{group: group, options: options, logger: logger}
}

func (a *LightGroupAggregator) IsOn() bool {
	return a.group.State() == constants.StateOn
}

func (a *LightGroupAggregator) Brightness() (float64, bool) {
	return MeanBrightness(a.group.TrackingStates())
}

func (a *LightGroupAggregator) ColorTemp() (int, bool) {
	return a.colorTempOf(a.group.TrackingStates())
}

func (a *LightGroupAggregator) XYColor() ([2]float64, bool) {
	return a.xyColorOf(a.group.TrackingStates())
}

func (a *LightGroupAggregator) RGBColor() ([3]int, bool) {
	return a.rgbColorOf(a.group.TrackingStates())
}

// LightStateAttributes returns the light attributes that are present, keyed by attribute name.
func (a *LightGroupAggregator) LightStateAttributes() map[string]any {
	return a.lightStateAttributesOf(a.group.TrackingStates())
}

// StateAttributes merges the light attributes with the group's own attributes.
// Group attributes win on a key collision.
func (a *LightGroupAggregator) StateAttributes() map[string]any {
	return MergeStateAttributes(a, a.group)
}

// Snapshot computes every field from a single read of the member states.
func (a *LightGroupAggregator) Snapshot() models.AggregateState {
	members := a.group.TrackingStates()
	light := a.lightStateAttributesOf(members)

	state := models.AggregateState{
		Name:       a.group.Name(),
		On:         a.IsOn(),
		Attributes: lo.Assign(light, a.group.StateAttributes()),
	}
	if b, ok := light[constants.AttrBrightness].(float64); ok {
		state.Brightness = &b
	}
	if ct, ok := light[constants.AttrColorTemp].(int); ok {
		state.ColorTemp = &ct
	}
	if xy, ok := light[constants.AttrXYColor].([2]float64); ok {
		state.XYColor = &xy
	}
	if rgb, ok := light[constants.AttrRGBColor].([3]int); ok {
		state.RGBColor = &rgb
	}
	return state
}

func (a *LightGroupAggregator) lightStateAttributesOf(members []models.MemberState) map[string]any {
	data := map[string]any{}

	brightness, hasBrightness := MeanBrightness(members)
	if hasBrightness {
		data[constants.AttrBrightness] = brightness
	}
	if ct, ok := a.colorTempOf(members); ok {
		data[constants.AttrColorTemp] = ct
	}
	xy, hasXY := a.xyColorOf(members)
	if hasXY {
		data[constants.AttrXYColor] = xy
	}
	if rgb, ok := a.rgbColorOf(members); ok {
		data[constants.AttrRGBColor] = rgb
	} else if a.options.DeriveRGB && hasXY && hasBrightness {
		data[constants.AttrRGBColor] = xyBrightnessToRGB(xy, brightness)
	}

	return data
}

func (a *LightGroupAggregator) colorTempOf(members []models.MemberState) (int, bool) {
	v, ok := FirstPresent(members, constants.AttrColorTemp)
	if !ok {
		return 0, false
	}
	ct, err := cast.ToIntE(v)
	if err != nil {
		a.logger.Debug("ignoring malformed attribute", "group", a.group.Name(), "attr", constants.AttrColorTemp, "value", v)
		return 0, false
	}
	return ct, true
}

func (a *LightGroupAggregator) xyColorOf(members []models.MemberState) ([2]float64, bool) {
	v, ok := FirstPresent(members, constants.AttrXYColor)
	if !ok {
		return [2]float64{}, false
	}
	xy, ok := toXY(v)
	if !ok {
		a.logger.Debug("ignoring malformed attribute", "group", a.group.Name(), "attr", constants.AttrXYColor, "value", v)
	}
	return xy, ok
}

func (a *LightGroupAggregator) rgbColorOf(members []models.MemberState) ([3]int, bool) {
	v, ok := FirstPresent(members, constants.AttrRGBColor)
	if !ok {
		return [3]int{}, false
	}
	rgb, ok := toRGB(v)
	if !ok {
		a.logger.Debug("ignoring malformed attribute", "group", a.group.Name(), "attr", constants.AttrRGBColor, "value", v)
	}
	return rgb, ok
}

func MergeStateAttributes(light LightStateProvider, group interface{ StateAttributes() map[string]any }) map[string]any {
	return lo.Assign(light.LightStateAttributes(), group.StateAttributes())
}

// brightness is on the 0-255 scale
func xyBrightnessToRGB(xy [2]float64, brightness float64) [3]int {
	c := colorful.Xyy(xy[0], xy[1], brightness/constants.HueMaxBrightness).Clamped()
	r, g, b := c.RGB255()
	return [3]int{int(r), int(g), int(b)}
}
