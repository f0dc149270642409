package aggregate_test

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/lightgroup/internal/aggregate"
	"github.com/wheelibin/lightgroup/internal/models"
	"github.com/wheelibin/lightgroup/mocks"
)

func newAggregator(t *testing.T, members []models.MemberState, options aggregate.Options) (*aggregate.LightGroupAggregator, *mocks.MockAggregateGroupStateProvider) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	mockGroup := mocks.NewMockAggregateGroupStateProvider(t)
	mockGroup.On("TrackingStates").Return(members).Maybe()
	mockGroup.On("Name").Return("test group").Maybe()
	return aggregate.NewLightGroupAggregator(logger, mockGroup, options), mockGroup
}

func Test_IsOn(t *testing.T) {

	tests := []struct {
		state    string
		expected bool
	}{
		{state: "on", expected: true},
		{state: "off", expected: false},
		{state: "unknown", expected: false},
	}

	for _, c := range tests {
		t.Run(c.state, func(t *testing.T) {
			a, mockGroup := newAggregator(t, nil, aggregate.Options{})
			mockGroup.On("State").Return(c.state)

			assert.Equal(t, c.expected, a.IsOn())
		})
	}
}

func Test_Brightness(t *testing.T) {

	t.Run("should average the members", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100}),
			member("b", map[string]any{"brightness": 200}),
		}, aggregate.Options{})

		b, ok := a.Brightness()

		assert.True(t, ok)
		assert.Equal(t, 150.0, b)
	})

	t.Run("should be absent when a member has no brightness", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100}),
			member("b", map[string]any{"color_temp": 300}),
		}, aggregate.Options{})

		_, ok := a.Brightness()

		assert.False(t, ok)
	})

	t.Run("should be absent with no members", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{}, aggregate.Options{})

		_, ok := a.Brightness()

		assert.False(t, ok)
	})
}

func Test_ColorTemp(t *testing.T) {

	t.Run("should use the first member", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"color_temp": 250}),
			member("b", map[string]any{"color_temp": 400}),
		}, aggregate.Options{})

		ct, ok := a.ColorTemp()

		assert.True(t, ok)
		assert.Equal(t, 250, ct)
	})

	t.Run("should accept a json number", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"color_temp": 366.0})}, aggregate.Options{})

		ct, ok := a.ColorTemp()

		assert.True(t, ok)
		assert.Equal(t, 366, ct)
	})

	t.Run("should be absent when only a later member has it", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{}),
			member("b", map[string]any{"color_temp": 300}),
		}, aggregate.Options{})

		_, ok := a.ColorTemp()

		assert.False(t, ok)
	})

	t.Run("should be absent for a malformed value", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"color_temp": "warm"})}, aggregate.Options{})

		_, ok := a.ColorTemp()

		assert.False(t, ok)
	})
}

func Test_XYColor(t *testing.T) {

	t.Run("should use the first member", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"xy_color": []any{0.3, 0.4}}),
			member("b", map[string]any{"xy_color": [2]float64{0.5, 0.5}}),
		}, aggregate.Options{})

		xy, ok := a.XYColor()

		assert.True(t, ok)
		assert.Equal(t, [2]float64{0.3, 0.4}, xy)
	})

	t.Run("should be absent when the first member has none", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{}),
			member("b", map[string]any{"xy_color": [2]float64{0.5, 0.5}}),
		}, aggregate.Options{})

		_, ok := a.XYColor()

		assert.False(t, ok)
	})

	t.Run("should be absent for the wrong number of components", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"xy_color": []float64{0.3}})}, aggregate.Options{})

		_, ok := a.XYColor()

		assert.False(t, ok)
	})
}

func Test_RGBColor(t *testing.T) {

	t.Run("should use the first member", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"rgb_color": []int{255, 128, 0}}),
			member("b", map[string]any{"rgb_color": []int{0, 0, 255}}),
		}, aggregate.Options{})

		rgb, ok := a.RGBColor()

		assert.True(t, ok)
		assert.Equal(t, [3]int{255, 128, 0}, rgb)
	})

	t.Run("should be absent when the first member has none", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 10}),
			member("b", map[string]any{"rgb_color": []int{0, 0, 255}}),
		}, aggregate.Options{})

		_, ok := a.RGBColor()

		assert.False(t, ok)
	})

	t.Run("should accept json numbers", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"rgb_color": []any{255.0, 128.0, 0.0}})}, aggregate.Options{})

		rgb, ok := a.RGBColor()

		assert.True(t, ok)
		assert.Equal(t, [3]int{255, 128, 0}, rgb)
	})

	t.Run("should be absent for the wrong number of components", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"rgb_color": [2]int{255, 0}})}, aggregate.Options{})

		_, ok := a.RGBColor()

		assert.False(t, ok)
	})

	t.Run("should be absent for a non tuple value", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{member("a", map[string]any{"rgb_color": "red"})}, aggregate.Options{})

		_, ok := a.RGBColor()

		assert.False(t, ok)
	})
}

func Test_LightStateAttributes(t *testing.T) {

	t.Run("should only include present attributes", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100, "color_temp": 300}),
			member("b", map[string]any{"brightness": 50}),
		}, aggregate.Options{})

		attrs := a.LightStateAttributes()

		assert.Equal(t, map[string]any{"brightness": 75.0, "color_temp": 300}, attrs)
	})

	t.Run("should be empty with no members", func(t *testing.T) {
		a, _ := newAggregator(t, nil, aggregate.Options{})

		assert.Empty(t, a.LightStateAttributes())
	})

	t.Run("should not derive rgb unless enabled", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 255, "xy_color": [2]float64{0.3127, 0.329}}),
		}, aggregate.Options{})

		attrs := a.LightStateAttributes()

		assert.NotContains(t, attrs, "rgb_color")
	})

	t.Run("should derive rgb from xy and brightness when enabled", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 255, "xy_color": [2]float64{0.3127, 0.329}}),
		}, aggregate.Options{DeriveRGB: true})

		attrs := a.LightStateAttributes()

		// D65 white point at full brightness
		rgb, ok := attrs["rgb_color"].([3]int)
		assert.True(t, ok)
		for _, c := range rgb {
			assert.GreaterOrEqual(t, c, 250)
		}
	})

	t.Run("should prefer a reported rgb over a derived one", func(t *testing.T) {
		a, _ := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 255, "xy_color": [2]float64{0.3127, 0.329}, "rgb_color": [3]int{1, 2, 3}}),
		}, aggregate.Options{DeriveRGB: true})

		attrs := a.LightStateAttributes()

		assert.Equal(t, [3]int{1, 2, 3}, attrs["rgb_color"])
	})
}

func Test_StateAttributes(t *testing.T) {

	t.Run("should merge light and group attributes", func(t *testing.T) {
		a, mockGroup := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100}),
			member("b", map[string]any{"brightness": 200}),
		}, aggregate.Options{})
		mockGroup.On("StateAttributes").Return(map[string]any{"entity_id": []string{"a", "b"}})

		attrs := a.StateAttributes()

		assert.Equal(t, map[string]any{"brightness": 150.0, "entity_id": []string{"a", "b"}}, attrs)
	})

	t.Run("should let group attributes win on a collision", func(t *testing.T) {
		a, mockGroup := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100, "color_temp": 300}),
		}, aggregate.Options{})
		mockGroup.On("StateAttributes").Return(map[string]any{"brightness": "from group"})

		attrs := a.StateAttributes()

		assert.Equal(t, "from group", attrs["brightness"])
		assert.Equal(t, 300, attrs["color_temp"])
	})
}

func Test_Snapshot(t *testing.T) {

	t.Run("should reflect the current member states", func(t *testing.T) {
		a, mockGroup := newAggregator(t, []models.MemberState{
			member("a", map[string]any{"brightness": 100, "xy_color": [2]float64{0.2, 0.3}}),
			member("b", map[string]any{"brightness": 200, "color_temp": 300}),
		}, aggregate.Options{})
		mockGroup.On("State").Return("on")
		mockGroup.On("StateAttributes").Return(map[string]any{"friendly_name": "test group"})

		s := a.Snapshot()

		assert.Equal(t, "test group", s.Name)
		assert.True(t, s.On)
		if assert.NotNil(t, s.Brightness) {
			assert.Equal(t, 150.0, *s.Brightness)
		}
		assert.Nil(t, s.ColorTemp)
		if assert.NotNil(t, s.XYColor) {
			assert.Equal(t, [2]float64{0.2, 0.3}, *s.XYColor)
		}
		assert.Nil(t, s.RGBColor)
		assert.Equal(t, "test group", s.Attributes["friendly_name"])
	})

	t.Run("should read the member states once", func(t *testing.T) {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		mockGroup := mocks.NewMockAggregateGroupStateProvider(t)
		mockGroup.On("Name").Return("g")
		mockGroup.On("State").Return("on")
		mockGroup.On("StateAttributes").Return(map[string]any{"brightness": "from group"})
		// a second read would see different members
		mockGroup.On("TrackingStates").Return([]models.MemberState{
			member("a", map[string]any{"brightness": 100, "color_temp": 300, "rgb_color": [3]int{1, 2, 3}}),
		}).Once()
		a := aggregate.NewLightGroupAggregator(logger, mockGroup, aggregate.Options{})

		s := a.Snapshot()

		mockGroup.AssertNumberOfCalls(t, "TrackingStates", 1)
		assert.Equal(t, 100.0, *s.Brightness)
		assert.Equal(t, 300, *s.ColorTemp)
		assert.Equal(t, [3]int{1, 2, 3}, *s.RGBColor)
		// typed fields come from the members even when a group attribute shares the key
		assert.Equal(t, "from group", s.Attributes["brightness"])
	})

	t.Run("should recompute on every read", func(t *testing.T) {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		mockGroup := mocks.NewMockAggregateGroupStateProvider(t)
		mockGroup.On("TrackingStates").Return([]models.MemberState{member("a", map[string]any{"brightness": 10})}).Once()
		mockGroup.On("TrackingStates").Return([]models.MemberState{member("a", map[string]any{"brightness": 20})})
		a := aggregate.NewLightGroupAggregator(logger, mockGroup, aggregate.Options{})

		first, _ := a.Brightness()
		second, _ := a.Brightness()

		assert.Equal(t, 10.0, first)
		assert.Equal(t, 20.0, second)
	})
}
