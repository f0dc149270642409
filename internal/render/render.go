package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

const headerColor = "#1e7ba0"
const onColor = "#e5c07b"
const offColor = "240"

const absent = "-"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headerColor))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(onColor))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(offColor))
	labelStyle  = lipgloss.NewStyle().Width(12)
	blockStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// States renders each group as a bordered block, one below the other.
func States(states []models.AggregateState) string {
	blocks := lo.Map(states, func(s models.AggregateState, _ int) string { return State(s) })
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func State(s models.AggregateState) string {
	onOff := offStyle.Render(constants.StateOff)
	if s.On {
		onOff = onStyle.Render(constants.StateOn)
	}

	lines := []string{
		headerStyle.Render(s.Name),
		row("state", onOff),
		row("brightness", optional(s.Brightness, func(b float64) string { return fmt.Sprintf("%.1f", b) })),
		row("color temp", optional(s.ColorTemp, func(ct int) string { return fmt.Sprint(ct) })),
		row("xy", optional(s.XYColor, func(xy [2]float64) string { return fmt.Sprintf("%.4f, %.4f", xy[0], xy[1]) })),
		row("rgb", optional(s.RGBColor, func(rgb [3]int) string { return fmt.Sprintf("%d, %d, %d", rgb[0], rgb[1], rgb[2]) })),
	}
	if ids, ok := s.Attributes[constants.AttrEntityID].([]string); ok {
		lines = append(lines, row("members", strings.Join(ids, ", ")))
	}
	for _, k := range extraAttributeKeys(s.Attributes) {
		lines = append(lines, row(k, fmt.Sprint(s.Attributes[k])))
	}

	return blockStyle.Render(strings.Join(lines, "\n"))
}

func row(label string, value string) string {
	return labelStyle.Render(label) + value
}

func optional[T any](v *T, format func(T) string) string {
	if v == nil {
		return absent
	}
	return format(*v)
}

// attributes that aren't already shown as a dedicated row, sorted for stable output
func extraAttributeKeys(attrs map[string]any) []string {
	shown := []string{
		constants.AttrBrightness,
		constants.AttrColorTemp,
		constants.AttrXYColor,
		constants.AttrRGBColor,
		constants.AttrEntityID,
		constants.AttrFriendlyName,
	}
	keys := lo.Filter(lo.Keys(attrs), func(k string, _ int) bool { return !lo.Contains(shown, k) })
	sort.Strings(keys)
	return keys
}
