package aggregate

import (
	"reflect"

	"github.com/spf13/cast"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

// MeanBrightness returns the arithmetic mean of the members' brightness.
// The result is absent for an empty member set or when any member has no usable brightness.
func MeanBrightness(members []models.MemberState) (float64, bool) {
	if len(members) == 0 {
		return 0, false
	}

	total := 0.0
	for _, m := range members {
		v, ok := m.Attributes[constants.AttrBrightness]
		if !ok {
			return 0, false
		}
		// cast would read these as 0, 1 or a parsed number
		switch v.(type) {
		case nil, bool, string:
			return 0, false
		}
		b, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		total += b
	}

	return total / float64(len(members)), true
}

// FirstPresent returns attr of the first member only.
// Later members are never inspected, so a first member without attr gives an absent result.
func FirstPresent(members []models.MemberState, attr string) (any, bool) {
	if len(members) == 0 {
		return nil, false
	}
	v, ok := members[0].Attributes[attr]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// cast has no float slice conversion, so the pair is walked by hand
func toXY(v any) ([2]float64, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return [2]float64{}, false
	}
	if rv.Len() != 2 {
		return [2]float64{}, false
	}

	var xy [2]float64
	for i := range xy {
		f, err := cast.ToFloat64E(rv.Index(i).Interface())
		if err != nil {
			return [2]float64{}, false
		}
		xy[i] = f
	}
	return xy, true
}

func toRGB(v any) ([3]int, bool) {
	ints, err := cast.ToIntSliceE(v)
	if err != nil || len(ints) != 3 {
		return [3]int{}, false
	}
	return [3]int{ints[0], ints[1], ints[2]}, true
}
