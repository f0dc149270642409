package group

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

type Options struct {
	// only on when every tracked member is on
	All bool
	// created automatically rather than defined by the user
	Auto bool
}

// Group tracks a fixed, ordered list of member entities and their last known states.
type Group struct {
	name      string
	entityIDs []string
	options   Options
	logger    *log.Logger

	mu     sync.RWMutex
	states map[string]models.MemberState
}

func NewGroup(logger *log.Logger, name string, entityIDs []string, options Options) *Group {
	return &Group{
		name: name,
		// keep the first occurrence of each id so "first member" stays stable
		entityIDs: lo.Uniq(entityIDs),
		options:   options,
		logger:    logger,
		states:    map[string]models.MemberState{},
	}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) EntityIDs() []string {
	return append([]string(nil), g.entityIDs...)
}

// UpdateState records a member's latest snapshot, ignoring entities the group doesn't track.
func (g *Group) UpdateState(state models.MemberState) {
	if !lo.Contains(g.entityIDs, state.EntityID) {
		g.logger.Debug("ignoring state for untracked entity", "group", g.name, "entity", state.EntityID)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.states[state.EntityID] = state
}

// TrackingStates returns the known member states in tracking order.
func (g *Group) TrackingStates() []models.MemberState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return lo.FilterMap(g.entityIDs, func(id string, _ int) (models.MemberState, bool) {
		s, ok := g.states[id]
		return s, ok
	})
}

func (g *Group) State() string {
	states := g.TrackingStates()
	if len(states) == 0 {
		return constants.StateUnknown
	}

	isOn := func(s models.MemberState) bool { return s.On }

	var on bool
	if g.options.All {
		on = lo.EveryBy(states, isOn)
	} else {
		on = lo.SomeBy(states, isOn)
	}
	if on {
		return constants.StateOn
	}
	return constants.StateOff
}

func (g *Group) StateAttributes() map[string]any {
	return map[string]any{
		constants.AttrEntityID:     g.EntityIDs(),
		constants.AttrFriendlyName: g.name,
		constants.AttrAuto:         g.options.Auto,
	}
}
