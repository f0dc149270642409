package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

// FileSource reads member states from a JSON snapshot file keyed by entity id, e.g.
//
//	{"light.kitchen": {"state": "on", "attributes": {"brightness": 180}}}
type FileSource struct {
	logger   *log.Logger
	filename string
}

func NewFileSource(logger *log.Logger, filename string) *FileSource {
	return &FileSource{logger: logger, filename: filename}
}

// MemberStates returns the states of entityIDs found in the file, in the requested order.
// The file is re-read on every call.
func (s *FileSource) MemberStates(_ context.Context, entityIDs []string) ([]models.MemberState, error) {
	fileBytes, err := os.ReadFile(s.filename)
	if err != nil {
		return nil, fmt.Errorf("error reading state file (%s): %w", s.filename, err)
	}

	snapshot := map[string]models.SnapshotEntry{}
	if err := json.Unmarshal(fileBytes, &snapshot); err != nil {
		return nil, fmt.Errorf("error parsing state file (%s): %w", s.filename, err)
	}

	return lo.FilterMap(entityIDs, func(id string, _ int) (models.MemberState, bool) {
		entry, ok := snapshot[id]
		if !ok {
			s.logger.Debug("no state found for entity", "entity", id)
			return models.MemberState{}, false
		}
		attrs := entry.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		return models.MemberState{
			EntityID:   id,
			On:         entry.State == constants.StateOn,
			Attributes: attrs,
		}, true
	}), nil
}
