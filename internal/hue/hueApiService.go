package hue

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lightgroup/internal/concurrency"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

var ErrUnreachable = errors.New("unreachable")

type HueAPIService struct {
	logger  *log.Logger
	baseURL string
	appKey  string
	client  *http.Client
}

// NewHueAPIService creates a client for the bridge at baseURL (e.g. "https://192.168.1.10").
func NewHueAPIService(logger *log.Logger, baseURL string, appKey string) *HueAPIService {
	tr := &http.Transport{
		// the bridge uses a self signed certificate
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return &HueAPIService{
		logger:  logger,
		baseURL: baseURL,
		appKey:  appKey,
		client:  &http.Client{Transport: tr},
	}
}

func (h *HueAPIService) GET(ctx context.Context, url string) ([]byte, error) {
	return h.makeRequest(ctx, http.MethodGet, url, nil)
}

// GetLight reads a light from the bridge and converts it to a member state.
func (h *HueAPIService) GetLight(ctx context.Context, id string) (models.MemberState, error) {

	body, err := h.GET(ctx, fmt.Sprintf("/clip/v2/resource/light/%s", id))
	if err != nil {
		return models.MemberState{}, fmt.Errorf("error reading light (%s) from hue bridge: %w", id, err)
	}

	lresp := LightResponse{}
	if err := json.Unmarshal(body, &lresp); err != nil {
		return models.MemberState{}, fmt.Errorf("error parsing light (%s) response: %w", id, err)
	}
	if len(lresp.Errors) > 0 {
		return models.MemberState{}, fmt.Errorf("hue bridge returned an error for light (%s): %s", id, lresp.Errors[0].Description)
	}
	if len(lresp.Data) == 0 {
		return models.MemberState{}, fmt.Errorf("light (%s) not found", id)
	}

	return toMemberState(id, lresp.Data[0]), nil
}

// MemberStates reads the given lights one at a time, in order.
// Unreachable lights are left out; any other failure is returned along with the lights that were read.
func (h *HueAPIService) MemberStates(ctx context.Context, entityIDs []string) ([]models.MemberState, error) {
	states := []models.MemberState{}

	worker := concurrency.NewThrottledWorker(constants.HueRequestInterval, func(ctx context.Context, id string) error {
		h.logger.Debug("Reading state for light...", "id", id)
		state, err := h.GetLight(ctx, id)
		if errors.Is(err, ErrUnreachable) {
			h.logger.Warn("Light is unreachable, skipping", "id", id)
			return nil
		}
		if err != nil {
			return err
		}
		states = append(states, state)
		return nil
	})

	err := worker.Run(ctx, entityIDs)
	return states, err
}

func toMemberState(id string, light HueLight) models.MemberState {
	attrs := map[string]any{}

	if light.Dimming != nil {
		// the bridge reports brightness as a percentage
		attrs[constants.AttrBrightness] = int(math.Round(light.Dimming.Brightness * constants.HueMaxBrightness / 100))
	}
	if ct := light.ColorTemperature; ct != nil && ct.MirekValid && ct.Mirek != nil {
		attrs[constants.AttrColorTemp] = *ct.Mirek
	}
	if light.Color != nil {
		attrs[constants.AttrXYColor] = [2]float64{light.Color.XY.X, light.Color.XY.Y}
	}

	return models.MemberState{
		EntityID:   id,
		On:         light.On.On,
		Attributes: attrs,
	}
}

func (h *HueAPIService) makeRequest(ctx context.Context, verb string, url string, body []byte) ([]byte, error) {

	bodyReader := bytes.NewReader(body)
	req, err := http.NewRequestWithContext(ctx, verb, h.baseURL+url, bodyReader)
	if err != nil {
		return nil, err
	}

	// set headers
	req.Header.Set("hue-application-key", h.appKey)

	// make the request
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusMultiStatus:
		return nil, ErrUnreachable
	default:
		h.logger.Error("Error making Hue API call", "url", url, "status", resp.Status)
		return nil, fmt.Errorf("unexpected status from hue bridge: %s", resp.Status)
	}

}
