package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"orderdesk/internal/config"
	"orderdesk/internal/models"
)

// TrackingService forwards tracking-number lookups to the courier API and
// normalizes the response. It is stateless and keeps no cache: every lookup
// re-queries the remote service.
type TrackingService struct {
	cfg    config.TrackingConfig
	client *http.Client
}

// NewTrackingService creates a new TrackingService. A nil httpClient gets a
// default client with the configured timeout.
func NewTrackingService(cfg config.TrackingConfig, httpClient *http.Client) *TrackingService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &TrackingService{
		cfg:    cfg,
		client: httpClient,
	}
}

// Lookup queries the courier API for one tracking number. An empty result is
// not an error: it returns an empty slice, which the caller reports as "not
// found". Transport failures, non-2xx statuses, and malformed bodies are
// errors and abort the lookup; there is no retry.
func (s *TrackingService) Lookup(trackingNumber string) ([]models.TrackedShipment, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("tracking number is required")
	}

	paramsJSON, err := json.Marshal(map[string]string{"tracking_number": trackingNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tracking params: %w", err)
	}

	form := url.Values{}
	form.Set("appToken", s.cfg.AppToken)
	form.Set("appKey", s.cfg.AppKey)
	form.Set("serviceMethod", "gettrack")
	form.Set("paramsJson", string(paramsJSON))

	resp, err := s.client.PostForm(s.cfg.URL, form)
	if err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tracking service returned status %d", resp.StatusCode)
	}

	var payload models.TrackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode tracking response: %w", err)
	}

	shipments := make([]models.TrackedShipment, 0, len(payload.Data))
	for _, entry := range payload.Data {
		shipment := models.TrackedShipment{
			TrackingNumber: entry.TrackingNumber,
			Checkpoints:    make([]models.TrackCheckpoint, 0, len(entry.Details)),
		}
		// Checkpoints stay in the courier's order.
		for _, detail := range entry.Details {
			shipment.Checkpoints = append(shipment.Checkpoints, models.TrackCheckpoint{
				OccurredAt:  detail.OccurDate,
				Location:    detail.Location,
				Description: detail.Description,
			})
		}
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}
