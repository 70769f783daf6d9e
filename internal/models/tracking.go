package models

// TrackResponse is the raw body returned by the courier tracking API.
// A missing "data" key decodes to an empty slice, which callers treat
// as "no tracking records".
type TrackResponse struct {
	Data []TrackData `json:"data"`
}

// TrackData is one shipment entry in the courier response.
type TrackData struct {
	TrackingNumber string        `json:"tracking_number"`
	Details        []TrackDetail `json:"details"`
}

// TrackDetail is one checkpoint record as the courier reports it.
type TrackDetail struct {
	OccurDate   string `json:"track_occur_date"`
	Location    string `json:"track_location"`
	Description string `json:"track_description"`
}

// TrackedShipment is the normalized view served to clients. Checkpoints
// keep the order the courier returned them in; no re-sorting happens on
// our side.
type TrackedShipment struct {
	TrackingNumber string            `json:"tracking_number"`
	Checkpoints    []TrackCheckpoint `json:"checkpoints"`
}

// TrackCheckpoint is a single event in a shipment's history.
type TrackCheckpoint struct {
	OccurredAt  string `json:"occurred_at"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
