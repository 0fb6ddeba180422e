package request_models

// GenerationRequest is the typed form of a generate body after it passed validation.
type GenerationRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Budget      float64  `json:"budget"`
	SafetyMode  bool     `json:"safetyMode"`
}
