package services

import (
	"encoding/json"
	"math"
	"strings"

	"solotrip/internal/models/request_models"
)

const (
	MinTripDays = 1
	MaxTripDays = 30

	msgDestination = "Destination is required and must be a string"
	msgDays        = "Days must be a number between 1 and 30"
	msgInterests   = "At least one interest is required"
	msgBudget      = "Budget must be a positive number"
)

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateGenerateRequest checks every rule and reports all violations in a fixed order.
func ValidateGenerateRequest(body map[string]any) ValidationResult {
	errs := make([]string, 0, 4)

	if s, ok := body["destination"].(string); !ok || strings.TrimSpace(s) == "" {
		errs = append(errs, msgDestination)
	}

	if days, ok := toNumber(body["days"]); !ok || days != math.Trunc(days) || days < MinTripDays || days > MaxTripDays {
		errs = append(errs, msgDays)
	}

	if _, ok := toInterests(body["interests"]); !ok {
		errs = append(errs, msgInterests)
	}

	if budget, ok := toNumber(body["budget"]); !ok || budget <= 0 {
		errs = append(errs, msgBudget)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ToGenerationRequest converts a body that passed ValidateGenerateRequest.
func ToGenerationRequest(body map[string]any) request_models.GenerationRequest {
	destination, _ := body["destination"].(string)
	days, _ := toNumber(body["days"])
	budget, _ := toNumber(body["budget"])
	interests, _ := toInterests(body["interests"])
	safety, _ := body["safetyMode"].(bool)

	return request_models.GenerationRequest{
		Destination: strings.TrimSpace(destination),
		Days:        int(days),
		Interests:   interests,
		Budget:      budget,
		SafetyMode:  safety,
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInterests accepts a non-empty list whose entries are all non-blank strings.
func toInterests(v any) ([]string, bool) {
	var raw []any
	switch list := v.(type) {
	case []any:
		raw = list
	case []string:
		raw = make([]any, len(list))
		for i, s := range list {
			raw[i] = s
		}
	default:
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out, true
}
