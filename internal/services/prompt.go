package services

import (
	"fmt"
	"strconv"
	"strings"

	"solotrip/internal/models/request_models"
)

const noGroundingFallback = "Use only real, verified landmarks"

func itinerarySchema(destination string, days int) string {
	return fmt.Sprintf(`{
    "destination": %q,
    "days": %d,
    "totalCost": number (estimated total in ₹),
    "currency": "₹",
    "aiTip": "A short piece of AI travel advice",
    "plans": [
        {
            "day": number,
            "theme": "string",
            "places": [
                {
                    "name": "string",
                    "category": "Culture/Food/Adventure/Nature/Photography/Nightlife",
                    "description": "string",
                    "cost": number (in ₹),
                    "duration": number (hours),
                    "image_query": "short_search_query_for_image",
                    "coordinates": { "lat": number, "lng": number }
                }
            ],
            "totalCost": number (daily total in ₹)
        }
    ]
}`, destination, days)
}

// GroundingContext renders candidates as "name (address)" joined by commas.
func GroundingContext(candidates []GroundingCandidate) string {
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", c.Name, c.Address))
	}
	return strings.Join(parts, ", ")
}

func BuildItineraryPrompt(req request_models.GenerationRequest, candidates []GroundingCandidate) string {
	grounding := GroundingContext(candidates)
	if grounding == "" {
		grounding = noGroundingFallback
	}

	safety := "Standard"
	if req.SafetyMode {
		safety = "ENABLED"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a detailed %d-day solo travel itinerary for %s.\n\n", req.Days, req.Destination)
	sb.WriteString("CRITICAL SOURCE OF TRUTH:\n")
	fmt.Fprintf(&sb, "You MUST prioritize these real-world locations: %s.\n", grounding)
	sb.WriteString("DO NOT hallucinate or make up place names.\n")
	fmt.Fprintf(&sb, "Interests: %s.\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&sb, "Budget: ₹%s.\n", strconv.FormatFloat(req.Budget, 'f', -1, 64))
	fmt.Fprintf(&sb, "Safety Mode: %s.\n", safety)
	if req.SafetyMode {
		sb.WriteString("Prefer well-lit, busy areas after dark and daytime activities for a solo traveler.\n")
	}
	sb.WriteString("\nReturn ONLY valid JSON following this structure:\n")
	sb.WriteString(itinerarySchema(req.Destination, req.Days))
	sb.WriteString("\n")
	return sb.String()
}

func BuildDeepDivePrompt(country, interest string) string {
	return fmt.Sprintf(`Provide a professional, structured cultural deep dive for %s with focus on %s.
Return ONLY valid JSON with this structure:
{
    "title": "string",
    "historicalDescription": "detailed string",
    "festivals": ["string"],
    "traditions": ["string"],
    "landmarks": [{"name": "string", "significance": "string"}],
    "attractions": ["string"]
}
`, country, interest)
}
