package triage

import (
	"fmt"
	"strconv"
	"strings"
)

// Routing categories. The label strings are part of the output contract with
// downstream claim queues and must not change.
const (
	RouteManualReview      = "Manual review"
	RouteInvestigationFlag = "Investigation Flag"
	RouteSpecialistQueue   = "Specialist Queue"
	RouteFastTrack         = "Fast-track"
	RouteStandardQueue     = "Standard Queue"
)

// FastTrackThreshold is the damage estimate below which a complete,
// unflagged claim may skip adjuster review.
const FastTrackThreshold = 25000

// suspiciousKeywords trigger the Investigation Flag route when any of them
// appears in the loss description.
var suspiciousKeywords = []string{"fraud", "inconsistent", "staged"}

// Decision is a routing category plus the human-readable justification for it.
type Decision struct {
	Route     string
	Reasoning string
}

// routingRule is one link in the priority chain. apply returns ok=false when
// the rule does not fire, handing evaluation to the next rule.
type routingRule struct {
	name  string
	apply func(fields FieldMap, missing []string) (Decision, bool)
}

// routingRules is the priority chain, evaluated strictly in order with
// first-match-wins semantics. Completeness gates everything; fraud suspicion
// outranks claim type; claim type outranks the cost threshold.
var routingRules = []routingRule{
	{
		name: "missing_mandatory_fields",
		apply: func(_ FieldMap, missing []string) (Decision, bool) {
			if len(missing) == 0 {
				return Decision{}, false
			}
			return Decision{
				Route:     RouteManualReview,
				Reasoning: "One or more mandatory fields are missing: " + strings.Join(missing, ", "),
			}, true
		},
	},
	{
		name: "suspicious_description",
		apply: func(fields FieldMap, _ []string) (Decision, bool) {
			description := strings.ToLower(fields[FieldDescription])
			for _, keyword := range suspiciousKeywords {
				if strings.Contains(description, keyword) {
					return Decision{
						Route:     RouteInvestigationFlag,
						Reasoning: "Description contains potential fraud-related keywords.",
					}, true
				}
			}
			return Decision{}, false
		},
	},
	{
		name: "injury_claim",
		apply: func(fields FieldMap, _ []string) (Decision, bool) {
			if !strings.Contains(strings.ToLower(fields[FieldClaimType]), "injury") {
				return Decision{}, false
			}
			return Decision{
				Route:     RouteSpecialistQueue,
				Reasoning: "Claim type is injury, so it is routed to the specialist queue.",
			}, true
		},
	},
	{
		name: "fast_track_estimate",
		apply: func(fields FieldMap, _ []string) (Decision, bool) {
			estimate, ok := ParseAmount(fields[FieldEstimatedDamage])
			if !ok || estimate >= FastTrackThreshold {
				return Decision{}, false
			}
			return Decision{
				Route: RouteFastTrack,
				Reasoning: fmt.Sprintf("Estimated damage (%s) is less than 25,000.",
					strconv.FormatFloat(estimate, 'f', -1, 64)),
			}, true
		},
	},
}

// Route evaluates the priority chain over a field map and its missing-field
// list. The first rule that fires determines the decision; when none fires
// the claim falls through to the standard queue.
func Route(fields FieldMap, missing []string) Decision {
	for _, rule := range routingRules {
		if decision, ok := rule.apply(fields, missing); ok {
			return decision
		}
	}
	return Decision{
		Route:     RouteStandardQueue,
		Reasoning: "All mandatory fields present, no special conditions matched.",
	}
}
