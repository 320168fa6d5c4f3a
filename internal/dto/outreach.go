package dto

// The outreach endpoints relay bodies verbatim; these types document the
// shapes the AI service exchanges and are used by the Go client.

// Body of POST /api/outreach/rank
type RankRequest struct {
	QueryLookingFor string            `json:"query_looking_for"`
	QueryDomain     string            `json:"query_domain"`
	QueryHelpType   string            `json:"query_help_type"`
	Urgency         string            `json:"urgency"` // high | medium | low
	Candidates      []ProfileResponse `json:"candidates"`
}

type Ranking struct {
	ContactID     string  `json:"contact_id"`
	MatchScore    float64 `json:"match_score"` // 0..1
	MatchReason   string  `json:"match_reason"`
	OutreachAngle string  `json:"outreach_angle"`
	Source        string  `json:"source"`
}

type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Body of POST /api/outreach/draft
type DraftRequest struct {
	Sender    ProfileResponse `json:"sender"`
	Recipient ProfileResponse `json:"recipient"`
	Context   string          `json:"context"`
}

type DraftResponse struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}
