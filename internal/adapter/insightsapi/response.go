package insightsapi

// apiElement is one item of the /feedback_and_insights response array.
// Pointers distinguish a missing object from an empty one.
type apiElement struct {
	Feedback *apiFeedback `json:"feedback"`
	Insight  *apiInsight  `json:"insight"`
}

type apiFeedback struct {
	ID      string   `json:"id"`
	User    *apiUser `json:"user"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Created string   `json:"created"`
	Updated string   `json:"updated"`
}

type apiUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type apiInsight struct {
	Sentiment      string   `json:"sentiment"`
	KeyTopics      []string `json:"key_topics"`
	ActionRequired bool     `json:"action_required"`
	Summary        string   `json:"summary"`
	Tokens         int      `json:"tokens"`
	Latency        float64  `json:"latency"`
}
