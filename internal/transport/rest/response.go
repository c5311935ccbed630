package rest

import (
	"time"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type feedbackResponse struct {
	ID      string       `json:"id"`
	User    userResponse `json:"user"`
	Title   string       `json:"title"`
	Body    string       `json:"body"`
	Created time.Time    `json:"created"`
	Updated time.Time    `json:"updated"`
}

type insightResponse struct {
	Sentiment      string   `json:"sentiment"`
	KeyTopics      []string `json:"key_topics"`
	ActionRequired bool     `json:"action_required"`
	Summary        string   `json:"summary"`
	Tokens         int      `json:"tokens"`
	Latency        float64  `json:"latency"`
}

// elementResponse is one item of GET /feedback_and_insights.
// Insight is encoded as null when the record has none.
type elementResponse struct {
	Feedback feedbackResponse `json:"feedback"`
	Insight  *insightResponse `json:"insight"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:      f.ID,
		User:    toUserResponse(f.User),
		Title:   f.Title,
		Body:    f.Body,
		Created: f.Created,
		Updated: f.Updated,
	}
}

func toInsightResponse(in *domain.Insight) *insightResponse {
	if in == nil {
		return nil
	}
	topics := in.KeyTopics
	if topics == nil {
		topics = []string{}
	}
	return &insightResponse{
		Sentiment:      in.Sentiment.String(),
		KeyTopics:      topics,
		ActionRequired: in.ActionRequired,
		Summary:        in.Summary,
		Tokens:         in.Tokens,
		Latency:        in.Latency,
	}
}

func toElementResponse(f *domain.Feedback) elementResponse {
	return elementResponse{
		Feedback: toFeedbackResponse(f),
		Insight:  toInsightResponse(f.Insight),
	}
}
