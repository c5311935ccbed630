package domain

import "time"

// Feedback is a user-submitted text record with timestamps and an
// optional insight. Every fetch builds new values; two fetches of the same
// record never share a Feedback or its User.
type Feedback struct {
	ID      string
	User    User
	Title   string
	Body    string
	Created time.Time
	Updated time.Time
	Insight *Insight
}

// HasInsight reports whether the backend has computed an insight.
func (f *Feedback) HasInsight() bool {
	return f.Insight != nil
}

// Insight is the derived annotation of a Feedback.
// Tokens and Latency are diagnostics of the generation call;
// Latency is in seconds.
type Insight struct {
	Sentiment      Sentiment
	KeyTopics      []string
	ActionRequired bool
	Summary        string
	Tokens         int
	Latency        float64
}

// LatencyDuration returns Latency as a time.Duration.
func (i *Insight) LatencyDuration() time.Duration {
	return time.Duration(i.Latency * float64(time.Second))
}
