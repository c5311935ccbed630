package insightsapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/feedback-insights/internal/domain"
)

// ErrMalformedResponse is returned when the body is valid JSON but does not
// have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// Layouts accepted for created/updated. Values without a zone are read in
// local time; a bare date is UTC midnight. Anything else maps to the zero
// time.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
	}
	dateLayout = "2006-01-02"
)

// badTimestampFunc is told about a created/updated value that could not be
// parsed. The record keeps a zero time for that field.
type badTimestampFunc func(feedbackID, field, value string)

// mapElements converts the decoded array into feedback records.
// Any element with a missing feedback or user fails the whole batch;
// unparsable timestamps do not.
func mapElements(elems []apiElement, onBadTime badTimestampFunc) ([]domain.Feedback, error) {
	if onBadTime == nil {
		onBadTime = func(string, string, string) {}
	}
	out := make([]domain.Feedback, 0, len(elems))
	for i, e := range elems {
		fb, err := mapElement(e, onBadTime)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, fb)
	}
	return out, nil
}

func mapElement(e apiElement, onBadTime badTimestampFunc) (domain.Feedback, error) {
	if e.Feedback == nil {
		return domain.Feedback{}, fmt.Errorf("%w: missing feedback", ErrMalformedResponse)
	}
	if e.Feedback.User == nil {
		return domain.Feedback{}, fmt.Errorf("%w: missing feedback.user", ErrMalformedResponse)
	}

	created, err := parseTimestamp(e.Feedback.Created)
	if err != nil {
		onBadTime(e.Feedback.ID, "created", e.Feedback.Created)
	}
	updated, err := parseTimestamp(e.Feedback.Updated)
	if err != nil {
		onBadTime(e.Feedback.ID, "updated", e.Feedback.Updated)
	}

	return domain.Feedback{
		ID: e.Feedback.ID,
		User: domain.User{
			ID:       e.Feedback.User.ID,
			Username: e.Feedback.User.Username,
		},
		Title:   e.Feedback.Title,
		Body:    e.Feedback.Body,
		Created: created,
		Updated: updated,
		Insight: mapInsight(e.Insight),
	}, nil
}

func mapInsight(in *apiInsight) *domain.Insight {
	if in == nil {
		return nil
	}
	var topics []string
	if in.KeyTopics != nil {
		topics = make([]string, len(in.KeyTopics))
		copy(topics, in.KeyTopics)
	}
	return &domain.Insight{
		Sentiment:      domain.Sentiment(in.Sentiment),
		KeyTopics:      topics,
		ActionRequired: in.ActionRequired,
		Summary:        in.Summary,
		Tokens:         in.Tokens,
		Latency:        in.Latency,
	}
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
