package domain

import (
	"testing"
	"time"
)

func TestFeedback_HasInsight(t *testing.T) {
	t.Parallel()

	f := Feedback{ID: "f1", User: User{ID: "u1", Username: "alice"}}
	if f.HasInsight() {
		t.Fatal("feedback without insight should report false")
	}

	f.Insight = &Insight{Sentiment: SentimentNeutral}
	if !f.HasInsight() {
		t.Fatal("feedback with insight should report true")
	}
}

func TestInsight_LatencyDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		latency float64
		want    time.Duration
	}{
		{0, 0},
		{1.5, 1500 * time.Millisecond},
		{0.25, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		i := &Insight{Latency: tt.latency}
		if got := i.LatencyDuration(); got != tt.want {
			t.Errorf("LatencyDuration(%v) = %v, want %v", tt.latency, got, tt.want)
		}
	}
}
