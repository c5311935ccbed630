package domain

// Sentiment is the overall tone an insight assigns to a feedback record.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string { return string(s) }

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// LLMProvider names a backend able to generate insights.
type LLMProvider string

const (
	LLMProviderAnthropic LLMProvider = "anthropic"
	LLMProviderBedrock   LLMProvider = "bedrock"
	LLMProviderGemini    LLMProvider = "gemini"
)

func (p LLMProvider) String() string { return string(p) }

func (p LLMProvider) IsValid() bool {
	switch p {
	case LLMProviderAnthropic, LLMProviderBedrock, LLMProviderGemini:
		return true
	}
	return false
}
