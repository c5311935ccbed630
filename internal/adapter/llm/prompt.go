package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a healthcare business assistant helping out with analyzing user ` +
	`feedback for an EHR and producing an "insight" summary. Please scrub any PII ` +
	`(e.g. name, SSN, phone number, address) you encounter during the course of ` +
	`your analysis and replace the PII with the word "[redacted]" in your summary.`

// buildPrompt creates the user message for one feedback record.
func buildPrompt(title, body string) string {
	return fmt.Sprintf(`Can you analyze the following feedback and generate an insight summary?

--------------------

%s

%s

--------------------

Output ONLY a valid JSON object matching this exact schema:
{
  "sentiment": "<positive|neutral|negative>",
  "key_topics": ["<short topic>", "..."],
  "action_required": <true|false>,
  "summary": "<one or two sentences, PII replaced with [redacted]>"
}

Rules:
- key_topics: 1-5 lowercase topics, most important first
- action_required is true when the feedback reports a problem someone must fix
- Output ONLY the JSON, no markdown, no explanations`, title, body)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
