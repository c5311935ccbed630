package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const bedrockAnthropicVersion = "bedrock-2023-05-31"

type bedrockInvoker interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Bedrock calls Claude models hosted on AWS Bedrock. Credentials come from
// the default AWS chain (env, shared config, IAM role).
type Bedrock struct {
	client    bedrockInvoker
	model     string
	maxTokens int
}

// NewBedrock loads the AWS configuration for region and creates a Bedrock
// completer.
func NewBedrock(ctx context.Context, region, model string, maxTokens int) (*Bedrock, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("llm: bedrock: load aws config: %w", err)
	}
	return newBedrock(bedrockruntime.NewFromConfig(cfg), model, maxTokens), nil
}

func newBedrock(client bedrockInvoker, model string, maxTokens int) *Bedrock {
	return &Bedrock{client: client, model: model, maxTokens: maxTokens}
}

func (b *Bedrock) Name() string {
	return "bedrock (" + b.model + ")"
}

type bedrockMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (b *Bedrock) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        b.maxTokens,
		System:           system,
		Messages:         []bedrockMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return Completion{}, fmt.Errorf("llm: bedrock: marshal request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("llm: bedrock: invoke: %w", err)
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return Completion{}, fmt.Errorf("llm: bedrock: decode response: %w", err)
	}

	var text strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return Completion{}, ErrEmptyResponse
	}

	return Completion{
		Text:   text.String(),
		Tokens: resp.Usage.InputTokens + resp.Usage.OutputTokens,
	}, nil
}
