package narrativeclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	narrativedomain "github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/domain"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIRequest struct {
	Model          string               `json:"model"`
	Messages       []openAIMessage      `json:"messages"`
	Temperature    float32              `json:"temperature"`
	ResponseFormat openAIResponseFormat `json:"response_format"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

type OpenAIClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewOpenAIClient cria o cliente de chat completions (qualquer API compatível com OpenAI)
func NewOpenAIClient(cfg config.Narrative) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("NARRATIVE_API_KEY não configurada para o provedor openai")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, systemInstruction, content string) (string, error) {
	body, err := json.Marshal(openAIRequest{
		Model: c.model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: content},
		},
		Temperature:    0.4,
		ResponseFormat: openAIResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + c.apiKey,
	}

	data, err := utils.MakeRequest(ctx, c.httpClient, http.MethodPost, c.baseURL+"/chat/completions", headers, body)
	if err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) {
			var apiErr narrativedomain.ErrorResponse
			if jsonErr := json.Unmarshal(statusErr.Body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
				return "", fmt.Errorf("openai respondeu %d: %s", statusErr.StatusCode, apiErr.Error.Message)
			}
		}
		return "", err
	}

	var resp openAIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("resposta sem choices")
	}

	return resp.Choices[0].Message.Content, nil
}
