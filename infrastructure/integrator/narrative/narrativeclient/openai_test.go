package narrativeclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/finance-copilot-api/internal/config"
)

func TestNewOpenAIClient(t *testing.T) {
	_, err := NewOpenAIClient(config.Narrative{Provider: config.ProviderOpenAI})
	assert.Error(t, err)

	client, err := NewOpenAIClient(config.Narrative{APIKey: "sk-test", BaseURL: "http://localhost:9999/v1/"})
	require.NoError(t, err)
	assert.Equal(t, defaultOpenAIModel, client.model)
	assert.Equal(t, "http://localhost:9999/v1", client.baseURL)
}

func TestOpenAIClient_Complete(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		response   string
		want       string
		wantErr    string
		checkInput bool
	}{
		{
			name:       "Retorna o conteúdo da primeira choice",
			status:     http.StatusOK,
			response:   `{"choices":[{"message":{"role":"assistant","content":"{\"greeting\":\"Olá\",\"summary\":\"Tudo certo\"}"}}]}`,
			want:       `{"greeting":"Olá","summary":"Tudo certo"}`,
			checkInput: true,
		},
		{
			name:     "Erro da API é propagado com a mensagem",
			status:   http.StatusTooManyRequests,
			response: `{"error":{"message":"Rate limit reached","type":"requests"}}`,
			wantErr:  "Rate limit reached",
		},
		{
			name:     "Resposta sem choices",
			status:   http.StatusOK,
			response: `{"choices":[]}`,
			wantErr:  "sem choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				if tt.checkInput {
					raw, _ := io.ReadAll(r.Body)
					var req openAIRequest
					require.NoError(t, json.Unmarshal(raw, &req))
					assert.Equal(t, "gpt-test", req.Model)
					require.Len(t, req.Messages, 2)
					assert.Equal(t, "system", req.Messages[0].Role)
					assert.Equal(t, "instrução", req.Messages[0].Content)
					assert.Equal(t, `{"k":1}`, req.Messages[1].Content)
					assert.Equal(t, "json_object", req.ResponseFormat.Type)
				}

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client, err := NewOpenAIClient(config.Narrative{APIKey: "sk-test", Model: "gpt-test", BaseURL: server.URL + "/v1"})
			require.NoError(t, err)

			got, err := client.Complete(context.Background(), "instrução", `{"k":1}`)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenAIClient_CompleteRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client, err := NewOpenAIClient(config.Narrative{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Complete(ctx, "s", "c")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
