package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// StatusError é retornado quando a resposta não é 2xx
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error on Request: %s status: %d", e.URL, e.StatusCode)
}

// MakeRequest executa uma requisição HTTP respeitando o contexto e devolve o corpo da resposta
func MakeRequest(ctx context.Context, client *http.Client, method, url string, headers map[string]string, body []byte) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: data}
	}

	return data, nil
}
