package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		expected float64
		want     float64
		wantOK   bool
	}{
		{name: "Aumento arredondado", actual: 130000, expected: 89000, want: 46, wantOK: true},
		{name: "Queda pequena", actual: 92000, expected: 95000, want: -3, wantOK: true},
		{name: "Base negativa mantém a direção", actual: -500, expected: -1000, want: 50, wantOK: true},
		{name: "Base zero não tem variação", actual: 10, expected: 0, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentChange(tt.actual, tt.expected)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateIn(t *testing.T) {
	tbilisi := time.FixedZone("GET", 4*3600)
	instant := time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-15", DateIn(instant, tbilisi))
	assert.Equal(t, "2025-03-14", DateIn(instant, nil))
}

func TestGeneratePrefixedID(t *testing.T) {
	id, err := GeneratePrefixedID("rec")
	require.NoError(t, err)
	assert.Len(t, id, len("rec_")+idLength)
	assert.Equal(t, "rec_", id[:4])
}

func TestMakeRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, err := MakeRequest(context.Background(), server.Client(), http.MethodPost, server.URL, map[string]string{"Authorization": "Bearer ok"}, []byte(`{}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	_, err = MakeRequest(context.Background(), server.Client(), http.MethodPost, server.URL, nil, nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}
