package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "correlation_id", want: true},
		{key: "language", want: true},
		{key: "copilot_threshold", want: true},
		{key: "user_agent", want: false},
		{key: "payload", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, keepInDevelopment(tt.key))
		})
	}
}
