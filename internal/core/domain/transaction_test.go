package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTransactionID(t *testing.T) {
	assert.Equal(t, "cb-tech-fest-1", ComposeTransactionID("cb-tech-fest", 1))
	assert.Equal(t, "cb-tech-fest-42", ComposeTransactionID("cb-tech-fest", 42))
}

func TestLocalTransactionID(t *testing.T) {
	tests := []struct {
		name          string
		transactionID string
		cashbookID    string
		want          string
	}{
		{"strips matching prefix", "cb-tech-fest-3", "cb-tech-fest", "3"},
		{"round trips with compose", ComposeTransactionID("cb-x", 12), "cb-x", "12"},
		{"foreign id unchanged", "cb-other-3", "cb-tech-fest", "cb-other-3"},
		{"already local unchanged", "3", "cb-tech-fest", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalTransactionID(tt.transactionID, tt.cashbookID))
		})
	}
}
