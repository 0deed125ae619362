package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "dial error", err: fmt.Errorf("send: %w", &net.OpError{Op: "dial", Err: errors.New("refused")}), want: msgServerUnavailable},
		{name: "deadline", err: fmt.Errorf("send: %w", context.DeadlineExceeded), want: msgServerUnavailable},
		{name: "flattened", err: errors.New("Post \"http://localhost:8080\": dial tcp: connection refused"), want: msgServerUnavailable},
		{name: "server message", err: errors.New("前のメッセージを処理中です"), want: "前のメッセージを処理中です"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}
