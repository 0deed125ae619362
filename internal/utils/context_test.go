// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "stored", ctx: WithUserID(context.Background(), "u-42"), want: "u-42", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithUserID(context.Background(), "")},
		{name: "plain string key is not ours", ctx: context.WithValue(context.Background(), "userID", "u-42")}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UserIDFromContext(tt.ctx)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
