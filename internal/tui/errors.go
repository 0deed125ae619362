// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrUserQuit is returned when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("ユーザーが終了しました")

const msgServerUnavailable = "サーバーに接続できません"

// unreachableHints match transport errors that arrive flattened to text.
var unreachableHints = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
}

// humanizeServerUnavailableError replaces transport failures with one short
// message. Other errors already carry the server's own wording.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	for _, hint := range unreachableHints {
		if strings.Contains(s, hint) {
			return msgServerUnavailable
		}
	}

	return err.Error()
}
