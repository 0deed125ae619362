// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ai-feedback/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow blocks until the user is signed in.
	LoginFlow(ctx context.Context) (models.LocalSession, error)

	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error)
}
