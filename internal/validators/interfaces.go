// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests before they reach a store or a remote
// API.
//
//   - UserValidator: sign-up, login, user ids and character changes.
//   - SessionValidator: chat messages, resume requests and log dates.
package validators

import "context"

// Validator checks one value. When fields are given, only those fields of a
// request struct are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
