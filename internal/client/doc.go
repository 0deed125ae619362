// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It restores or establishes the signed-in session and then hands the
// terminal to the chat UI until the user quits.
package client
