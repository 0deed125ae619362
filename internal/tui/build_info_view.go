// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-ai-feedback/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("アプリ: go-ai-feedback\n")
	b.WriteString("バージョン: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("ビルド日: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("コミット: ")
	b.WriteString(info.BuildCommit())

	return renderPage("バージョン情報", overlayBoxStyle.Render(b.String()), "esc: 戻る")
}
