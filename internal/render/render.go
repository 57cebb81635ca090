// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package render turns a consumption report into terminal output, either as
// the raw indented server payload or as a formatted multi-section report.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fraenktools/fraenkctl/models"
)

const (
	sectionWidth = 50
	expiryLayout = "2006-01-02 15:04"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// JSON writes the report's raw server payload to w, indented. The payload
// bytes are reformatted, never re-marshalled, so unmodelled fields and
// non-ASCII characters survive untouched.
func JSON(w io.Writer, report models.ConsumptionReport) error {
	raw := report.Raw
	if len(raw) == 0 {
		// No raw payload captured; fall back to the struct without
		// escaping non-ASCII text.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent report payload: %w", err)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// Report writes the formatted multi-section console report to w: phone
// number and contract type, then one block per usage pass with volumes,
// percentage, and a human-readable expiry date when the pass expires.
func Report(w io.Writer, report models.ConsumptionReport) error {
	rule := strings.Repeat("=", sectionWidth)
	thinRule := faintStyle.Render(strings.Repeat("-", sectionWidth))

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(headerStyle.Render("📱 FRAENK DATA CONSUMPTION") + "\n")
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "Phone: %s\n", orNA(report.Customer.MSISDN))
	fmt.Fprintf(&b, "Contract: %s\n", orNA(report.Customer.ContractType))

	b.WriteString("\n" + thinRule + "\n")

	for _, pass := range report.Passes {
		name := pass.PassName
		if name == "" {
			name = "Unknown"
		}
		b.WriteString("\n" + passStyle.Render("📊 "+name) + "\n")
		fmt.Fprintf(&b, "   Used: %s / %s\n", orNA(pass.UsedVolume), orNA(pass.InitialVolume))
		fmt.Fprintf(&b, "   Usage: %d%%\n", pass.PercentageConsumption)

		if pass.ExpiryTimestamp != 0 {
			expiry := time.UnixMilli(pass.ExpiryTimestamp)
			fmt.Fprintf(&b, "   Expires: %s\n", expiry.Format(expiryLayout))
		}
	}

	b.WriteString("\n" + rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
