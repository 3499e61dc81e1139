package report

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Validate checks a payload against the metadata schema and returns the
// validated ReportMetadata. All violated rules are collected into a single
// ValidationError; defaulting blank notes from the owner email is the only
// auto-correction.
func Validate(p Payload) (ReportMetadata, error) {
	var violations []FieldViolation

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			violations = append(violations, FieldViolation{Field: field, Message: "is required"})
		}
	}

	require("title", p.Title)
	require("media_team", p.MediaTeam)
	require("owner.name", p.Owner.Name)
	require("description", p.Description)

	if !validEmail(p.Owner.Email) {
		violations = append(violations, FieldViolation{Field: "owner.email", Message: "must be a well-formed email address"})
	}

	frequency := Frequency(p.Frequency)
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		violations = append(violations, FieldViolation{Field: "frequency", Message: "must be one of daily, weekly, monthly"})
	}

	if !validURL(p.ReportLink) {
		violations = append(violations, FieldViolation{Field: "report_link", Message: "must be a well-formed URL"})
	}
	if p.BigQueryLink != "" && !validURL(p.BigQueryLink) {
		violations = append(violations, FieldViolation{Field: "bigquery_link", Message: "must be a well-formed URL"})
	}
	if p.Automated && p.BigQueryLink == "" {
		violations = append(violations, FieldViolation{Field: "bigquery_link", Message: "is required when automated=true"})
	}

	for i, sheet := range p.GoogleSheets {
		if strings.TrimSpace(sheet.Subtitle) == "" {
			violations = append(violations, FieldViolation{
				Field:   fmt.Sprintf("google_sheets[%d].subtitle", i),
				Message: "is required",
			})
		}
		if !validURL(sheet.URL) {
			violations = append(violations, FieldViolation{
				Field:   fmt.Sprintf("google_sheets[%d].url", i),
				Message: "must be a well-formed URL",
			})
		}
	}

	if len(violations) > 0 {
		return ReportMetadata{}, &ValidationError{Violations: violations}
	}

	notes := p.Notes
	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("For access issues, contact %s", p.Owner.Email)
	}
	version := p.Version
	if version == "" {
		version = "1.0"
	}

	return ReportMetadata{
		Title:        p.Title,
		MediaTeam:    p.MediaTeam,
		Owner:        p.Owner,
		Frequency:    frequency,
		Platforms:    p.Platforms,
		Tools:        p.Tools,
		Automated:    p.Automated,
		GoogleSheets: p.GoogleSheets,
		BigQueryLink: p.BigQueryLink,
		ReportLink:   p.ReportLink,
		Adjustments:  p.Adjustments,
		Description:  p.Description,
		Notes:        notes,
		Version:      version,
		Changelog:    p.Changelog,
	}, nil
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject display-name forms; the payload carries a bare address.
	return addr.Address == value
}

func validURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
