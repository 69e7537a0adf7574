package cinelink

import (
	"fmt"
	"strings"
)

// FormatEntries formats download entries as a numbered listing.
// Empty size and language columns are shown as "-".
func FormatEntries(entries []DownloadEntry) string {
	if len(entries) == 0 {
		return ""
	}

	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		parts = append(parts, fmt.Sprintf("%d. %s  %s  %s\n   %s",
			i+1, e.Quality, dash(e.Size), dash(e.Language), e.Link))
	}

	return strings.Join(parts, "\n")
}

// FormatSeasons formats seasons as headed episode listings. A season
// without a title is headed by its number.
func FormatSeasons(seasons []Season) string {
	parts := make([]string, 0, len(seasons))
	for _, s := range seasons {
		var sb strings.Builder
		title := s.Title
		if title == "" {
			title = "Season " + s.Number
		}
		fmt.Fprintf(&sb, "%s (%d episodes)", title, len(s.Episodes))
		for _, e := range s.Episodes {
			fmt.Fprintf(&sb, "\n  %s  %s\n     %s", e.Number, e.Title, e.URL)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n")
}

// FormatOutcome formats an outcome as human-readable lines.
func FormatOutcome(o *Outcome) string {
	var sb strings.Builder
	if !o.OK() {
		stage, reason := Stage(""), "unknown error"
		if o.Failure != nil {
			stage, reason = o.Failure.Stage, o.Failure.Reason
		}
		fmt.Fprintf(&sb, "FAILED %s\n  stage: %s\n  error: %s", o.URL, stage, reason)
		return sb.String()
	}

	fmt.Fprintf(&sb, "OK %s", o.URL)
	if o.File.FileName != "" {
		fmt.Fprintf(&sb, "\n  file: %s", o.File.FileName)
	}
	if o.File.FileSize != "" {
		fmt.Fprintf(&sb, "\n  size: %s", o.File.FileSize)
	}
	fmt.Fprintf(&sb, "\n  stream: %s", o.File.StreamURL)
	for _, kind := range MirrorKinds {
		if u, ok := o.File.Mirror(kind); ok {
			fmt.Fprintf(&sb, "\n  %s: %s", kind, u)
		}
	}
	if o.Degraded {
		sb.WriteString("\n  (hosting page unavailable, stream link only)")
	}
	return sb.String()
}
