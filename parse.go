package cinelink

import (
	"regexp"
	"strings"
)

var (
	resolutionRe  = regexp.MustCompile(`\d+p`)
	sizeRe        = regexp.MustCompile(`(?i)[\d.]+\s*[GM]B`)
	refreshURLRe  = regexp.MustCompile(`(?i)url=(.+)`)
	fileNameRe    = regexp.MustCompile(`(?i)File Name:[ \t]*([^\n]+)`)
	fileSizeRe    = regexp.MustCompile(`(?i)File Size:[ \t]*([^\n]+)`)
	subtitleTagRe = regexp.MustCompile(`(?i)(Sinhala Subtitles?\s*\|\s*සිංහල උපසිරැසි සමඟ|Sinhala Subtitles?|with Sinhala Subtitles?|සිංහල උපසිරැසි\s*සමඟ|\|\s*සිංහල උපසිරැසි(?:\s*සමඟ)?)`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
)

// ParseResolution returns the first resolution token (e.g. "720p") in text.
func ParseResolution(text string) (string, bool) {
	m := resolutionRe.FindString(text)
	return m, m != ""
}

// ParseSize returns the first size token (e.g. "1.4 GB") in text.
func ParseSize(text string) (string, bool) {
	m := sizeRe.FindString(text)
	return m, m != ""
}

// ParseFileName returns the value of a "File Name:" line in text.
func ParseFileName(text string) (string, bool) {
	return labeledValue(fileNameRe, text)
}

// ParseFileSize returns the value of a "File Size:" line in text.
func ParseFileSize(text string) (string, bool) {
	return labeledValue(fileSizeRe, text)
}

// labeledValue returns the trimmed rest of the line matched by re.
func labeledValue(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

// ParseRefreshURL extracts the target of a meta refresh directive such as
// "0;url=https://example.com/next".
func ParseRefreshURL(content string) (string, bool) {
	m := refreshURLRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	v := strings.Trim(strings.TrimSpace(m[1]), `"'`)
	return v, v != ""
}

// CleanTitle strips the subtitle-language tags the site appends to titles
// and collapses whitespace.
func CleanTitle(title string) string {
	title = subtitleTagRe.ReplaceAllString(title, "")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(title, " "))
}
