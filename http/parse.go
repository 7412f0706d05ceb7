package http

import (
	"regexp"
	"strings"

	"github.com/figyaml/figyaml"
)

var (
	fileKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`figma\.com/design/([a-zA-Z0-9]+)`),
		regexp.MustCompile(`figma\.com/file/([a-zA-Z0-9]+)`),
	}
	bareKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	nodeIDPattern  = regexp.MustCompile(`node-id=([^&]+)`)
)

// ParseFileKey extracts the file key from a Figma design or file URL.
// A bare key is returned as-is.
func ParseFileKey(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "figma.com") {
		if bareKeyPattern.MatchString(raw) {
			return raw, nil
		}
		return "", figyaml.Errorf(figyaml.EINVALID, "invalid file key %q", raw)
	}
	for _, re := range fileKeyPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
	}
	return "", figyaml.Errorf(figyaml.EINVALID, "unrecognized Figma URL %q", raw)
}

// ParseNodeID extracts the node-id query parameter from a Figma URL,
// normalized to the API's colon form. Returns "" when absent.
func ParseNodeID(raw string) string {
	m := nodeIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], "-", ":")
}
