package analyses

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedJSON captures the first JSON object inside a ```json markdown fence.
// The non-greedy body means the earliest complete fence wins when several
// are present.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// CleanModelResponse extracts a valid JSON object from a raw model reply
// that may be wrapped in markdown. The captured substring is returned
// verbatim, never re-serialized. If no fenced block is found, or the
// capture does not parse, the whole input is returned trimmed; downstream
// consumers must treat that fallback as opaque text.
func CleanModelResponse(raw string) string {
	if match := fencedJSON.FindStringSubmatch(raw); match != nil {
		candidate := match[1]
		if json.Valid([]byte(candidate)) {
			return candidate
		}
	}
	return strings.TrimSpace(raw)
}
