package analyze

import (
	"regexp"
	"strings"
)

var markdownHeadingPattern = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)

// MarkdownHeadingCount counts level 1 through 3 headings in markdown content.
func MarkdownHeadingCount(content string) int {
	return len(markdownHeadingPattern.FindAllString(content, -1))
}

// OptimizedMarkdownHeadingCount counts level 1 through 3 markdown headings
// that contain the target keyword. Used to verify generated drafts against
// their heading targets.
func OptimizedMarkdownHeadingCount(content, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	count := 0
	for _, match := range markdownHeadingPattern.FindAllStringSubmatch(content, -1) {
		if strings.Contains(strings.ToLower(match[1]), keyword) {
			count++
		}
	}
	return count
}
