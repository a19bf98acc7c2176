package jobdesc

import (
	"regexp"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`[ \t]+`)
	blankRun    = regexp.MustCompile(`\n\n\n+`)
	bulletGlyph = strings.NewReplacer("•", "- ", "·", "- ", "●", "- ", "▪", "- ")
)

// CleanText normalizes pasted job posting text: line endings, bullet glyphs,
// whitespace runs, and excessive blank lines. Structure (line breaks, bullet
// lists) is preserved so the experience regexes still see natural sentences.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = bulletGlyph.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
