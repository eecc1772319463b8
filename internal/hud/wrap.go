package hud

import "strings"

// wrapText breaks text into lines no wider than maxWidth according to
// measure. A single word wider than maxWidth gets its own line.
func wrapText(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
