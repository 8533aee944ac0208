package session

import "strings"

// FormatTranscript renders dialogue turns as "ROLE: content" lines, one per
// turn, preserving input order. The result feeds every derivation and is
// persisted verbatim as the raw transcript. An empty dialogue yields an
// empty string.
func FormatTranscript(turns []DialogueTurn) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(strings.ToUpper(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
