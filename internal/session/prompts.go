package session

// editorPrompt turns a raw brainstorming transcript into a structured
// markdown document. The generation step itself recognizes vacuous
// transcripts and answers with the no-content sentinel instead of a document.
const editorPrompt = `You are an expert editor. The user has just finished a brainstorming session.
Output a clean, structured Markdown document.
- Use H1 (#) for a catchy title.
- Use H2 (##) for sections.
- Use bullet points for key details.
- Do NOT summarize if the user wants raw detail, but organize it logically.
- Feel free to use bolding and italics for emphasis.
If the transcript contains no coherent content (silence, pure small talk), output exactly: NO CONTENT AVAILABLE`

const debatePrompt = `You are an expert editor. The user has just finished a structured debate.
Output a clean, structured Markdown document.
- Use H1 (#) for the motion or central question.
- Use H2 (##) sections for each position, strongest arguments, and rebuttals.
- Use bullet points for key claims and evidence.
- Keep the positions balanced; do not declare a winner unless the transcript does.
If the transcript contains no coherent content (silence, pure small talk), output exactly: NO CONTENT AVAILABLE`

const coachPrompt = `You are an expert editor. The user has just finished a coaching session.
Output a clean, structured Markdown document.
- Use H1 (#) for the session theme.
- Use H2 (##) sections for insights, commitments, and open questions.
- Use bullet points for concrete action items, each starting with a verb.
- Preserve the user's own wording for goals and commitments.
If the transcript contains no coherent content (silence, pure small talk), output exactly: NO CONTENT AVAILABLE`

const titlePrompt = "You are a database indexer. Read the transcript and output a single, catchy Title (max 6 words). Do not use quotes."

const descriptionPrompt = "You are an archivist. Read the transcript and output a brief 2-sentence summary (max 30 words) for a dashboard card."

// documentPrompts selects the document derivation prompt by session type.
var documentPrompts = map[string]string{
	"scribe": editorPrompt,
	"debate": debatePrompt,
	"coach":  coachPrompt,
}

// documentPrompt returns the prompt for sessionType, falling back to the
// editor prompt for unknown types.
func documentPrompt(sessionType string) string {
	if prompt, ok := documentPrompts[sessionType]; ok {
		return prompt
	}
	return editorPrompt
}
