package orchestrate

import "strings"

// Fixed-vocabulary heuristics for new-project intent and name extraction.
// These are deliberately narrow string checks, not NLP: tests pin exact
// input/output pairs and the vocabularies below are the whole contract.

// scaffoldKeywords signal new-project intent. Matching is case-insensitive
// substring membership against the lowered message, no stemming.
var scaffoldKeywords = []string{
	"build", "create", "make", "start", "new", "app", "application", "project",
}

// projectNouns are the domain nouns a project name is read off of: the
// token immediately preceding one of these becomes the name.
var projectNouns = map[string]bool{
	"app":         true,
	"application": true,
	"site":        true,
	"platform":    true,
	"tool":        true,
}

// DefaultProjectName is used when no noun pattern matches.
const DefaultProjectName = "React App"

// ShouldScaffold reports whether the message heuristically signals
// new-project intent.
func ShouldScaffold(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range scaffoldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractProjectInfo derives a best-effort project name from the message.
// "build a todo app" yields "Todo App". The description is always the
// message itself.
func ExtractProjectInfo(message string) (name, description string) {
	name = DefaultProjectName
	words := strings.Fields(message)
	for i, word := range words {
		if projectNouns[strings.ToLower(word)] && i > 0 {
			name = titleWord(words[i-1]) + " " + titleWord(word)
			break
		}
	}
	return name, message
}

// titleWord upper-cases the first letter and lower-cases the rest.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
