package orchestrate

import (
	"strings"

	"github.com/rvasay/atelier/internal/snapshot"
)

// promptPreamble is the fixed instructional text appended after the
// context and user message on every invocation.
const promptPreamble = `You are operating in a complete development workspace with access to:
- project/ - The application being built
- planning/ - Requirements and planning documents
- chat-history/ - Previous conversation history

Please help the user build their application. You can:
1. Create/modify files in any workspace directory
2. Update planning documents as requirements evolve
3. Reference previous conversations and decisions

IMPORTANT: New projects are scaffolded with:
- Complete file structure (see ARCHITECTURE.md)
- All components as placeholder files with documentation comments
- Global documentation files (COMPONENTS.md, STYLING.md, STATE.md)

Use this scaffolding to understand the entire application structure and make global changes effectively.

Focus on iterative development - ask clarifying questions and build incrementally.`

// BuildPrompt renders the single prompt string handed to the agent:
// serialized context, then the user message, then the fixed preamble.
func BuildPrompt(snap *snapshot.Snapshot, userMessage string) string {
	var b strings.Builder
	b.WriteString("WORKSPACE CONTEXT:\n")
	b.WriteString(snap.JSON())
	b.WriteString("\n\nUSER MESSAGE:\n")
	b.WriteString(userMessage)
	b.WriteString("\n\n")
	b.WriteString(promptPreamble)
	b.WriteString("\n")
	return b.String()
}
