package session

import (
	"regexp"
	"strings"
)

// Turn is one parsed transcript block.
type Turn struct {
	Role    Role
	Time    string // HH:MM:SS as written in the block header
	Content string
}

// blockPattern matches turn headers: "## USER (12:30:45)" at line start.
var blockPattern = regexp.MustCompile(`(?m)^## (USER|ASSISTANT) \((\d{2}:\d{2}:\d{2})\)$`)

// ParseTurns splits a session log back into its turns. Content between
// headers is trimmed of the surrounding blank lines the block format adds.
// Text before the first header (there should be none) is ignored.
func ParseTurns(log string) []Turn {
	matches := blockPattern.FindAllStringSubmatchIndex(log, -1)
	if len(matches) == 0 {
		return nil
	}

	turns := make([]Turn, 0, len(matches))
	for i, m := range matches {
		end := len(log)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		role := RoleUser
		if log[m[2]:m[3]] == "ASSISTANT" {
			role = RoleAssistant
		}

		turns = append(turns, Turn{
			Role:    role,
			Time:    log[m[4]:m[5]],
			Content: strings.TrimSpace(log[m[1]:end]),
		})
	}
	return turns
}
