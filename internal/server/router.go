package server

import (
	"regexp"
	"strings"

	"github.com/kpereira/lobbychat/internal/persona"
)

// Command is the classification of one inbound chat message. Classification
// is a pure function of the message text; trivia answers and bot mentions are
// evaluated separately because they apply to every plain message.
type Command interface {
	isCommand()
}

// SpawnRequest asks to activate the named bot in the sender's lobby. The name
// is as typed; it still has to be resolved against the persona registry.
type SpawnRequest struct {
	BotName string
}

// PlainMessage is any chat line that is not a recognized command.
type PlainMessage struct{}

func (SpawnRequest) isCommand() {}
func (PlainMessage) isCommand() {}

// spawnRe matches "spawn botName" or "spawn @botName" at the start of a
// message, case-insensitively.
var spawnRe = regexp.MustCompile(`(?i)^spawn\s+@?(\w+)`)

// ClassifyCommand inspects a chat message and returns its command variant.
func ClassifyCommand(message string) Command {
	if m := spawnRe.FindStringSubmatch(message); m != nil {
		return SpawnRequest{BotName: m[1]}
	}
	return PlainMessage{}
}

// mentionedPersonas returns the personas that are both @-mentioned in the
// message and currently spawned in the lobby, in registry order. The caller
// picks the first one; only a single persona responds per message.
func mentionedPersonas(registry *persona.Registry, spawned []string, message string) []persona.Persona {
	lower := strings.ToLower(message)
	active := make(map[string]bool, len(spawned))
	for _, name := range spawned {
		active[name] = true
	}
	var out []persona.Persona
	for _, name := range registry.Names() {
		if !strings.Contains(lower, "@"+strings.ToLower(name)) {
			continue
		}
		if !active[name] {
			continue
		}
		if p, ok := registry.Get(name); ok {
			out = append(out, p)
		}
	}
	return out
}
