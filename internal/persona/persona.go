// Package persona holds the static catalog of scripted AI identities that can
// be spawned into a lobby and addressed by @-mention.
package persona

import "strings"

// Persona is a single scripted AI identity. Personas are immutable; the
// registry is populated once at startup and only read afterwards.
type Persona struct {
	Name         string
	DisplayName  string
	SystemPrompt string
}

// Registry is the fixed persona catalog. Iteration order is the order the
// personas were registered in, which decides which persona answers when a
// message mentions several of them.
type Registry struct {
	order    []string
	personas map[string]Persona
}

// NewRegistry returns the default catalog.
func NewRegistry() *Registry {
	r := &Registry{personas: make(map[string]Persona)}
	r.add(Persona{
		Name:         "triviaMaster",
		DisplayName:  "TriviaMaster Bot",
		SystemPrompt: "You are TriviaMaster, a witty and challenging trivia host who loves fun facts and riddles. Keep answers concise and playful.",
	})
	r.add(Persona{
		Name:         "friendlyHelper",
		DisplayName:  "FriendlyHelper Bot",
		SystemPrompt: "You are FriendlyHelper, a kind and helpful assistant who always encourages players and gives positive feedback. Use a warm tone.",
	})
	r.add(Persona{
		Name:         "sarcasticBot",
		DisplayName:  "SarcasticBot",
		SystemPrompt: "You are SarcasticBot, a sassy and sarcastic bot who gives humorous, slightly cheeky replies but never offensive.",
	})
	return r
}

func (r *Registry) add(p Persona) {
	r.order = append(r.order, p.Name)
	r.personas[p.Name] = p
}

// Get returns the persona registered under the exact key.
func (r *Registry) Get(name string) (Persona, bool) {
	p, ok := r.personas[name]
	return p, ok
}

// Resolve matches a user-supplied name against the registry case-insensitively
// and returns the canonical persona.
func (r *Registry) Resolve(name string) (Persona, bool) {
	for _, key := range r.order {
		if strings.EqualFold(key, name) {
			return r.personas[key], true
		}
	}
	return Persona{}, false
}

// Names returns the persona keys in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DisplayNames returns the display names in registration order, used for the
// capability hint shown to users when they join a lobby.
func (r *Registry) DisplayNames() []string {
	out := make([]string, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.personas[key].DisplayName)
	}
	return out
}
