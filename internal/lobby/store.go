package lobby

import (
	"sort"
	"sync"

	"github.com/kpereira/lobbychat/internal/trivia"
)

// JoinResult describes the outcome of a join attempt.
type JoinResult int

const (
	// JoinNotFound means the lobby does not exist; the attempt is ignored.
	JoinNotFound JoinResult = iota
	// JoinFull means the lobby is at its human capacity.
	JoinFull
	// JoinRejoined means the username was already a member; membership is unchanged.
	JoinRejoined
	// JoinOK means the username was added as a new member.
	JoinOK
)

// SpawnStatus describes the outcome of a bot spawn attempt.
type SpawnStatus int

const (
	// SpawnOK means the persona was added to the lobby's active set.
	SpawnOK SpawnStatus = iota
	// SpawnLobbyNotFound means the lobby does not exist.
	SpawnLobbyNotFound
	// SpawnSeatLimit means the lobby already has maxBots active personas.
	SpawnSeatLimit
	// SpawnDuplicate means the persona is already active in the lobby.
	SpawnDuplicate
)

// Store manages all lobbies in memory. It provides thread-safe access; every
// exported method acquires the store mutex for its full duration so each
// operation observes and mutates a consistent snapshot.
type Store struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
	bank    *trivia.Bank
}

// NewStore initializes an empty Store backed by the given question bank.
func NewStore(bank *trivia.Bank) *Store {
	return &Store{
		lobbies: make(map[string]*Lobby),
		bank:    bank,
	}
}

// Create inserts a new lobby iff the id is unused and reports whether it was
// created. A second create for the same id is a no-op, not an error.
func (s *Store) Create(id string, maxHumans, maxBots int, isPrivate bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.lobbies[id]; exists {
		return false
	}
	s.lobbies[id] = &Lobby{
		ID:        id,
		MaxHumans: maxHumans,
		MaxBots:   maxBots,
		IsPrivate: isPrivate,
	}
	return true
}

// Summaries returns the public projection of every lobby, sorted by id for
// stable listings.
func (s *Store) Summaries() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Summary, 0, len(s.lobbies))
	for _, l := range s.lobbies {
		out = append(out, Summary{
			ID:        l.ID,
			Users:     len(l.Users),
			MaxHumans: l.MaxHumans,
			IsPrivate: l.IsPrivate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Join attempts to add username to the lobby's member set. Capacity is
// enforced only for first-time joins; a username already present rejoins
// without changing membership.
func (s *Store) Join(id, username string) JoinResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return JoinNotFound
	}
	if l.hasUser(username) {
		return JoinRejoined
	}
	if len(l.Users) >= l.MaxHumans {
		return JoinFull
	}
	l.Users = append(l.Users, username)
	return JoinOK
}

// Leave removes username from the lobby's member set and reports whether the
// user was a member. The lobby itself persists even when empty.
func (s *Store) Leave(id, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return false
	}
	return l.removeUser(username)
}

// MemberCount returns the number of members in the lobby, or 0 if absent.
func (s *Store) MemberCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lobbies[id]; ok {
		return len(l.Users)
	}
	return 0
}

// Exists reports whether a lobby with the given id has been created.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lobbies[id]
	return ok
}

// RecordAnswer checks the candidate against the lobby's current question.
// On a match the question index advances by one and true is returned;
// otherwise no state changes.
func (s *Store) RecordAnswer(id, candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return false
	}
	if !s.bank.Matches(l.CurrentQuestionIndex, candidate) {
		return false
	}
	l.CurrentQuestionIndex++
	return true
}

// QuestionIndex returns the lobby's current question index, or -1 if the
// lobby does not exist.
func (s *Store) QuestionIndex(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lobbies[id]; ok {
		return l.CurrentQuestionIndex
	}
	return -1
}

// CurrentQuestions returns the effective question for every lobby with at
// least one member. Empty lobbies are skipped but keep their progress.
func (s *Store) CurrentQuestions() map[string]trivia.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]trivia.Question)
	for id, l := range s.lobbies {
		if len(l.Users) == 0 {
			continue
		}
		out[id] = s.bank.At(l.CurrentQuestionIndex)
	}
	return out
}

// SpawnBot attempts to activate a persona in the lobby, enforcing the bot
// seat limit and rejecting duplicates.
func (s *Store) SpawnBot(id, botName string) SpawnStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return SpawnLobbyNotFound
	}
	if len(l.SpawnedBots) >= l.MaxBots {
		return SpawnSeatLimit
	}
	if l.hasBot(botName) {
		return SpawnDuplicate
	}
	l.SpawnedBots = append(l.SpawnedBots, botName)
	return SpawnOK
}

// SpawnedBots returns a copy of the lobby's active persona names.
func (s *Store) SpawnedBots(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return nil
	}
	out := make([]string, len(l.SpawnedBots))
	copy(out, l.SpawnedBots)
	return out
}
