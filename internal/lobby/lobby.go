// Package lobby manages the ephemeral in-memory lobby state: membership,
// capacity, spawned bots, and trivia progress.
package lobby

// Lobby holds the mutable state for one named room. All fields are guarded by
// the owning Store's mutex; lobbies are never removed once created.
type Lobby struct {
	ID                   string
	Users                []string
	CurrentQuestionIndex int
	MaxHumans            int
	MaxBots              int
	IsPrivate            bool
	SpawnedBots          []string
}

// Summary is the public projection of a lobby used for listings. Member
// identities and messages are never exposed through it.
type Summary struct {
	ID        string `json:"id"`
	Users     int    `json:"users"`
	MaxHumans int    `json:"maxHumans"`
	IsPrivate bool   `json:"isPrivate"`
}

func (l *Lobby) hasUser(username string) bool {
	for _, u := range l.Users {
		if u == username {
			return true
		}
	}
	return false
}

func (l *Lobby) hasBot(name string) bool {
	for _, b := range l.SpawnedBots {
		if b == name {
			return true
		}
	}
	return false
}

func (l *Lobby) removeUser(username string) bool {
	for i, u := range l.Users {
		if u == username {
			l.Users = append(l.Users[:i], l.Users[i+1:]...)
			return true
		}
	}
	return false
}
