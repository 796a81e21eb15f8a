package usecase

import "time"

type CreateSessionRepository interface {
	Create(sessionId string, username string, ttl time.Duration) error
}

// FindSessionRepository resolves a session id to its username. A missing or
// expired session yields an empty username with a nil error.
type FindSessionRepository interface {
	Find(sessionId string) (string, error)
}

type DeleteSessionRepository interface {
	Delete(sessionId string) error
}
