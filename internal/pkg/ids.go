package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const gameIDLength = 8

// GenerateNewSessionID returns a random player session id.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID returns a short id that is easy to share with an opponent.
func GenerateGameID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return id[:gameIDLength]
}
