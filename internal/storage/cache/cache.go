package cache

import (
	"sync"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
)

// Cache holds generated sessions between generation and scoring,
// keyed by session id.
type Cache struct {
	mu       sync.Mutex
	sessions map[string]models.QuizSession
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]models.QuizSession),
	}
}

func (c *Cache) SetSession(session models.QuizSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[session.ID] = session
}

func (c *Cache) GetSession(id string) (models.QuizSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[id]
	return session, exists
}

func (c *Cache) DeleteSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
}
