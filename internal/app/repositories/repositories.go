package repositories

import (
	"github.com/gradchat/gradchat/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository *AccountRepository
	ProfileRepository *ProfileRepository
	TokenRepository   *TokenRepository
	PostRepository    *PostRepository
	EventRepository   *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AccountRepository: NewAccountRepository(database),
		ProfileRepository: NewProfileRepository(database.Pool),
		TokenRepository:   NewTokenRepository(database.Pool),
		PostRepository:    NewPostRepository(database.Pool),
		EventRepository:   NewEventRepository(database.Pool),
	}
}
