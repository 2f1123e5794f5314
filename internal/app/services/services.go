package services

// Services defined in this package:
// - AuthService: registration, login, token refresh, logout
// - IdentityService: cohort classification and profile category resolution
// - ProfileService: category-scoped profile loads and partial updates
// - FeedService: owner-scoped post/event feeds and live event broadcasts
// - DirectoryService: role-tag browsing of senior mentors
// - ChatService: mentor chatbot relay to the completion API
