package repository

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(tx RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProjectRepository() ProjectRepository
	NewAnalyticsRepository() AnalyticsRepository
}
