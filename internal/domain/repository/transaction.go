package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// Cascading removals (store -> products -> favorites, user -> favorites) run through it
// so that a failure is all-or-nothing.
type RepositoryFactory interface {
	// NewStoreRepository returns a StoreRepository bound to the current transaction.
	NewStoreRepository() StoreRepository

	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewFavoriteRepository returns a FavoriteRepository bound to the current transaction.
	NewFavoriteRepository() FavoriteRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
