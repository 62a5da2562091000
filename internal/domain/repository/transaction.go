package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to group tracker mutations without depending on a specific backend.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// The memory backend holds the store lock for the whole callback, so reads and
	// writes made through txRepoFactory observe and produce one consistent state.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewBoatRepository returns a BoatRepository bound to the current transaction.
	NewBoatRepository() BoatRepository

	// NewSOSRepository returns an SOSRepository bound to the current transaction.
	NewSOSRepository() SOSRepository

	// NewNotificationRepository returns a NotificationRepository bound to the current transaction.
	NewNotificationRepository() NotificationRepository

	// NewDeviceRepository returns a DeviceRepository bound to the current transaction.
	NewDeviceRepository() DeviceRepository
}
