package repository

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Distributors   DistributorRepository
	Clients        ClientRepository
	Employees      EmployeeRepository
	Readings       ReadingRepository
	Users          UserRepository
	PasswordResets PasswordResetRepository
}
