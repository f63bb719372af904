package postgres

// Test-only access to unit of work internals.

type TrackedAggregate = trackedAggregate

func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return f.create()
}

func (uow *GormUnitOfWork) InTransaction() bool {
	return uow.inTransaction()
}

func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return uow.tracked()
}
