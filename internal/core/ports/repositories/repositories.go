package repositories

// RepositoryProvider aggregates the repositories the service layer composes.
type RepositoryProvider struct {
	EventRepo       EventRepositoryFacade
	CashbookRepo    CashbookRepositoryWithTx
	TransactionRepo TransactionRepositoryWithTx
}
