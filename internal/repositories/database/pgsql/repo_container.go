package pgsql

import (
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo:       newPgxEventRepository(dbPool),
		CashbookRepo:    newPgxCashbookRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
