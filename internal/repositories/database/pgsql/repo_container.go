package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	organizationRepo := newPgxOrganizationRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	billRepo := newPgxBillRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OrganizationRepo: organizationRepo,
		CustomerRepo:     customerRepo,
		InvoiceRepo:      invoiceRepo,
		BillRepo:         billRepo,
		PaymentRepo:      paymentRepo,
	}
}
