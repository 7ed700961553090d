package services

import (
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.OrganizationRepo)
	container.Tax = NewTaxService(repos.OrganizationRepo, repos.CustomerRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.OrganizationRepo)
	container.Bill = NewBillService(repos.BillRepo, repos.CustomerRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BillRepo, repos.CustomerRepo)

	return container
}
