package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
)

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, organizationID, customerID string, updatedByUserID string) error {
	args := m.Called(ctx, organizationID, customerID, updatedByUserID)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, organizationID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) error {
	args := m.Called(ctx, invoice, lines)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, organizationID, invoiceID string, status domain.InvoiceStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, organizationID, invoiceID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, organizationID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLinesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invoices, token, args.Error(2)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, organizationID, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, organizationID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, organizationID string, vendorID string, limit int, offset int) ([]domain.Bill, error) {
	args := m.Called(ctx, organizationID, vendorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListOutstandingBills(ctx context.Context, organizationID, vendorID string) ([]domain.Bill, error) {
	args := m.Called(ctx, organizationID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, billIncrements map[string]decimal.Decimal) error {
	args := m.Called(ctx, payment, billIncrements)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
