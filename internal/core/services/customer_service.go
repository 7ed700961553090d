package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portsrepo "github.com/vyaparbooks/billing_app/internal/core/ports/repositories"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
	"github.com/vyaparbooks/billing_app/internal/utils/mapping"
)

// CustomerService handles business logic related to customers and vendors.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	orgRepo      portsrepo.OrganizationRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(cr portsrepo.CustomerRepositoryFacade, or portsrepo.OrganizationRepositoryFacade) portssvc.CustomerSvcFacade {
	return &CustomerService{
		customerRepo: cr,
		orgRepo:      or,
	}
}

// Ensure CustomerService implements the facade interface
var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// CreateCustomer persists a new customer for the organization. Addresses
// arrive in whatever shape the caller has them and are normalized here.
func (s *CustomerService) CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate organization: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Name
	}

	taxPreference := domain.TaxPreference(req.TaxPreference)
	if taxPreference == "" {
		taxPreference = domain.Taxable
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = org.CurrencyCode
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:      uuid.NewString(),
		OrganizationID:  organizationID,
		Name:            req.Name,
		DisplayName:     displayName,
		CompanyName:     req.CompanyName,
		Email:           req.Email,
		Phone:           req.Phone,
		BillingAddress:  mapping.NormalizeAddress(req.BillingAddress),
		ShippingAddress: mapping.NormalizeAddress(req.ShippingAddress),
		GSTTreatment:    req.GSTTreatment,
		TaxPreference:   taxPreference,
		GSTIN:           req.GSTIN,
		PlaceOfSupply:   req.PlaceOfSupply,
		PAN:             req.PAN,
		ExemptionReason: req.ExemptionReason,
		CurrencyCode:    currencyCode,
		PaymentTerms:    req.PaymentTerms,
		PriceList:       req.PriceList,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer in repository", slog.String("error", err.Error()), slog.String("customer_name", req.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID), slog.String("organization_id", organizationID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer scoped to an organization.
func (s *CustomerService) GetCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	return customer, nil
}

// ListCustomers retrieves active customers of an organization.
func (s *CustomerService) ListCustomers(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	customers, err := s.customerRepo.ListCustomers(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// SnapshotCustomer captures the immutable point-in-time copy used on transactions.
func (s *CustomerService) SnapshotCustomer(ctx context.Context, organizationID, customerID string) (*domain.CustomerSnapshot, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for snapshot: %w", err)
	}
	snapshot := customer.Snapshot(time.Now())
	return &snapshot, nil
}

// UpdateCustomer applies partial updates to a customer. Nil pointer fields
// leave the stored value unchanged.
func (s *CustomerService) UpdateCustomer(ctx context.Context, organizationID, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for update: %w", err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.DisplayName != nil {
		customer.DisplayName = *req.DisplayName
	}
	if req.CompanyName != nil {
		customer.CompanyName = *req.CompanyName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.BillingAddress != nil {
		customer.BillingAddress = mapping.NormalizeAddress(req.BillingAddress)
	}
	if req.ShippingAddress != nil {
		customer.ShippingAddress = mapping.NormalizeAddress(req.ShippingAddress)
	}
	if req.GSTTreatment != nil {
		customer.GSTTreatment = *req.GSTTreatment
	}
	if req.TaxPreference != nil {
		customer.TaxPreference = domain.TaxPreference(*req.TaxPreference)
	}
	if req.GSTIN != nil {
		customer.GSTIN = *req.GSTIN
	}
	if req.PlaceOfSupply != nil {
		customer.PlaceOfSupply = *req.PlaceOfSupply
	}
	if req.PAN != nil {
		customer.PAN = *req.PAN
	}
	if req.ExemptionReason != nil {
		customer.ExemptionReason = *req.ExemptionReason
	}
	if req.CurrencyCode != nil {
		customer.CurrencyCode = *req.CurrencyCode
	}
	if req.PaymentTerms != nil {
		customer.PaymentTerms = *req.PaymentTerms
	}
	if req.PriceList != nil {
		customer.PriceList = *req.PriceList
	}

	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = updaterUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeactivateCustomer soft-deletes a customer. Existing transactions keep
// their captured snapshots.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, organizationID, customerID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeactivateCustomer(ctx, organizationID, customerID, updaterUserID); err != nil {
		logger.Error("Failed to deactivate customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}

	logger.Info("Customer deactivated", slog.String("customer_id", customerID), slog.String("organization_id", organizationID))
	return nil
}
