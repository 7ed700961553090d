package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/core/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerRepository
	mockOrgRepo      *MockOrganizationRepository
	service          portssvc.InvoiceSvcFacade

	orgID string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCustomerRepo, suite.mockOrgRepo)
	suite.orgID = "org-1"
}

func (suite *InvoiceServiceTestSuite) expectOrganization(stateCode string) {
	suite.mockOrgRepo.On("FindOrganizationByID", context.Background(), suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, StateCode: stateCode, CurrencyCode: "INR", IsActive: true}, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_IntraStateTotals() {
	suite.expectOrganization("27")
	customer := &domain.Customer{
		CustomerID:    "cust-1",
		Name:          "Mumbai Retail",
		TaxPreference: domain.Taxable,
		PlaceOfSupply: "27 - Maharashtra",
		CurrencyCode:  "INR",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-1").
		Return(customer, nil).Once()

	suite.mockInvoiceRepo.On("SaveInvoice", context.Background(),
		mock.MatchedBy(func(inv domain.Invoice) bool {
			return inv.Status == domain.InvoiceDraft &&
				inv.Regime == domain.RegimeIntra &&
				inv.Snapshot.CustomerID == "cust-1" &&
				inv.SubTotal.Equal(decimal.NewFromInt(1000)) &&
				inv.CGSTTotal.Equal(decimal.NewFromInt(90)) &&
				inv.SGSTTotal.Equal(decimal.NewFromInt(90)) &&
				inv.IGSTTotal.IsZero() &&
				inv.GrandTotal.Equal(decimal.NewFromInt(1180))
		}),
		mock.AnythingOfType("[]domain.InvoiceLine"),
	).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(context.Background(), suite.orgID, dto.CreateInvoiceRequest{
		CustomerID:    "cust-1",
		InvoiceNumber: "INV-001",
		InvoiceDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Lines: []dto.CreateInvoiceLineRequest{
			{Description: "Widgets", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100), GSTRate: decimal.NewFromInt(18)},
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Len(invoice.Lines, 1)
	suite.True(invoice.Lines[0].LineTotal.Equal(decimal.NewFromInt(1180)))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InterStateUsesIGST() {
	suite.expectOrganization("27")
	customer := &domain.Customer{
		CustomerID:    "cust-2",
		TaxPreference: domain.Taxable,
		PlaceOfSupply: "29 - Karnataka",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-2").
		Return(customer, nil).Once()

	suite.mockInvoiceRepo.On("SaveInvoice", context.Background(),
		mock.MatchedBy(func(inv domain.Invoice) bool {
			return inv.Regime == domain.RegimeInter &&
				inv.CGSTTotal.IsZero() && inv.SGSTTotal.IsZero() &&
				inv.IGSTTotal.Equal(decimal.NewFromInt(180))
		}),
		mock.Anything,
	).Return(nil).Once()

	_, err := suite.service.CreateInvoice(context.Background(), suite.orgID, dto.CreateInvoiceRequest{
		CustomerID:    "cust-2",
		InvoiceNumber: "INV-002",
		InvoiceDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Lines: []dto.CreateInvoiceLineRequest{
			{Description: "Widgets", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1000), GSTRate: decimal.NewFromInt(18)},
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_CustomerNotFound() {
	suite.expectOrganization("27")
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(context.Background(), suite.orgID, dto.CreateInvoiceRequest{
		CustomerID:    "missing",
		InvoiceNumber: "INV-003",
		InvoiceDate:   time.Now(),
		Lines: []dto.CreateInvoiceLineRequest{
			{Description: "Widgets", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		},
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_FromDraft() {
	invoice := &domain.Invoice{InvoiceID: "inv-1", OrganizationID: suite.orgID, Status: domain.InvoiceDraft}
	suite.mockInvoiceRepo.On("FindInvoiceByID", context.Background(), suite.orgID, "inv-1").
		Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", context.Background(), suite.orgID, "inv-1", domain.InvoiceFinalized, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.FinalizeInvoice(context.Background(), suite.orgID, "inv-1", "user-1")

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_AlreadyVoid() {
	invoice := &domain.Invoice{InvoiceID: "inv-2", OrganizationID: suite.orgID, Status: domain.InvoiceVoid}
	suite.mockInvoiceRepo.On("FindInvoiceByID", context.Background(), suite.orgID, "inv-2").
		Return(invoice, nil).Once()

	err := suite.service.FinalizeInvoice(context.Background(), suite.orgID, "inv-2", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus")
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_LoadsLines() {
	invoice := &domain.Invoice{InvoiceID: "inv-3", OrganizationID: suite.orgID, Status: domain.InvoiceDraft}
	lines := []domain.InvoiceLine{{LineID: "line-1", InvoiceID: "inv-3"}}
	suite.mockInvoiceRepo.On("FindInvoiceByID", context.Background(), suite.orgID, "inv-3").
		Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindLinesByInvoiceID", context.Background(), "inv-3").
		Return(lines, nil).Once()

	got, err := suite.service.GetInvoiceByID(context.Background(), suite.orgID, "inv-3")

	suite.Require().NoError(err)
	suite.Len(got.Lines, 1)
	suite.Equal("line-1", got.Lines[0].LineID)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
