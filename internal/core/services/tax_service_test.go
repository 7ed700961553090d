package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/core/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

type TaxServiceTestSuite struct {
	suite.Suite
	mockOrgRepo      *MockOrganizationRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.TaxSvcFacade

	orgID string
}

func (suite *TaxServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewTaxService(suite.mockOrgRepo, suite.mockCustomerRepo)
	suite.orgID = "org-1"
}

func (suite *TaxServiceTestSuite) expectOrganization(stateCode string) {
	suite.mockOrgRepo.On("FindOrganizationByID", context.Background(), suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, StateCode: stateCode, CurrencyCode: "INR", IsActive: true}, nil).Once()
}

func (suite *TaxServiceTestSuite) TestPreviewTaxRegime_NoCustomerDefaultsToIntra() {
	suite.expectOrganization("27")

	regime, err := suite.service.PreviewTaxRegime(context.Background(), suite.orgID, dto.TaxRegimePreviewRequest{})

	suite.Require().NoError(err)
	suite.Equal(domain.RegimeIntra, regime.Regime)
	suite.Equal("No customer selected", regime.Reason)
	suite.True(regime.CGSTRate.Equal(decimal.NewFromInt(9)))
	suite.True(regime.SGSTRate.Equal(decimal.NewFromInt(9)))
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestPreviewTaxRegime_StoredCustomerInterState() {
	suite.expectOrganization("27")
	customer := &domain.Customer{
		CustomerID:     "cust-1",
		OrganizationID: suite.orgID,
		Name:           "Karnataka Traders",
		TaxPreference:  domain.Taxable,
		PlaceOfSupply:  "29 - Karnataka",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-1").
		Return(customer, nil).Once()

	regime, err := suite.service.PreviewTaxRegime(context.Background(), suite.orgID, dto.TaxRegimePreviewRequest{CustomerID: "cust-1"})

	suite.Require().NoError(err)
	suite.Equal(domain.RegimeInter, regime.Regime)
	suite.Equal("Inter-state transaction", regime.Reason)
	suite.True(regime.IGSTRate.Equal(decimal.NewFromInt(18)))
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestPreviewTaxRegime_InlineCustomerPayload() {
	suite.expectOrganization("27")

	regime, err := suite.service.PreviewTaxRegime(context.Background(), suite.orgID, dto.TaxRegimePreviewRequest{
		Customer: map[string]any{
			"name":            "Walk-in exempt",
			"taxPreference":   "tax_exempt",
			"exemptionReason": "SEZ unit",
		},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RegimeExempt, regime.Regime)
	suite.Equal("SEZ unit", regime.Reason)
	suite.True(regime.CGSTRate.IsZero())
	suite.True(regime.IGSTRate.IsZero())
}

func (suite *TaxServiceTestSuite) TestPreviewTaxRegime_MissingOrgStateCodeFallsBack() {
	suite.expectOrganization("")
	customer := &domain.Customer{
		CustomerID:    "cust-2",
		TaxPreference: domain.Taxable,
		GSTIN:         "27AAAPL1234C1ZV",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-2").
		Return(customer, nil).Once()

	regime, err := suite.service.PreviewTaxRegime(context.Background(), suite.orgID, dto.TaxRegimePreviewRequest{CustomerID: "cust-2"})

	suite.Require().NoError(err)
	suite.Equal(domain.RegimeIntra, regime.Regime)
	suite.Equal("Same state transaction", regime.Reason)
}

func (suite *TaxServiceTestSuite) TestPreviewItemTax_IntraSplitsHalves() {
	suite.expectOrganization("27")
	customer := &domain.Customer{
		CustomerID:    "cust-3",
		TaxPreference: domain.Taxable,
		PlaceOfSupply: "27 - Maharashtra",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-3").
		Return(customer, nil).Once()

	tax, regime, err := suite.service.PreviewItemTax(context.Background(), suite.orgID, dto.ItemTaxPreviewRequest{
		Amount:     decimal.NewFromInt(1000),
		GSTRate:    decimal.NewFromInt(18),
		CustomerID: "cust-3",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RegimeIntra, regime.Regime)
	suite.True(tax.CGST.Equal(decimal.NewFromInt(90)), "CGST was %s", tax.CGST)
	suite.True(tax.SGST.Equal(decimal.NewFromInt(90)), "SGST was %s", tax.SGST)
	suite.True(tax.IGST.IsZero())
	suite.True(tax.Total.Equal(decimal.NewFromInt(180)), "total was %s", tax.Total)
}

func (suite *TaxServiceTestSuite) TestPreviewItemTax_ZeroRateYieldsNoTax() {
	suite.expectOrganization("27")

	tax, _, err := suite.service.PreviewItemTax(context.Background(), suite.orgID, dto.ItemTaxPreviewRequest{
		Amount: decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.True(tax.Total.IsZero())
}

func TestTaxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
