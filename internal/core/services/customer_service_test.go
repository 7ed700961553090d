package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/core/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockOrgRepo      *MockOrganizationRepository
	service          portssvc.CustomerSvcFacade

	orgID string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, suite.mockOrgRepo)
	suite.orgID = "org-1"
}

func (suite *CustomerServiceTestSuite) expectOrganization() {
	suite.mockOrgRepo.On("FindOrganizationByID", context.Background(), suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, StateCode: "27", CurrencyCode: "INR", IsActive: true}, nil).Once()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_NormalizesStringAddress() {
	suite.expectOrganization()

	suite.mockCustomerRepo.On("SaveCustomer", context.Background(), mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Acme Traders" &&
			c.DisplayName == "Acme Traders" && // defaults from name
			c.BillingAddress.Street == "12 MG Road, Pune" &&
			c.TaxPreference == domain.Taxable &&
			c.CurrencyCode == "INR" &&
			c.IsActive
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(context.Background(), suite.orgID, dto.CreateCustomerRequest{
		Name:           "Acme Traders",
		BillingAddress: "12 MG Road, Pune",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(suite.orgID, customer.OrganizationID)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_StructuredAddressAndExemption() {
	suite.expectOrganization()

	suite.mockCustomerRepo.On("SaveCustomer", context.Background(), mock.MatchedBy(func(c domain.Customer) bool {
		return c.TaxPreference == domain.TaxExempt &&
			c.ExemptionReason == "SEZ unit" &&
			c.BillingAddress.City == "Bengaluru" &&
			c.BillingAddress.PostalCode == "560001"
	})).Return(nil).Once()

	_, err := suite.service.CreateCustomer(context.Background(), suite.orgID, dto.CreateCustomerRequest{
		Name:            "SEZ Exports",
		TaxPreference:   "TAX_EXEMPT",
		ExemptionReason: "SEZ unit",
		BillingAddress: map[string]any{
			"street": "1 Tech Park",
			"city":   "Bengaluru",
			"zip":    "560001",
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	existing := &domain.Customer{
		CustomerID:     "cust-1",
		OrganizationID: suite.orgID,
		Name:           "Old Name",
		Phone:          "111",
		TaxPreference:  domain.Taxable,
		IsActive:       true,
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-1").
		Return(existing, nil).Once()

	newPhone := "222"
	suite.mockCustomerRepo.On("UpdateCustomer", context.Background(), mock.MatchedBy(func(c domain.Customer) bool {
		return c.Phone == "222" && c.Name == "Old Name" && c.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(context.Background(), suite.orgID, "cust-1", dto.UpdateCustomerRequest{
		Phone: &newPhone,
	}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("222", updated.Phone)
	suite.Equal("Old Name", updated.Name)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestSnapshotCustomer_CopiesTaxFields() {
	existing := &domain.Customer{
		CustomerID:      "cust-2",
		OrganizationID:  suite.orgID,
		Name:            "Snap Co",
		TaxPreference:   domain.TaxExempt,
		GSTIN:           "29AAAPL1234C1ZV",
		PlaceOfSupply:   "29 - Karnataka",
		ExemptionReason: "Charitable trust",
	}
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, "cust-2").
		Return(existing, nil).Once()

	snapshot, err := suite.service.SnapshotCustomer(context.Background(), suite.orgID, "cust-2")

	suite.Require().NoError(err)
	suite.Equal("cust-2", snapshot.CustomerID)
	suite.Equal("Snap Co", snapshot.CustomerName)
	suite.Equal(domain.TaxExempt, snapshot.TaxPreference)
	suite.Equal("29 - Karnataka", snapshot.PlaceOfSupply)
	suite.False(snapshot.SnapshotDate.IsZero())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_RepoError() {
	suite.mockCustomerRepo.On("DeactivateCustomer", context.Background(), suite.orgID, "cust-3", "user-1").
		Return(assert.AnError).Once()

	err := suite.service.DeactivateCustomer(context.Background(), suite.orgID, "cust-3", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
