package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/core/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockBillRepo     *MockBillRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.PaymentSvcFacade

	orgID    string
	vendorID string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockBillRepo, suite.mockCustomerRepo)
	suite.orgID = "org-1"
	suite.vendorID = "vendor-1"
}

func (suite *PaymentServiceTestSuite) expectVendor() {
	suite.mockCustomerRepo.On("FindCustomerByID", context.Background(), suite.orgID, suite.vendorID).
		Return(&domain.Customer{CustomerID: suite.vendorID, OrganizationID: suite.orgID, IsActive: true}, nil).Once()
}

func (suite *PaymentServiceTestSuite) outstandingBills() []domain.Bill {
	return []domain.Bill{
		{
			BillID:     "bill-old",
			VendorID:   suite.vendorID,
			Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Total:      decimal.NewFromInt(50),
			AmountPaid: decimal.Zero,
		},
		{
			BillID:     "bill-new",
			VendorID:   suite.vendorID,
			Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Total:      decimal.NewFromInt(100),
			AmountPaid: decimal.Zero,
		},
	}
}

func (suite *PaymentServiceTestSuite) TestPreviewAllocation_OldestFirst() {
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	alloc, totals, err := suite.service.PreviewAllocation(context.Background(), suite.orgID, dto.PreviewAllocationRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(120),
	})

	suite.Require().NoError(err)
	suite.Len(alloc, 2)
	suite.True(alloc["bill-old"].Payment.Equal(decimal.NewFromInt(50)))
	suite.True(alloc["bill-new"].Payment.Equal(decimal.NewFromInt(70)))
	suite.True(totals.UsedForPayments.Equal(decimal.NewFromInt(120)))
	suite.True(totals.AmountInExcess.IsZero())
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestPreviewAllocation_InlineBillsSkipRepo() {
	alloc, totals, err := suite.service.PreviewAllocation(context.Background(), suite.orgID, dto.PreviewAllocationRequest{
		Amount: decimal.NewFromInt(30),
		Bills: []map[string]any{
			{"billID": "b1", "date": "2024-02-01", "total": 20.0, "amountPaid": 0.0},
			{"billID": "b2", "date": "2024-02-10", "balanceDue": 40.0},
		},
	})

	suite.Require().NoError(err)
	suite.True(alloc["b1"].Payment.Equal(decimal.NewFromInt(20)))
	suite.True(alloc["b2"].Payment.Equal(decimal.NewFromInt(10)))
	suite.True(totals.AmountInExcess.IsZero())
	suite.mockBillRepo.AssertNotCalled(suite.T(), "ListOutstandingBills")
}

func (suite *PaymentServiceTestSuite) TestPreviewAllocation_NonPositiveAmountIsEmpty() {
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	alloc, totals, err := suite.service.PreviewAllocation(context.Background(), suite.orgID, dto.PreviewAllocationRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.Zero,
	})

	suite.Require().NoError(err)
	suite.Empty(alloc)
	suite.True(totals.UsedForPayments.IsZero())
}

func (suite *PaymentServiceTestSuite) TestPreviewAllocation_MissingVendorAndBills() {
	_, _, err := suite.service.PreviewAllocation(context.Background(), suite.orgID, dto.PreviewAllocationRequest{
		Amount: decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_AutoAllocatesAndIncrementsBills() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	suite.mockPaymentRepo.On("SavePayment", context.Background(),
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.VendorID == suite.vendorID &&
				p.Amount.Equal(decimal.NewFromInt(120)) &&
				p.ExcessAmount.IsZero() &&
				len(p.Allocations) == 2
		}),
		mock.MatchedBy(func(increments map[string]decimal.Decimal) bool {
			return increments["bill-old"].Equal(decimal.NewFromInt(50)) &&
				increments["bill-new"].Equal(decimal.NewFromInt(70))
		}),
	).Return(nil).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(120),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal("user-1", payment.CreatedBy)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ExcessKeptOnPayment() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	suite.mockPaymentRepo.On("SavePayment", context.Background(),
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.ExcessAmount.Equal(decimal.NewFromInt(50))
		}),
		mock.Anything,
	).Return(nil).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(200),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(payment.ExcessAmount.Equal(decimal.NewFromInt(50)))
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_OverridesApplied() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	suite.mockPaymentRepo.On("SavePayment", context.Background(),
		mock.MatchedBy(func(p domain.Payment) bool {
			return len(p.Allocations) == 1 && p.Allocations[0].BillID == "bill-new" &&
				p.Allocations[0].Payment.Equal(decimal.NewFromInt(60)) &&
				p.ExcessAmount.Equal(decimal.NewFromInt(40))
		}),
		mock.Anything,
	).Return(nil).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(100),
		Allocations: []dto.PaymentAllocationOverride{
			{BillID: "bill-new", Amount: decimal.NewFromInt(60)},
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_OverrideExceedsOpenBalance() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(100),
		Allocations: []dto.PaymentAllocationOverride{
			{BillID: "bill-old", Amount: decimal.NewFromInt(80)},
		},
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_OverridesExceedAmount() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(100),
		Allocations: []dto.PaymentAllocationOverride{
			{BillID: "bill-old", Amount: decimal.NewFromInt(50)},
			{BillID: "bill-new", Amount: decimal.NewFromInt(90)},
		},
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(-5),
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_SaveError() {
	suite.expectVendor()
	suite.mockBillRepo.On("ListOutstandingBills", context.Background(), suite.orgID, suite.vendorID).
		Return(suite.outstandingBills(), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", context.Background(), mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	payment, err := suite.service.CreatePayment(context.Background(), suite.orgID, dto.CreatePaymentRequest{
		VendorID: suite.vendorID,
		Amount:   decimal.NewFromInt(10),
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, assert.AnError)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
