package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vyaparbooks/billing_app/internal/core/domain"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/handlers"
	"github.com/vyaparbooks/billing_app/internal/platform/config"
	"github.com/vyaparbooks/billing_app/internal/utils/allocation"
)

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) PreviewTaxRegime(ctx context.Context, organizationID string, req dto.TaxRegimePreviewRequest) (domain.TaxRegime, error) {
	args := m.Called(ctx, organizationID, req)
	return args.Get(0).(domain.TaxRegime), args.Error(1)
}

func (m *MockTaxService) PreviewItemTax(ctx context.Context, organizationID string, req dto.ItemTaxPreviewRequest) (domain.TaxBreakup, domain.TaxRegime, error) {
	args := m.Called(ctx, organizationID, req)
	return args.Get(0).(domain.TaxBreakup), args.Get(1).(domain.TaxRegime), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.TaxSvcFacade = (*MockTaxService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) PreviewAllocation(ctx context.Context, organizationID string, req dto.PreviewAllocationRequest) (allocation.Allocation, allocation.Totals, error) {
	args := m.Called(ctx, organizationID, req)
	var alloc allocation.Allocation
	if args.Get(0) != nil {
		alloc = args.Get(0).(allocation.Allocation)
	}
	return alloc, args.Get(1).(allocation.Totals), args.Error(2)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, organizationID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type TaxHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockTaxService     *MockTaxService
	mockPaymentService *MockPaymentService

	orgID string
}

func (suite *TaxHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.orgID = "org-1"

	suite.mockTaxService = new(MockTaxService)
	suite.mockPaymentService = new(MockPaymentService)

	services := &portssvc.ServiceContainer{
		Tax:     suite.mockTaxService,
		Payment: suite.mockPaymentService,
	}
	// Swagger stays off so no generated docs are required.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, services)
}

func (suite *TaxHandlerTestSuite) postJSON(path string, body any, withOrgHeader bool) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if withOrgHeader {
		req.Header.Set("x-organization-id", suite.orgID)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TaxHandlerTestSuite) TestPreviewTaxRegime_Success() {
	expected := domain.TaxRegime{
		Regime:   domain.RegimeInter,
		IGSTRate: decimal.NewFromInt(18),
		Reason:   "Inter-state transaction",
	}
	suite.mockTaxService.On("PreviewTaxRegime", mock.Anything, suite.orgID, mock.AnythingOfType("dto.TaxRegimePreviewRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/tax/regime-preview", dto.TaxRegimePreviewRequest{CustomerID: "cust-1"}, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TaxRegimeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INTER", resp.Regime)
	suite.Equal("Inter-state transaction", resp.Reason)
	suite.True(resp.IGSTRate.Equal(decimal.NewFromInt(18)))
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestPreviewTaxRegime_MissingOrgHeader() {
	w := suite.postJSON("/api/v1/tax/regime-preview", dto.TaxRegimePreviewRequest{}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTaxService.AssertNotCalled(suite.T(), "PreviewTaxRegime")
}

func (suite *TaxHandlerTestSuite) TestPreviewItemTax_Success() {
	regime := domain.TaxRegime{
		Regime:   domain.RegimeIntra,
		CGSTRate: decimal.NewFromInt(9),
		SGSTRate: decimal.NewFromInt(9),
		Reason:   "Same state transaction",
	}
	tax := domain.TaxBreakup{
		CGST:  decimal.NewFromInt(90),
		SGST:  decimal.NewFromInt(90),
		IGST:  decimal.Zero,
		Total: decimal.NewFromInt(180),
	}
	suite.mockTaxService.On("PreviewItemTax", mock.Anything, suite.orgID, mock.AnythingOfType("dto.ItemTaxPreviewRequest")).
		Return(tax, regime, nil).Once()

	w := suite.postJSON("/api/v1/tax/item-preview", dto.ItemTaxPreviewRequest{
		Amount:     decimal.NewFromInt(1000),
		GSTRate:    decimal.NewFromInt(18),
		CustomerID: "cust-1",
	}, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ItemTaxResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CGST.Equal(decimal.NewFromInt(90)))
	suite.True(resp.Total.Equal(decimal.NewFromInt(180)))
	suite.Equal("INTRA", resp.Regime.Regime)
}

func (suite *TaxHandlerTestSuite) TestPreviewAllocation_Success() {
	alloc := allocation.Allocation{
		"bill-1": domain.BillAllocation{BillID: "bill-1", Payment: decimal.NewFromInt(50)},
	}
	totals := allocation.Totals{
		AmountPaid:      decimal.NewFromInt(80),
		UsedForPayments: decimal.NewFromInt(50),
		AmountInExcess:  decimal.NewFromInt(30),
	}
	suite.mockPaymentService.On("PreviewAllocation", mock.Anything, suite.orgID, mock.AnythingOfType("dto.PreviewAllocationRequest")).
		Return(alloc, totals, nil).Once()

	w := suite.postJSON("/api/v1/payments/allocation-preview", dto.PreviewAllocationRequest{
		VendorID: "vendor-1",
		Amount:   decimal.NewFromInt(80),
	}, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PreviewAllocationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Allocations, 1)
	suite.Equal("bill-1", resp.Allocations[0].BillID)
	suite.True(resp.Totals.AmountInExcess.Equal(decimal.NewFromInt(30)))
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func TestTaxHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaxHandlerTestSuite))
}
