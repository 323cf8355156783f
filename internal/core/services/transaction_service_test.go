package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_app/internal/core/services"
	"github.com/SscSPs/procurement_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) (int64, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func float64Ptr(f float64) *float64 {
	return &f
}

func invoiceRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		InvoiceNumber:       strPtr("INV-1001"),
		Supplier:            strPtr("Acme"),
		InvoiceDate:         strPtr("2024-03-01T10:00:00+01:00"),
		TransactionValueNOK: float64Ptr(1250.5),
		SpendCategoryL1:     strPtr("IT"),
		SpendCategoryL2:     strPtr("Software"),
		SpendCategoryL3:     strPtr("SaaS"),
		SpendCategoryL4:     strPtr("CRM"),
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DecodesDatesAndAssignsIdentity() {
	ctx := context.Background()
	req := invoiceRequest()
	wantInvoiceDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ID == 0 && t.InvoiceNumber == "INV-1001" && t.Supplier == "Acme" &&
			t.InvoiceDate != nil && t.InvoiceDate.Equal(wantInvoiceDate) && t.DueDate == nil &&
			t.TransactionValueNOK == 1250.5 && t.SpendCategoryL4 == "CRM"
	})).Return(int64(8), nil).Once()

	transaction, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(transaction)
	suite.Equal(int64(8), transaction.ID)
	suite.Equal("INV-1001", transaction.InvoiceNumber)
	suite.Equal("Acme", transaction.Supplier)
	suite.Equal(1250.5, transaction.TransactionValueNOK)
	suite.Require().NotNil(transaction.InvoiceDate)
	_, offset := transaction.InvoiceDate.Zone()
	suite.Equal(3600, offset, "submitted offset should be kept")
	suite.Nil(transaction.DueDate)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MalformedDateIsValidationError() {
	ctx := context.Background()
	req := invoiceRequest()
	req.DueDate = strPtr("31/03/2024")

	transaction, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_StoreFailure() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreFailure("failed to insert transaction", assert.AnError)

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(int64(0), storeErr).Once()

	transaction, err := suite.service.CreateTransaction(ctx, invoiceRequest())

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrStoreFailure)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	transaction, err := suite.service.GetTransactionByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	expected := &domain.Transaction{ID: 3, InvoiceNumber: "INV-3"}

	suite.mockRepo.On("FindTransactionByID", ctx, int64(3)).Return(expected, nil).Once()

	transaction, err := suite.service.GetTransactionByID(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(expected, transaction)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction(nil), nil).Once()

	transactions, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(transactions)
	suite.Empty(transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListTransactions", ctx).Return(nil, assert.AnError).Once()

	transactions, err := suite.service.ListTransactions(ctx)

	suite.Require().Error(err)
	suite.Nil(transactions)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
