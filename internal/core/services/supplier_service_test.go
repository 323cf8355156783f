package services_test

import (
	"context"
	"testing"

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

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupplierRepository
	service  portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockRepo)
}

func strPtr(s string) *string {
	return &s
}

func acmeRequest() dto.CreateSupplierRequest {
	return dto.CreateSupplierRequest{
		Supplier:             strPtr("Acme"),
		SupplierNameOriginal: strPtr("Acme AS"),
		SupplierCountry:      strPtr("NO"),
		VatID:                strPtr("NO123"),
		NACE:                 strPtr("4611"),
	}
}

// --- Test Cases ---

func (suite *SupplierServiceTestSuite) TestCreateSupplier_EchoesInputWithIdentity() {
	ctx := context.Background()
	req := acmeRequest()

	suite.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.ID == 0 && s.Supplier == *req.Supplier && s.SupplierNameOriginal == *req.SupplierNameOriginal &&
			s.SupplierCountry == *req.SupplierCountry && s.VatID == *req.VatID && s.NACE == *req.NACE
	})).Return(int64(17), nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(supplier)
	suite.Equal(domain.Supplier{
		ID:                   17,
		Supplier:             "Acme",
		SupplierNameOriginal: "Acme AS",
		SupplierCountry:      "NO",
		VatID:                "NO123",
		NACE:                 "4611",
	}, *supplier)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSupplierByID", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_DuplicateSubmissionsCreateTwoRows() {
	ctx := context.Background()
	req := acmeRequest()

	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(int64(1), nil).Once()
	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(int64(2), nil).Once()

	first, err := suite.service.CreateSupplier(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.service.CreateSupplier(ctx, req)
	suite.Require().NoError(err)

	suite.Equal(int64(1), first.ID)
	suite.Equal(int64(2), second.ID)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveSupplier", 2)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_StoreFailure() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreFailure("failed to insert supplier", assert.AnError)

	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(int64(0), storeErr).Once()

	supplier, err := suite.service.CreateSupplier(ctx, acmeRequest())

	suite.Require().Error(err)
	suite.Nil(supplier)
	suite.ErrorIs(err, apperrors.ErrStoreFailure)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetSupplierByID_Success() {
	ctx := context.Background()
	expected := &domain.Supplier{ID: 5, Supplier: "Acme"}

	suite.mockRepo.On("FindSupplierByID", ctx, int64(5)).Return(expected, nil).Once()

	supplier, err := suite.service.GetSupplierByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(expected, supplier)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetSupplierByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindSupplierByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	supplier, err := suite.service.GetSupplierByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(supplier)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_Success() {
	ctx := context.Background()
	expected := []domain.Supplier{{ID: 1, Supplier: "Acme"}, {ID: 2, Supplier: "Globex"}}

	suite.mockRepo.On("ListSuppliers", ctx).Return(expected, nil).Once()

	suppliers, err := suite.service.ListSuppliers(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, suppliers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_Empty() {
	ctx := context.Background()
	var expected []domain.Supplier

	suite.mockRepo.On("ListSuppliers", ctx).Return(expected, nil).Once()

	suppliers, err := suite.service.ListSuppliers(ctx)

	suite.Require().NoError(err)
	suite.Empty(suppliers)
	suite.NotNil(suppliers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListSuppliers", ctx).Return(nil, assert.AnError).Once()

	suppliers, err := suite.service.ListSuppliers(ctx)

	suite.Require().Error(err)
	suite.Nil(suppliers)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_EmptyStringsArePreserved() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		Supplier:             strPtr(""),
		SupplierNameOriginal: strPtr(""),
		SupplierCountry:      strPtr(""),
		VatID:                strPtr(""),
		NACE:                 strPtr(""),
	}

	suite.mockRepo.On("SaveSupplier", ctx, domain.Supplier{}).Return(int64(4), nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Supplier{ID: 4}, *supplier)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestSupplierService(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
