package inventory

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/domain/mocks"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("0b6f1f43-8e0f-4b8d-9f3a-52b4a6f1d9c2")

type testDeps struct {
	useCase       *InventoryUseCase
	userRepo      *mocks.MockUserRepository
	inventoryRepo *mocks.MockInventoryRepository
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	uc := NewInventoryUseCase(userRepo, inventoryRepo, 20, logger.NewNop()).(*InventoryUseCase)
	return testDeps{useCase: uc, userRepo: userRepo, inventoryRepo: inventoryRepo}
}

func createTestItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{ID: uuid.New(), Name: "item", Rarity: i % 5}
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int64
		want  int
	}{
		{count: 0, want: 1},
		{count: 1, want: 1},
		{count: 20, want: 1},
		{count: 21, want: 2},
		{count: 60, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, 20), "count=%d", tt.count)
	}
}

func TestGetInventory(t *testing.T) {
	d := newTestDeps(t)
	rarity := 4
	wantQuery := domain.InventoryQuery{
		UserID:   testUserID,
		Name:     "dragon",
		Rarity:   &rarity,
		SortBy:   domain.SortByName,
		Order:    domain.OrderDesc,
		Offset:   20,
		PageSize: 20,
	}

	d.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.inventoryRepo.EXPECT().Count(gomock.Any(), wantQuery).Return(int64(45), nil)
	d.inventoryRepo.EXPECT().List(gomock.Any(), wantQuery).Return(createTestItems(20), nil)

	filters := domain.InventoryFilters{Name: " dragon ", Rarity: "4", SortBy: "Name", Order: "DESC"}
	page, err := d.useCase.GetInventory(context.Background(), testUserID.String(), 2, filters)
	require.NoError(t, err)

	assert.Len(t, page.Items, 20)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.NoError(t, page.Validate())
}

func TestGetInventoryEmpty(t *testing.T) {
	d := newTestDeps(t)
	d.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.inventoryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	d.inventoryRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	page, err := d.useCase.GetInventory(context.Background(), testUserID.String(), 1, domain.DefaultInventoryFilters())
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetInventoryRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		page     int
		filters  domain.InventoryFilters
		wantCode string
	}{
		{name: "Malformed_User_ID", userID: "42", page: 1, wantCode: domain.ErrCodeInvalidFormat},
		{name: "Page_Zero", userID: testUserID.String(), page: 0, wantCode: "VALIDATION_ERROR"},
		{name: "Unknown_Sort", userID: testUserID.String(), page: 1, filters: domain.InventoryFilters{SortBy: "price"}, wantCode: "VALIDATION_ERROR"},
		{name: "Unknown_Order", userID: testUserID.String(), page: 1, filters: domain.InventoryFilters{Order: "up"}, wantCode: "VALIDATION_ERROR"},
		{name: "Bad_Rarity", userID: testUserID.String(), page: 1, filters: domain.InventoryFilters{Rarity: "rare"}, wantCode: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)

			page, err := d.useCase.GetInventory(context.Background(), tt.userID, tt.page, tt.filters)
			assert.Nil(t, page)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}

func TestGetInventoryPageOutOfRange(t *testing.T) {
	d := newTestDeps(t)
	d.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.inventoryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(25), nil)
	d.inventoryRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Item{}, nil)

	_, err := d.useCase.GetInventory(context.Background(), testUserID.String(), 3, domain.DefaultInventoryFilters())

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestGetInventoryUnknownUser(t *testing.T) {
	d := newTestDeps(t)
	d.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, nil)
	d.inventoryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	d.inventoryRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Item{}, nil)

	_, err := d.useCase.GetInventory(context.Background(), testUserID.String(), 1, domain.DefaultInventoryFilters())

	assert.Equal(t, http.StatusNotFound, domain.StatusOf(err))
}

func TestGetInventoryDatabaseError(t *testing.T) {
	d := newTestDeps(t)
	d.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(&domain.User{ID: testUserID}, nil).AnyTimes()
	d.inventoryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))
	d.inventoryRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := d.useCase.GetInventory(context.Background(), testUserID.String(), 1, domain.DefaultInventoryFilters())

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}
