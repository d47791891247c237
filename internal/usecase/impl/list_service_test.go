package impl

import (
	"context"
	"testing"

	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/domain/repository"
	mockRepo "shopsync/internal/mocks/repository"
	mockSvc "shopsync/internal/mocks/service"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListService(t *testing.T, deps ListServiceParams) usecase.ListUsecase {
	t.Helper()

	if deps.Metrics == nil {
		deps.Metrics = newTestMetrics()
	}
	if deps.Logger == nil {
		deps.Logger = newDiscardLogger()
	}

	return NewListService(deps)
}

func TestListService_CreateList(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	ownerID := uuid.New()
	listID := uuid.New()

	mockListRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.List")).
		RunAndReturn(func(_ context.Context, list *entity.List) error {
			list.ID = listID

			return nil
		})

	svc := newListService(t, ListServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	list, err := svc.CreateList(context.Background(), &usecase.CreateListInput{
		UserID: ownerID,
		Name:   "Groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, listID, list.ID)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, ownerID, list.CreatedBy)
	assert.Empty(t, list.Items)
}

func TestListService_GetLists(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	userID := uuid.New()

	expected := []*entity.List{
		{ID: uuid.New(), Name: "Groceries", CreatedBy: userID},
		{ID: uuid.New(), Name: "Hardware", CreatedBy: uuid.New()},
	}

	mockListRepo.EXPECT().FindByUser(mock.Anything, userID).Return(expected, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	lists, err := svc.GetLists(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, expected, lists)
}

func TestListService_AddItem_AsGrantee(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)

	ownerID := uuid.New()
	granteeID := uuid.New()
	listID := uuid.New()

	sharedList := &entity.List{
		ID:        listID,
		Name:      "Groceries",
		CreatedBy: ownerID,
		SharedWith: []entity.SharingGrant{
			{ID: uuid.New(), UserID: granteeID, Relationship: "family"},
		},
	}

	mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(sharedList, nil).Once()

	mockListRepo.EXPECT().
		AddItem(mock.Anything, listID, mock.AnythingOfType("*entity.ListItem")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, item *entity.ListItem) error {
			item.ID = uuid.New()

			return nil
		})

	updated := &entity.List{
		ID:        listID,
		Name:      "Groceries",
		CreatedBy: ownerID,
		Items:     []entity.ListItem{{ID: uuid.New(), Text: "Milk"}},
	}
	mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(updated, nil).Once()

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	list, err := svc.AddItem(context.Background(), &usecase.AddItemInput{
		UserID: granteeID,
		ListID: listID,
		Text:   "Milk",
	})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, "Milk", list.Items[0].Text)
}

func TestListService_AddItem_Forbidden(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)

	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: uuid.New()}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.AddItem(context.Background(), &usecase.AddItemInput{
		UserID: uuid.New(),
		ListID: listID,
		Text:   "Milk",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListService_AddItem_ListNotFound(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)

	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(nil, repository.ErrListNotFound)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.AddItem(context.Background(), &usecase.AddItemInput{
		UserID: uuid.New(),
		ListID: listID,
		Text:   "Milk",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListNotFound)
}

func TestListService_ToggleItem_FlipsBothWays(t *testing.T) {
	ownerID := uuid.New()
	listID := uuid.New()
	itemID := uuid.New()

	cases := []struct {
		name    string
		current bool
		want    bool
	}{
		{name: "unbought to bought", current: false, want: true},
		{name: "bought back to unbought", current: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockListRepo := mockRepo.NewMockListRepository(t)
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().ListRepo().Return(mockListRepo)

			before := &entity.List{
				ID:        listID,
				CreatedBy: ownerID,
				Items:     []entity.ListItem{{ID: itemID, Text: "Milk", Bought: tc.current}},
			}
			after := &entity.List{
				ID:        listID,
				CreatedBy: ownerID,
				Items:     []entity.ListItem{{ID: itemID, Text: "Milk", Bought: tc.want}},
			}

			mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(before, nil).Once()
			mockListRepo.EXPECT().SetItemBought(mock.Anything, listID, itemID, tc.want).Return(nil)
			mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(after, nil).Once()

			svc := newListService(t, ListServiceParams{
				TxManager:     newPassthroughTxManager(t, mockFactory),
				ListRepo:      mockListRepo,
				UserRepo:      mockRepo.NewMockUserRepository(t),
				QRCodeService: mockSvc.NewMockQRCodeService(t),
			})

			list, err := svc.ToggleItem(context.Background(), &usecase.ToggleItemInput{
				UserID: ownerID,
				ListID: listID,
				ItemID: itemID,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, list.Items[0].Bought)
		})
	}
}

func TestListService_ToggleItem_ItemNotFound(t *testing.T) {
	ownerID := uuid.New()
	listID := uuid.New()

	mockListRepo := mockRepo.NewMockListRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ToggleItem(context.Background(), &usecase.ToggleItemInput{
		UserID: ownerID,
		ListID: listID,
		ItemID: uuid.New(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestListService_ShareList_Success(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	ownerID := uuid.New()
	targetID := uuid.New()
	listID := uuid.New()

	list := &entity.List{ID: listID, Name: "Groceries", CreatedBy: ownerID}

	mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(list, nil).Once()
	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "bob").
		Return(&entity.User{ID: targetID, Username: "bob"}, nil)

	mockListRepo.EXPECT().
		AddGrant(mock.Anything, listID, mock.AnythingOfType("*entity.SharingGrant")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, grant *entity.SharingGrant) error {
			assert.Equal(t, targetID, grant.UserID)
			assert.Equal(t, "friend", grant.Relationship)
			grant.ID = uuid.New()

			return nil
		})

	updated := &entity.List{
		ID:        listID,
		Name:      "Groceries",
		CreatedBy: ownerID,
		SharedWith: []entity.SharingGrant{
			{ID: uuid.New(), UserID: targetID, Relationship: "friend"},
		},
	}
	mockListRepo.EXPECT().FindByID(mock.Anything, listID).Return(updated, nil).Once()

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockUserRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         ownerID,
		ListID:         listID,
		TargetUsername: "bob",
		Relationship:   "friend",
	})
	require.NoError(t, err)
	require.Len(t, got.SharedWith, 1)
	assert.Equal(t, targetID, got.SharedWith[0].UserID)
}

func TestListService_ShareList_CustomRelationship(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	ownerID := uuid.New()
	targetID := uuid.New()
	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil).Once()
	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "bob").
		Return(&entity.User{ID: targetID, Username: "bob"}, nil)

	// "other" must never be stored; the custom label replaces it.
	mockListRepo.EXPECT().
		AddGrant(mock.Anything, listID, mock.MatchedBy(func(grant *entity.SharingGrant) bool {
			return grant.Relationship == "flatmate"
		})).
		Return(nil)

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil).Once()

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockUserRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:             ownerID,
		ListID:             listID,
		TargetUsername:     "bob",
		Relationship:       "other",
		CustomRelationship: "flatmate",
	})
	require.NoError(t, err)
}

func TestListService_ShareList_ValidationFailures(t *testing.T) {
	svc := newListService(t, ListServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		ListRepo:      mockRepo.NewMockListRepository(t),
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         uuid.New(),
		ListID:         uuid.New(),
		TargetUsername: "bob",
		Relationship:   "acquaintance",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         uuid.New(),
		ListID:         uuid.New(),
		TargetUsername: "bob",
		Relationship:   "other",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListService_ShareList_NotOwner(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t)).Maybe()

	granteeID := uuid.New()
	listID := uuid.New()

	// Even a grantee may not share; only the owner can.
	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{
			ID:        listID,
			CreatedBy: uuid.New(),
			SharedWith: []entity.SharingGrant{
				{ID: uuid.New(), UserID: granteeID, Relationship: "family"},
			},
		}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         granteeID,
		ListID:         listID,
		TargetUsername: "bob",
		Relationship:   "friend",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListService_ShareList_TargetNotFound(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	ownerID := uuid.New()
	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil)
	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockUserRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         ownerID,
		ListID:         listID,
		TargetUsername: "ghost",
		Relationship:   "friend",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestListService_ShareList_AlreadyShared(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	ownerID := uuid.New()
	targetID := uuid.New()
	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{
			ID:        listID,
			CreatedBy: ownerID,
			SharedWith: []entity.SharingGrant{
				{ID: uuid.New(), UserID: targetID, Relationship: "friend"},
			},
		}, nil)
	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "bob").
		Return(&entity.User{ID: targetID, Username: "bob"}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockUserRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         ownerID,
		ListID:         listID,
		TargetUsername: "bob",
		Relationship:   "friend",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyShared)
}

func TestListService_ShareList_WithSelf(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().ListRepo().Return(mockListRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	ownerID := uuid.New()
	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil)
	mockUserRepo.EXPECT().
		FindByUsername(mock.Anything, "alice").
		Return(&entity.User{ID: ownerID, Username: "alice"}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     newPassthroughTxManager(t, mockFactory),
		ListRepo:      mockListRepo,
		UserRepo:      mockUserRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareList(context.Background(), &usecase.ShareListInput{
		UserID:         ownerID,
		ListID:         listID,
		TargetUsername: "alice",
		Relationship:   "family",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyShared)
}

func TestListService_ShareQR(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)
	mockQRService := mockSvc.NewMockQRCodeService(t)

	ownerID := uuid.New()
	listID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: ownerID}, nil)
	mockQRService.EXPECT().GenerateShareQR(listID).Return(png, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockQRService,
	})

	got, err := svc.ShareQR(context.Background(), &usecase.ShareQRInput{UserID: ownerID, ListID: listID})
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestListService_ShareQR_NotOwner(t *testing.T) {
	mockListRepo := mockRepo.NewMockListRepository(t)

	listID := uuid.New()

	mockListRepo.EXPECT().
		FindByID(mock.Anything, listID).
		Return(&entity.List{ID: listID, CreatedBy: uuid.New()}, nil)

	svc := newListService(t, ListServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		ListRepo:      mockListRepo,
		UserRepo:      mockRepo.NewMockUserRepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	_, err := svc.ShareQR(context.Background(), &usecase.ShareQRInput{UserID: uuid.New(), ListID: listID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
