package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopsync/internal/delivery/context"
	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/domain/repository"
	"shopsync/internal/domain/service"
	"shopsync/internal/metrics"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listService implements the ListUsecase interface.
type listService struct {
	txManager     repository.TransactionManager
	listRepo      repository.ListRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// ListServiceParams holds dependencies for listService, injected by Fx.
type ListServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ListRepo      repository.ListRepository
	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
}

// NewListService is the constructor for listService.
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		txManager:     params.TxManager,
		listRepo:      params.ListRepo,
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateList creates an empty shopping list owned by the caller.
func (srv *listService) CreateList(ctx context.Context, input *usecase.CreateListInput) (*entity.List, error) {
	srv.log(ctx).Debug("Creating list", slog.Any("userID", input.UserID), slog.String("name", input.Name))

	newList := &entity.List{
		Name:      input.Name,
		CreatedBy: input.UserID,
	}

	if err := srv.listRepo.Create(ctx, newList); err != nil {
		srv.log(ctx).Error("Failed to create list", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create list")
	}

	srv.metrics.ListsCreated.Inc()

	return newList, nil
}

// GetLists retrieves every list the caller owns or has been granted access to.
func (srv *listService) GetLists(ctx context.Context, userID uuid.UUID) ([]*entity.List, error) {
	lists, err := srv.listRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load lists", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load lists")
	}

	return lists, nil
}

// AddItem appends an item to a list the caller can access and returns the
// updated list.
func (srv *listService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.List, error) {
	var updatedList *entity.List

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listRepo := repoFactory.ListRepo()

		list, err := srv.loadAccessibleList(ctx, listRepo, input.ListID, input.UserID)
		if err != nil {
			return err
		}

		newItem := &entity.ListItem{Text: input.Text}
		if err := listRepo.AddItem(ctx, list.ID, newItem); err != nil {
			return errors.Wrap(err, "failed to add item")
		}

		updatedList, err = listRepo.FindByID(ctx, list.ID)

		return errors.Wrap(err, "failed to reload list after adding item")
	})

	if err != nil {
		srv.log(ctx).Warn("Add item failed", slog.Any("listID", input.ListID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updatedList, nil
}

// ToggleItem flips one item's bought flag and returns the updated list.
// The read and write run in one transaction so concurrent toggles cannot
// interleave into a lost update.
func (srv *listService) ToggleItem(ctx context.Context, input *usecase.ToggleItemInput) (*entity.List, error) {
	var updatedList *entity.List

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listRepo := repoFactory.ListRepo()

		list, err := srv.loadAccessibleList(ctx, listRepo, input.ListID, input.UserID)
		if err != nil {
			return err
		}

		var current *entity.ListItem
		for i := range list.Items {
			if list.Items[i].ID == input.ItemID {
				current = &list.Items[i]

				break
			}
		}
		if current == nil {
			return errors.Wrap(domainerrors.ErrItemNotFound, "toggle failed")
		}

		if err := listRepo.SetItemBought(ctx, list.ID, input.ItemID, !current.Bought); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return errors.Wrap(domainerrors.ErrItemNotFound, "toggle failed")
			}

			return errors.Wrap(err, "failed to toggle item")
		}

		updatedList, err = listRepo.FindByID(ctx, list.ID)

		return errors.Wrap(err, "failed to reload list after toggling item")
	})

	if err != nil {
		srv.log(ctx).Warn("Toggle item failed", slog.Any("listID", input.ListID), slog.Any("itemID", input.ItemID), slog.Any("error", err))

		return nil, err
	}

	return updatedList, nil
}

// ShareList grants another user access to a list. Only the owner may share,
// and the relationship label must be one of the accepted values, with "other"
// replaced by the sharer's custom label before the grant is stored.
func (srv *listService) ShareList(ctx context.Context, input *usecase.ShareListInput) (*entity.List, error) {
	storedRelationship, err := resolveRelationship(input.Relationship, input.CustomRelationship)
	if err != nil {
		return nil, err
	}

	var updatedList *entity.List

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listRepo := repoFactory.ListRepo()
		userRepo := repoFactory.UserRepo()

		list, err := listRepo.FindByID(ctx, input.ListID)
		if err != nil {
			if errors.Is(err, repository.ErrListNotFound) {
				return errors.Wrap(domainerrors.ErrListNotFound, "share failed")
			}

			return errors.Wrap(err, "failed to find list for sharing")
		}

		if !list.IsOwnedBy(input.UserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner may share a list")
		}

		targetUser, err := userRepo.FindByUsername(ctx, input.TargetUsername)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "share target not found")
			}

			return errors.Wrap(err, "failed to find share target")
		}

		// The owner already has full access. A grant for them would only
		// clutter the sharing view.
		if targetUser.ID == list.CreatedBy || list.IsSharedWith(targetUser.ID) {
			return errors.Wrap(domainerrors.ErrAlreadyShared, "share failed")
		}

		newGrant := &entity.SharingGrant{
			UserID:       targetUser.ID,
			Relationship: storedRelationship,
		}
		if err := listRepo.AddGrant(ctx, list.ID, newGrant); err != nil {
			if errors.Is(err, repository.ErrDuplicateGrant) {
				return errors.Wrap(domainerrors.ErrAlreadyShared, "share failed")
			}

			return errors.Wrap(err, "failed to add sharing grant")
		}

		updatedList, err = listRepo.FindByID(ctx, list.ID)

		return errors.Wrap(err, "failed to reload list after sharing")
	})

	if err != nil {
		srv.log(ctx).Warn("Share list failed", slog.Any("listID", input.ListID), slog.String("target", input.TargetUsername), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ListsShared.Inc()
	srv.log(ctx).Debug("List shared", slog.Any("listID", input.ListID), slog.String("target", input.TargetUsername))

	return updatedList, nil
}

// ShareQR renders a share invite for a list the caller owns as a PNG QR code.
func (srv *listService) ShareQR(ctx context.Context, input *usecase.ShareQRInput) ([]byte, error) {
	list, err := srv.listRepo.FindByID(ctx, input.ListID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListNotFound, "share QR failed")
		}

		return nil, errors.Wrap(err, "failed to find list for share QR")
	}

	if !list.IsOwnedBy(input.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may create share invites")
	}

	png, err := srv.qrcodeService.GenerateShareQR(list.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR", slog.Any("listID", list.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

// loadAccessibleList loads a list and checks the caller may read or mutate it.
func (srv *listService) loadAccessibleList(ctx context.Context, listRepo repository.ListRepository, listID, userID uuid.UUID) (*entity.List, error) {
	list, err := listRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListNotFound, "list lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find list")
	}

	if !list.CanAccess(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "no access to this list")
	}

	return list, nil
}

// resolveRelationship validates the label and substitutes the custom label
// for "other".
func resolveRelationship(relationship, customRelationship string) (string, error) {
	rel := entity.Relationship(relationship)
	if !rel.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown relationship label")
	}

	if rel == entity.RelationshipOther {
		if customRelationship == "" {
			return "", domainerrors.ErrValidationFailed.WrapMessage("custom relationship required for 'other'")
		}

		return customRelationship, nil
	}

	return relationship, nil
}
