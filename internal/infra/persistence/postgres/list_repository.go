package postgres

import (
	"context"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listRepository implements the domain.ListRepository interface using GORM.
type listRepository struct {
	db *gorm.DB
}

// NewListRepository is the constructor for listRepository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{db: db}
}

// Create persists a new list. Items and grants are always added through
// their own operations, never through association writes.
func (repo *listRepository) Create(ctx context.Context, list *entity.List) error {
	listM := &model.ListModel{
		Name:      list.Name,
		CreatedBy: list.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create list")
	}

	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// FindByID retrieves a single list with its items and sharing grants.
// Items are ordered by creation time so clients see them in insertion order.
func (repo *listRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	var listM model.ListModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_items.created_at ASC")
		}).
		Preload("SharedWith").
		Where("id = ?", id).
		First(&listM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by id")
	}

	return toListDomain(&listM), nil
}

// FindByUser retrieves every list the user owns or holds a sharing grant on.
func (repo *listRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.List, error) {
	var listMs []*model.ListModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_items.created_at ASC")
		}).
		Preload("SharedWith").
		Where("created_by = ? OR id IN (?)",
			userID,
			repo.db.Model(&model.SharingGrantModel{}).Select("list_id").Where("user_id = ?", userID),
		).
		Order("lists.created_at ASC").
		Find(&listMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find lists by user")
	}

	lists := make([]*entity.List, 0, len(listMs))
	for _, listM := range listMs {
		lists = append(lists, toListDomain(listM))
	}

	return lists, nil
}

// AddItem appends an item to a list.
func (repo *listRepository) AddItem(ctx context.Context, listID uuid.UUID, item *entity.ListItem) error {
	itemM := &model.ListItemModel{
		ListID: listID,
		Text:   item.Text,
		Bought: item.Bought,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListNotFound
		}

		return errors.Wrap(err, "failed to add list item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// SetItemBought updates a single item's bought flag. The list ID is part of
// the predicate so an item can never be toggled through another list's URL.
func (repo *listRepository) SetItemBought(ctx context.Context, listID, itemID uuid.UUID, bought bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListItemModel{}).
		Where("id = ? AND list_id = ?", itemID, listID).
		Update("bought", bought)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update list item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// AddGrant appends a sharing grant to a list.
func (repo *listRepository) AddGrant(ctx context.Context, listID uuid.UUID, grant *entity.SharingGrant) error {
	grantM := &model.SharingGrantModel{
		ListID:       listID,
		UserID:       grant.UserID,
		Relationship: grant.Relationship,
	}

	if err := repo.db.WithContext(ctx).Create(grantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGrant
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListNotFound
		}

		return errors.Wrap(err, "failed to add sharing grant")
	}

	grant.ID = grantM.ID
	grant.CreatedAt = grantM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toListDomain converts a GORM ListModel to a domain List entity.
func toListDomain(data *model.ListModel) *entity.List {
	if data == nil {
		return nil
	}

	items := make([]entity.ListItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.ListItem{
			ID:        itemM.ID,
			Text:      itemM.Text,
			Bought:    itemM.Bought,
			CreatedAt: itemM.CreatedAt,
		})
	}

	grants := make([]entity.SharingGrant, 0, len(data.SharedWith))
	for _, grantM := range data.SharedWith {
		grants = append(grants, entity.SharingGrant{
			ID:           grantM.ID,
			UserID:       grantM.UserID,
			Relationship: grantM.Relationship,
			CreatedAt:    grantM.CreatedAt,
		})
	}

	return &entity.List{
		ID:         data.ID,
		Name:       data.Name,
		CreatedBy:  data.CreatedBy,
		SharedWith: grants,
		Items:      items,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
