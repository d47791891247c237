package handler

import (
	"net/http"
	"time"

	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListHandler holds dependencies for shopping list handlers.
type ListHandler struct {
	uc usecase.ListUsecase
}

// NewListHandler is the constructor for ListHandler.
func NewListHandler(uc usecase.ListUsecase) *ListHandler {
	return &ListHandler{uc: uc}
}

type createListRequest struct {
	Name string `json:"name" validate:"required"`
}

type addItemRequest struct {
	Text string `json:"text" validate:"required"`
}

type shareListRequest struct {
	Username           string `json:"username" validate:"required"`
	Relationship       string `json:"relationship" validate:"required"`
	CustomRelationship string `json:"customRelationship"`
}

type listResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	CreatedBy  uuid.UUID       `json:"createdBy"`
	SharedWith []grantResponse `json:"sharedWith"`
	Items      []itemResponse  `json:"items"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type grantResponse struct {
	ID           uuid.UUID `json:"id"`
	User         uuid.UUID `json:"user"`
	Relationship string    `json:"relationship"`
}

type itemResponse struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	Bought bool      `json:"bought"`
}

// Create handles the creation of a new shopping list.
func (h *ListHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createListRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	list, err := h.uc.CreateList(c.Request().Context(), &usecase.CreateListInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toListResponse(list))
}

// GetAll returns every list the user owns or has been granted access to.
func (h *ListHandler) GetAll(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	lists, err := h.uc.GetLists(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]listResponse, 0, len(lists))
	for _, list := range lists {
		out = append(out, toListResponse(list))
	}

	return c.JSON(http.StatusOK, out)
}

// AddItem appends an item to a list and returns the updated list.
func (h *ListHandler) AddItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	listID, err := parseListID(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	list, err := h.uc.AddItem(c.Request().Context(), &usecase.AddItemInput{
		UserID: userID,
		ListID: listID,
		Text:   req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// ToggleItem flips the bought state of an item and returns the updated list.
func (h *ListHandler) ToggleItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	listID, err := parseListID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return domainerrors.ErrItemNotFound
	}

	list, err := h.uc.ToggleItem(c.Request().Context(), &usecase.ToggleItemInput{
		UserID: userID,
		ListID: listID,
		ItemID: itemID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// Share grants another user access to a list and returns the updated list.
func (h *ListHandler) Share(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	listID, err := parseListID(c)
	if err != nil {
		return err
	}

	var req shareListRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	list, err := h.uc.ShareList(c.Request().Context(), &usecase.ShareListInput{
		UserID:             userID,
		ListID:             listID,
		TargetUsername:     req.Username,
		Relationship:       req.Relationship,
		CustomRelationship: req.CustomRelationship,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

// ShareQR returns a PNG QR code encoding a share invite for the list.
func (h *ListHandler) ShareQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	listID, err := parseListID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), &usecase.ShareQRInput{
		UserID: userID,
		ListID: listID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseListID reads the :id path parameter. A value that is not a UUID can
// never match a stored list, so it reports not-found rather than bad-request.
func parseListID(c echo.Context) (uuid.UUID, error) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrListNotFound
	}

	return listID, nil
}

func toListResponse(list *entity.List) listResponse {
	grants := make([]grantResponse, 0, len(list.SharedWith))
	for _, grant := range list.SharedWith {
		grants = append(grants, grantResponse{
			ID:           grant.ID,
			User:         grant.UserID,
			Relationship: grant.Relationship,
		})
	}

	items := make([]itemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, itemResponse{
			ID:     item.ID,
			Text:   item.Text,
			Bought: item.Bought,
		})
	}

	return listResponse{
		ID:         list.ID,
		Name:       list.Name,
		CreatedBy:  list.CreatedBy,
		SharedWith: grants,
		Items:      items,
		CreatedAt:  list.CreatedAt,
		UpdatedAt:  list.UpdatedAt,
	}
}
