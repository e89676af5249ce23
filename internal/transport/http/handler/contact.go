package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contactbook/internal/domain"
	"contactbook/internal/usecase"
	"github.com/gin-gonic/gin"
)

type contactUsecaser interface {
	CreateContact(ctx context.Context, in usecase.CreateContactInput) (*domain.Contact, error)
	ListContacts(ctx context.Context, userID string) ([]domain.Contact, error)
	DeleteContact(ctx context.Context, id, userID string) error
}

type ContactHandler struct {
	contactUsecase contactUsecaser
	logger         *slog.Logger
}

func NewContactHandler(contactUsecase contactUsecaser, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		logger:         logger.With("component", "contact_handler"),
	}
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type contactItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// listContactsResponse keeps the shape the frontend's dashboard expects:
// {success, count, data}.
type listContactsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []contactItem `json:"data"`
}

func toContactItem(c domain.Contact) contactItem {
	return contactItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

// POST /contacts
// Field presence is checked in the usecase, not via binding tags, so the
// error messages match what the form UI displays.
func (h *ContactHandler) Create(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.CreateContact(c.Request.Context(), usecase.CreateContactInput{
		UserID:  c.GetString("userID"),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidContact):
			msg := errContactRequired
			if req.Name != "" && req.Phone != "" {
				msg = errContactBadEmail
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		case errors.Is(err, domain.ErrDuplicateContact):
			c.JSON(http.StatusBadRequest, gin.H{"error": errContactDuplicate})
		default:
			h.logger.ErrorContext(c.Request.Context(), "create contact", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toContactItem(*contact)})
}

// GET /contacts
// Runs behind AuthOptional: anonymous visitors get an empty successful
// list, never a 401. Mutating routes reject instead.
func (h *ContactHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusOK, listContactsResponse{Success: true, Count: 0, Data: []contactItem{}})
		return
	}

	contacts, err := h.contactUsecase.ListContacts(c.Request.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]contactItem, len(contacts))
	for i, contact := range contacts {
		items[i] = toContactItem(contact)
	}
	c.JSON(http.StatusOK, listContactsResponse{Success: true, Count: len(items), Data: items})
}

// DELETE /contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	contactID := c.Param("id")

	err := h.contactUsecase.DeleteContact(c.Request.Context(), contactID, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errContactNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete contact", "contact_id", contactID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgContactDeleted})
}
