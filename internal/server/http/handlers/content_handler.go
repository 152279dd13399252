package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/pkg/usagekey"
)

// ContentHandler serves access-gated journal page content.
type ContentHandler struct {
	facade ContentFacade
}

// NewContentHandler creates ContentHandler instance.
func NewContentHandler(facade ContentFacade) *ContentHandler {
	return &ContentHandler{facade: facade}
}

// Render handles GET /journals/render/:usage_key.
func (h *ContentHandler) Render(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	// A journal UUID that does not parse can never match an access record.
	journalUUID, err := uuid.Parse(c.Query("journal_uuid"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	rawUsageKey := c.Param("usage_key")
	err = h.facade.CheckJournalAccess(c.Request.Context(), Site(c), user, journalUUID, rawUsageKey)
	if err != nil {
		switch {
		case errors.Is(err, usagekey.ErrInvalidUsageKey),
			errors.Is(err, domainErrors.ErrNoJournalAccess):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	body, err := h.facade.RenderBlock(c.Request.Context(), user.Username, rawUsageKey, false)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
