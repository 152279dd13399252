package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
)

// BundleHandler serves journal bundle marketing pages.
type BundleHandler struct {
	facade BundleFacade
}

// NewBundleHandler creates BundleHandler instance.
func NewBundleHandler(facade BundleFacade) *BundleHandler {
	return &BundleHandler{facade: facade}
}

// About handles GET /journals/bundles/:bundle_uuid/about.
func (h *BundleHandler) About(c *gin.Context) {
	bundleUUID, err := uuid.Parse(c.Param("bundle_uuid"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	page, err := h.facade.BundleAboutPage(c.Request.Context(), Site(c), bundleUUID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "bundle_about.html", gin.H{
		"journals_root_url":  page.JournalsRootURL,
		"discovery_root_url": page.DiscoveryRootURL,
		"bundle":             page.Bundle,
		"uses_bootstrap":     page.UsesBootstrap,
	})
}
