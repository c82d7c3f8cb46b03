package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/pkg/view"
)

// ProductHandler serves the storefront listing and detail screens.
type ProductHandler struct {
	catalog *catalog.Service
	flows   *flow.Store
}

func NewProductHandler(cs *catalog.Service, flows *flow.Store) *ProductHandler {
	return &ProductHandler{catalog: cs, flows: flows}
}

// List returns product cards, optionally filtered by ?category=.
func (h *ProductHandler) List(c *gin.Context) {
	prods, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": cats,
		"products":   view.ProductCards(prods),
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductDetail(p))
}

// Select puts the product into the session and moves to the details
// screen. The session snapshots the product, so later catalog edits
// do not reach an open details view.
func (h *ProductHandler) Select(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if err := sess.SelectProduct(p); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen":  sess.Screen(),
		"product": view.ProductDetail(p),
	})
}

// Back returns from details (or admin) to the listing.
func (h *ProductHandler) Back(c *gin.Context) {
	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.BackToProducts()
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}
