package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/validation"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
	"github.com/designerprogramming-cyber/Designs4U/internal/storage"
	"github.com/designerprogramming-cyber/Designs4U/pkg/view"
)

// AdminHandler covers the management panel: catalog CRUD, asset
// uploads and manual order rejection.
type AdminHandler struct {
	catalog *catalog.Service
	orders  *orders.Service
	flows   *flow.Store
	store   storage.Storage
}

func NewAdminHandler(cs *catalog.Service, os *orders.Service, flows *flow.Store, store storage.Storage) *AdminHandler {
	return &AdminHandler{catalog: cs, orders: os, flows: flows, store: store}
}

// Enter moves the session onto the admin panel screen. The role check
// lives in the transition as well as the route guard.
func (h *AdminHandler) Enter(c *gin.Context) {
	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if err := sess.GoToAdmin(); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

type addCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req addCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Category name is required.", validation.FromBindError(err, &req)))
		return
	}

	cat, err := h.catalog.AddCategory(c.Request.Context(), catalog.AddCategoryInput{Name: req.Name})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

// DeleteCategory removes the category and every product in it. The
// cascade is deliberate and not confirmed server-side.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type variantRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"price_cents"`
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
}

type productRequest struct {
	CategoryID  string           `json:"category_id" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Variants    []variantRequest `json:"variants" binding:"required,min=1,dive"`
}

func (r productRequest) toInput() catalog.ProductInput {
	in := catalog.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	for _, v := range r.Variants {
		in.Variants = append(in.Variants, catalog.VariantInput{
			Name:        v.Name,
			PriceCents:  v.PriceCents,
			DownloadURL: v.DownloadURL,
			FileName:    v.FileName,
		})
	}
	return in
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", validation.FromBindError(err, &req)))
		return
	}

	p, err := h.catalog.AddProduct(c.Request.Context(), req.toInput())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": view.ProductDetail(p)})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product data is invalid.", validation.FromBindError(err, &req)))
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": view.ProductDetail(p)})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Upload stores a product image or design file and returns its key
// and URL for use in product forms.
func (h *AdminHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please attach a file.", map[string]string{"file": "required"}))
		return
	}
	src, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer src.Close()

	put, err := h.store.Put(c.Request.Context(), src, storage.PutInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": put.Key, "url": put.URL})
}

// RejectOrder fails a wallet order waiting for approval.
func (h *AdminHandler) RejectOrder(c *gin.Context) {
	o, err := h.orders.FailOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": view.OrderView(o)})
}

// OrderProof serves the wallet payment screenshot for review.
func (h *AdminHandler) OrderProof(c *gin.Context) {
	obj, err := h.orders.Proof(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	ct := obj.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Data(http.StatusOK, ct, obj.Data)
}
