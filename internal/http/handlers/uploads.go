package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
	"github.com/designerprogramming-cyber/Designs4U/internal/storage"
)

// UploadsHandler serves stored files back out. Keys are unguessable
// uuids, which is all the access control this demo carries.
type UploadsHandler struct {
	store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{store: store}
}

func (h *UploadsHandler) Serve(c *gin.Context) {
	obj, ok, err := h.store.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("File not found."))
		return
	}
	ct := obj.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Data(http.StatusOK, ct, obj.Data)
}
