package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-scheduler/pkg/errors"
)

// processCreateReq binds the create task request body. Field validation is
// left to the use case so every surface reports the same errors.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processCreateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
