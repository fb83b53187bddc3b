package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"family-task-parser/internal/model"
	pkgErrors "family-task-parser/pkg/errors"
)

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

func (h *handler) processEditTagReq(c *gin.Context) (editTagReq, error) {
	var req editTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

// decodeValue reads the new value using the type of the tag it targets. A missing
// tag yields a nil value and is reported by the use case.
func (h *handler) decodeValue(c *gin.Context, req editTagReq) (model.Value, error) {
	out, err := h.uc.Parse(c.Request.Context(), parseReq{Text: req.Text}.toInput())
	if err != nil {
		return nil, err
	}
	tag, ok := out.Task.Tag(req.TagID)
	if !ok {
		return nil, nil
	}
	v, err := model.DecodeTagValue(tag.Type, req.Value)
	if err != nil {
		return nil, pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return v, nil
}

func (h *handler) processEnhanceReq(c *gin.Context) (enhanceReq, error) {
	var req enhanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}
