package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "family-task-parser/pkg/errors"
	"family-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse a task
// @Description Extracts timing, people, place, priority and recurrence from free text.
// @Description Speech transcripts are cleaned of known recognition mistakes first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// EditTag godoc
// @Summary     Edit one tag
// @Description Rewrites the words behind a tag so the text carries the new value, then
// @Description re-parses. The value shape depends on the tag type.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body editTagReq true "Text, tag id and new value"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Tag not found"
// @Failure     422  {object} response.Resp "Value does not fit the tag"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/edit-tag [POST]
func (h *handler) EditTag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditTagReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	value, err := h.decodeValue(c, req)
	if err != nil {
		var httpErr *pkgErrors.HTTPError
		if !errors.As(err, &httpErr) {
			err = h.mapError(err)
		}
		response.Error(c, err)
		return
	}

	output, err := h.uc.EditTag(ctx, req.toInput(value))
	if err != nil {
		h.l.Warnf(ctx, "uc.EditTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Enhance godoc
// @Summary     Parse with model assistance
// @Description Parses, then asks the language model for members, place and time the rules
// @Description missed. Falls back to the plain parse when the model is unavailable.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body enhanceReq true "Task text and context"
// @Success     200  {object} enhanceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/enhance [POST]
func (h *handler) Enhance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEnhanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Enhance(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Enhance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEnhanceResp(output))
}

// Roster godoc
// @Summary     Active roster
// @Description Returns the family members and places the parser recognises.
// @Tags        Roster
// @Produce     json
// @Success     200 {object} rosterResp
// @Router      /api/v1/roster [GET]
func (h *handler) Roster(c *gin.Context) {
	response.OK(c, h.newRosterResp(h.uc.Roster(c.Request.Context())))
}
