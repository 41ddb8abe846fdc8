package http

import (
	"github.com/gin-gonic/gin"

	"hiring-orchestrator/pkg/response"
)

// StartSession godoc
// @Summary     Start a session
// @Description Opens a new hiring conversation and returns its id.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} startSessionResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	response.OK(c, startSessionResp{SessionID: h.uc.StartSession()})
}

// SendMessage godoc
// @Summary     Send a message
// @Description Runs one user turn through intent analysis, planning and task dispatch.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "User message and optional context"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		if mapped := h.mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the latest messages of a session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       id    path  string true  "Session ID"
// @Param       limit query int    false "Number of messages (default: 20, max: 100)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{id}/messages [GET]
func (h *handler) History(c *gin.Context) {
	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	msgs := h.uc.History(req.SessionID, req.limit())
	response.OK(c, h.newHistoryResp(req.SessionID, msgs))
}

// Status godoc
// @Summary     Session status
// @Description Returns the session's context, recent actions and conversation length.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} orchestrator.SessionStatus
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{id}/status [GET]
func (h *handler) Status(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.uc.Status(id))
}

// Export godoc
// @Summary     Export a session
// @Description Returns the full conversation ledger of a session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} exportResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/export [GET]
func (h *handler) Export(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	export, ok := h.uc.Export(id)
	if !ok {
		response.NotFound(c, errSessionNotFound)
		return
	}

	response.OK(c, h.newExportResp(export))
}

// ClearSession godoc
// @Summary     Clear a session
// @Description Drops the session's conversation and short-term memory.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.ClearSession(id)
	response.OK(c, nil)
}
