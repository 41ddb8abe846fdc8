package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidLimit
	}
	if req.Limit != nil && *req.Limit < 0 {
		return req, errInvalidLimit
	}
	return req, nil
}

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingSessionID
	}
	return id, nil
}
