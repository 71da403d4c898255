package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlabs/lumen/pkg/models"
)

// handleCreateThread answers POST /api/mail/thread: starts a thread with
// the user's first message and enqueues its reply order.
func (s *Server) handleCreateThread(c *gin.Context) {
	var req models.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	submission, err := s.mail.CreateThread(c.Request.Context(), req.Title, req.Content, req.Model)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// handleGetThread answers GET /api/mail/thread/:uid.
func (s *Server) handleGetThread(c *gin.Context) {
	view, err := s.mail.GetThread(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewThreadResponse(view))
}

// handleAppendReply answers POST /api/mail/thread/:uid/reply.
func (s *Server) handleAppendReply(c *gin.Context) {
	var req models.AppendReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	submission, err := s.mail.AppendUserReply(c.Request.Context(), c.Param("uid"), req.Content, req.Model)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}
