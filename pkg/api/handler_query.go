package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// submitQueryRequest is the body of POST /api/query.
type submitQueryRequest struct {
	Query               string `json:"query" binding:"required"`
	Language            string `json:"language,omitempty"`
	SpellCorrectionMode string `json:"spellCorrectionMode,omitempty"`
}

// handleSubmitQuery runs spell correction and upserts the query row.
func (s *Server) handleSubmitQuery(c *gin.Context) {
	var req submitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := s.queries.SubmitQuery(c.Request.Context(), req.Query, req.Language, req.SpellCorrectionMode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
