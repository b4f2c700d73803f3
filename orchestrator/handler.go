package orchestrator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srujandivakar/DCode/lib/connector"
	"github.com/srujandivakar/DCode/lib/logger"
)

type executeBody struct {
	SourceCode     string   `json:"source_code" binding:"required"`
	Language       string   `json:"language" binding:"required"`
	Stdin          []string `json:"stdin"`
	IdempotencyKey string   `json:"idempotency_key"`
}

// @Summary Execute
// @Description Run or submit code for a problem
// @Accept json
// @Produce json
// @Param pid path uint true "Problem ID"
// @Param type path string true "run or submit"
// @Router /execute/{pid}/{type} [post]
func (o *Orchestrator) handleExecute(c *gin.Context) {
	userID, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 0)
	if err != nil {
		connector.RespErr(c, http.StatusBadRequest, "X-User-ID is not uint")
		return
	}

	problemID, err := strconv.ParseUint(c.Param("pid"), 10, 0)
	if err != nil {
		connector.RespErr(c, http.StatusBadRequest, "problem id is not uint")
		return
	}

	var body executeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		connector.RespErr(c, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	result, err := o.Execute(c.Request.Context(), Request{
		UserID:         uint(userID),
		ProblemID:      uint(problemID),
		Mode:           Mode(c.Param("type")),
		SourceCode:     body.SourceCode,
		Language:       body.Language,
		Stdin:          body.Stdin,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		o.respondError(c, err)
		return
	}

	if result.Submission != nil {
		connector.RespOK(c, result.Submission)
		return
	}
	connector.RespOK(c, result.Aggregate)
}

func (o *Orchestrator) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		connector.RespErr(c, http.StatusBadRequest, "%v", err)
	case errors.Is(err, ErrNotVerified):
		connector.RespErr(c, http.StatusForbidden, "please verify your email before executing code")
	case errors.Is(err, ErrProblemNotFound):
		connector.RespErr(c, http.StatusNotFound, "problem not found")
	case errors.Is(err, ErrJudgeUnavailable):
		logger.Error("judge unavailable: %v", err)
		connector.RespErr(c, http.StatusBadGateway, "judge unavailable")
	default:
		logger.Error("execution failed: %v", err)
		connector.RespErr(c, http.StatusInternalServerError, "internal error")
	}
}
