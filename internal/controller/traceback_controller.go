package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"traceback-explainer/internal/dto"
	"traceback-explainer/internal/model"
	"traceback-explainer/internal/service"
)

type TracebackController struct {
	tracebackService service.TracebackService
}

func NewTracebackController(tracebackService service.TracebackService) *TracebackController {
	return &TracebackController{
		tracebackService: tracebackService,
	}
}

func RegisterTracebackRoutes(router *gin.Engine, controller *TracebackController) {
	router.POST("/parse_errors", controller.ParseErrors)
}

// ParseErrors godoc
// @Summary      Extract and explain errors from a traceback
// @Description  Splits the log on nested-exception markers, extracts the first frame and error line of each section and attaches a plain-language explanation.
// @Tags         errors
// @Accept       json
// @Produce      json
// @Param        request body dto.ParseErrorsRequest true "Traceback text"
// @Success      200 {object} dto.ParseErrorsResponse "Extracted errors, or a message when none were found"
// @Failure      400 {object} model.Response "Invalid request body"
// @Router       /parse_errors [post]
func (c *TracebackController) ParseErrors(ctx *gin.Context) {
	var req dto.ParseErrorsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid parse_errors request body")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	resp := c.tracebackService.ParseErrors(ctx.Request.Context(), *req.LogText)
	ctx.JSON(http.StatusOK, resp)
}
