package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkuroda/purposesurvey/internal/dto"
	"github.com/nkuroda/purposesurvey/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	purposeSvc   service.PurposeService
	responseSvc  service.ResponseService
	generatorSvc service.QuestionGeneratorService
	analysisSvc  service.AnalysisService
}

func NewController(
	purposeSvc service.PurposeService,
	responseSvc service.ResponseService,
	generatorSvc service.QuestionGeneratorService,
	analysisSvc service.AnalysisService,
) *Controller {
	return &Controller{
		purposeSvc:   purposeSvc,
		responseSvc:  responseSvc,
		generatorSvc: generatorSvc,
		analysisSvc:  analysisSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		purposes := apiV1.Group("/purposes")
		purposes.GET("", ctrl.GetPurposesHandler)
		purposes.POST("", ctrl.CreatePurposeHandler)
		purposes.POST("/generate", ctrl.GenerateQuestionsHandler)
		purposes.GET("/:id", ctrl.GetPurposeHandler)
		purposes.PUT("/:id", ctrl.UpdatePurposeHandler)
		purposes.DELETE("/:id", ctrl.DeletePurposeHandler)

		responses := apiV1.Group("/responses")
		responses.GET("", ctrl.GetResponseHandler)
		responses.POST("", ctrl.SubmitResponseHandler)

		apiV1.GET("/answered-surveys", ctrl.GetAnsweredSurveysHandler)
		apiV1.GET("/share/:token", ctrl.GetSharedPurposeHandler)
		apiV1.GET("/analysis/:id", ctrl.AnalyzePurposeHandler)
	}
}

// --- Purpose Handlers ---

// GetPurposesHandler godoc
// @Summary List purposes
// @Description Retrieve non-expired purposes with their response counts, newest first. Use 'createdBy' to filter by creator.
// @Tags purposes
// @Produce json
// @Param createdBy query string false "Filter by creator client id"
// @Success 200 {array} dto.PurposeSummary
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purposes [get]
func (ctrl *Controller) GetPurposesHandler(c *gin.Context) {
	createdBy := c.Query("createdBy")

	purposes, err := ctrl.purposeSvc.GetPurposes(createdBy)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch purposes")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch purposes"})
		return
	}
	c.JSON(http.StatusOK, purposes)
}

// CreatePurposeHandler godoc
// @Summary Create a purpose
// @Description Create a survey from a title, description, and question list
// @Tags purposes
// @Accept json
// @Produce json
// @Param purpose body dto.CreatePurposeRequest true "Purpose data"
// @Success 201 {object} dto.PurposeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purposes [post]
func (ctrl *Controller) CreatePurposeHandler(c *gin.Context) {
	var req dto.CreatePurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreatePurposeRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Title == "" || req.Description == "" || len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Title, description, and questions are required"})
		return
	}
	if req.CreatedBy == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "CreatedBy is required"})
		return
	}

	purpose, err := ctrl.purposeSvc.CreatePurpose(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create purpose")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create purpose"})
		return
	}
	c.JSON(http.StatusCreated, purpose)
}

// GetPurposeHandler godoc
// @Summary Get a purpose by ID
// @Description Retrieve a purpose including its responses
// @Tags purposes
// @Produce json
// @Param id path string true "Purpose ID"
// @Success 200 {object} dto.PurposeResponse
// @Failure 404 {object} dto.ErrorResponse "Purpose not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purposes/{id} [get]
func (ctrl *Controller) GetPurposeHandler(c *gin.Context) {
	id := c.Param("id")

	purpose, err := ctrl.purposeSvc.GetPurposeWithResponses(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purpose not found"})
			return
		}
		log.Error().Err(err).Str("purposeID", id).Msg("Failed to fetch purpose")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch purpose"})
		return
	}
	c.JSON(http.StatusOK, purpose)
}

// UpdatePurposeHandler godoc
// @Summary Update a purpose
// @Description Replace a purpose's title, description, questions, and deadline
// @Tags purposes
// @Accept json
// @Produce json
// @Param id path string true "Purpose ID"
// @Param purpose body dto.UpdatePurposeRequest true "Updated purpose data"
// @Success 200 {object} dto.PurposeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Purpose not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purposes/{id} [put]
func (ctrl *Controller) UpdatePurposeHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	purpose, err := ctrl.purposeSvc.UpdatePurpose(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purpose not found"})
			return
		}
		log.Error().Err(err).Str("purposeID", id).Msg("Failed to update purpose")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update purpose"})
		return
	}
	c.JSON(http.StatusOK, purpose)
}

// DeletePurposeHandler godoc
// @Summary Delete a purpose
// @Description Delete a purpose and all of its responses
// @Tags purposes
// @Produce json
// @Param id path string true "Purpose ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse "Purpose not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /purposes/{id} [delete]
func (ctrl *Controller) DeletePurposeHandler(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.purposeSvc.DeletePurpose(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purpose not found"})
			return
		}
		log.Error().Err(err).Str("purposeID", id).Msg("Failed to delete purpose")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete purpose"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

// GenerateQuestionsHandler godoc
// @Summary Generate survey questions with AI
// @Description Generate a question list from a goal's title and description
// @Tags purposes
// @Accept json
// @Produce json
// @Param input body dto.GenerateQuestionsRequest true "Goal title and description"
// @Success 200 {object} dto.GeneratedQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Generation failed"
// @Router /purposes/generate [post]
func (ctrl *Controller) GenerateQuestionsHandler(c *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuestionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Title and description are required"})
		return
	}

	questions, err := ctrl.generatorSvc.GenerateQuestions(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate questions"})
		return
	}
	c.JSON(http.StatusOK, dto.GeneratedQuestionsResponse{Questions: questions})
}

// --- Response Handlers ---

// GetResponseHandler godoc
// @Summary Get a client's response for a purpose
// @Description Retrieve the response identified by (purposeId, clientId)
// @Tags responses
// @Produce json
// @Param purposeId query string true "Purpose ID"
// @Param clientId query string true "Client ID"
// @Success 200 {object} dto.ResponseDetail
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /responses [get]
func (ctrl *Controller) GetResponseHandler(c *gin.Context) {
	purposeID := c.Query("purposeId")
	clientID := c.Query("clientId")

	if purposeID == "" || clientID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "PurposeId and clientId are required"})
		return
	}

	response, err := ctrl.responseSvc.GetResponse(purposeID, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Response not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch response")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch response"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// SubmitResponseHandler godoc
// @Summary Submit a response
// @Description Create a response, or overwrite the existing one when the same client submits again
// @Tags responses
// @Accept json
// @Produce json
// @Param response body dto.SubmitResponseRequest true "Response data"
// @Success 201 {object} dto.ResponseDetail
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /responses [post]
func (ctrl *Controller) SubmitResponseHandler(c *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitResponseRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.PurposeID == "" || len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "PurposeId and answers are required"})
		return
	}

	response, err := ctrl.responseSvc.SubmitResponse(req)
	if err != nil {
		log.Error().Err(err).Str("purposeID", req.PurposeID).Msg("Failed to submit response")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create response"})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// GetAnsweredSurveysHandler godoc
// @Summary List surveys a client has answered
// @Description Retrieve the deduplicated purposes this client has responded to, most recent first
// @Tags responses
// @Produce json
// @Param clientId query string true "Client ID"
// @Success 200 {array} dto.AnsweredSurvey
// @Failure 400 {object} dto.ErrorResponse "Missing clientId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answered-surveys [get]
func (ctrl *Controller) GetAnsweredSurveysHandler(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "clientId is required"})
		return
	}

	surveys, err := ctrl.responseSvc.GetAnsweredSurveys(clientID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch answered surveys")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch answered surveys"})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// --- Share & Analysis Handlers ---

// GetSharedPurposeHandler godoc
// @Summary Get a purpose by share token
// @Description Public projection of a purpose for respondents; no responses included
// @Tags share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} dto.SharedPurposeResponse
// @Failure 404 {object} dto.ErrorResponse "Purpose not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /share/{token} [get]
func (ctrl *Controller) GetSharedPurposeHandler(c *gin.Context) {
	token := c.Param("token")

	purpose, err := ctrl.purposeSvc.GetPurposeByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purpose not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch purpose by token")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch purpose"})
		return
	}
	c.JSON(http.StatusOK, purpose)
}

// AnalyzePurposeHandler godoc
// @Summary Analyze a purpose's responses
// @Description Per-question aggregation plus an AI summary; aiSummary is null when there are no responses or the summary call fails
// @Tags analysis
// @Produce json
// @Param id path string true "Purpose ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} dto.ErrorResponse "Purpose not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analysis/{id} [get]
func (ctrl *Controller) AnalyzePurposeHandler(c *gin.Context) {
	id := c.Param("id")

	analysis, err := ctrl.analysisSvc.AnalyzePurpose(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purpose not found"})
			return
		}
		log.Error().Err(err).Str("purposeID", id).Msg("Failed to analyze purpose")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to analyze purpose"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}
