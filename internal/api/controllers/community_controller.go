package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/internal/models/request_models"
	"solotrip/internal/services"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type CommunityController struct {
	experienceService services.ExperienceServiceInterface
	commentService    services.CommentServiceInterface
	log               *logger.Logger
}

func NewCommunityController(experienceService services.ExperienceServiceInterface, commentService services.CommentServiceInterface, log *logger.Logger) *CommunityController {
	return &CommunityController{
		experienceService: experienceService,
		commentService:    commentService,
		log:               log,
	}
}

func (cc *CommunityController) ListExperiences(c *gin.Context) {
	items, err := cc.experienceService.List(c.Request.Context(), c.Query("location"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, items, "Experiences fetched successfully")
}

func (cc *CommunityController) AddExperience(c *gin.Context) {
	var req request_models.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location and experience required")
		return
	}

	userID, userName := currentUser(c)
	exp, err := cc.experienceService.Add(c.Request.Context(), userID, userName, req)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, exp, "Experience shared")
}

func (cc *CommunityController) ListComments(c *gin.Context) {
	comments, err := cc.commentService.List(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

func (cc *CommunityController) CreateComment(c *gin.Context) {
	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	userID, userName := currentUser(c)
	comment, err := cc.commentService.Create(c.Request.Context(), c.Param("tripId"), userID, userName, req.Text)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, comment, "Comment posted")
}
