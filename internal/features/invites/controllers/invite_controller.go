package invites_controllers

import (
	"net/http"

	invites_dto "taskhive/internal/features/invites/dto"
	invites_services "taskhive/internal/features/invites/services"
	users_middleware "taskhive/internal/features/users/middleware"
	"taskhive/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteController struct {
	inviteService *invites_services.InviteService
}

func (c *InviteController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:id/invites", c.CreateInvite)
	router.GET("/projects/:id/invites", c.ListProjectInvites)

	router.GET("/invites", c.ListMyInvites)
	router.POST("/invites/:inviteId/respond", c.RespondToInvite)
	router.POST("/invites/:inviteId/revoke", c.RevokeInvite)
}

// CreateInvite
// @Summary Invite a user to a project
// @Description Create a pending invitation for an email address with a project role
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body invites_dto.CreateInviteRequestDTO true "Invite data"
// @Success 200 {object} invites_dto.InviteResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{id}/invites [post]
func (c *InviteController) CreateInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request invites_dto.CreateInviteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.inviteService.CreateInvite(projectID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListProjectInvites
// @Summary List pending invites for a project
// @Description Get pending invitations for the project (member managers only)
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} invites_dto.ListInvitesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/invites [get]
func (c *InviteController) ListProjectInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.inviteService.ListProjectPendingInvites(projectID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyInvites
// @Summary List my pending invites
// @Description Get open invitations addressed to the authenticated user's email
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} invites_dto.ListInvitesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invites [get]
func (c *InviteController) ListMyInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.inviteService.ListPendingInvitesForEmail(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RespondToInvite
// @Summary Accept or decline an invite
// @Description Accept an invite to join the project, or decline it
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inviteId path string true "Invite ID"
// @Param request body invites_dto.RespondInviteRequestDTO true "Response action"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /invites/{inviteId}/respond [post]
func (c *InviteController) RespondToInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID"})
		return
	}

	var request invites_dto.RespondInviteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.inviteService.RespondToInvite(inviteID, request.Action, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	message := "Invite declined successfully"
	if request.Action == invites_dto.RespondActionAccept {
		message = "Invite accepted successfully"
	}

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// RevokeInvite
// @Summary Revoke a pending invite
// @Description Withdraw a pending invitation (member managers only)
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param inviteId path string true "Invite ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invites/{inviteId}/revoke [post]
func (c *InviteController) RevokeInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID"})
		return
	}

	if err := c.inviteService.RevokeInvite(inviteID, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invite revoked successfully"})
}
