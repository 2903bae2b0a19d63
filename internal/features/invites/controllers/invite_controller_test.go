package invites_controllers

import (
	"net/http"
	"testing"
	"time"

	invites_dto "taskhive/internal/features/invites/dto"
	invites_models "taskhive/internal/features/invites/models"
	invites_repositories "taskhive/internal/features/invites/repositories"
	invites_services "taskhive/internal/features/invites/services"
	projects_controllers "taskhive/internal/features/projects/controllers"
	projects_testing "taskhive/internal/features/projects/testing"
	users_enums "taskhive/internal/features/users/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateInvite_WhenUserIsAdmin_InviteCreated(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Test", admin, router)

	response := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleEditor, admin.Token)

	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, project.ID, response.ProjectID)
	assert.Equal(t, invitee.Email, response.Email)
	assert.Equal(t, users_enums.ProjectRoleEditor, response.Role)
	assert.Equal(t, invites_models.InviteStatusPending, response.Status)
	assert.WithinDuration(
		t,
		time.Now().UTC().Add(invites_models.InviteExpiration),
		response.ExpiresAt,
		time.Minute,
	)
}

func Test_CreateInvite_WithMixedCaseEmail_StoresLowercase(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Email Case Test", admin, router)

	unique := uuid.New().String()[:8]
	request := invites_dto.CreateInviteRequestDTO{
		Email: "MiXeD" + unique + "@Example.COM",
		Role:  users_enums.ProjectRoleViewer,
	}

	var response invites_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "mixed"+unique+"@example.com", response.Email)
}

func Test_CreateInvite_ForUnregisteredEmail_InviteCreated(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Unregistered Invite Test", admin, router)

	email := "not-signed-up-" + uuid.New().String()[:8] + "@example.com"
	response := createInvite(t, router, project.ID, email, users_enums.ProjectRoleViewer, admin.Token)

	assert.Equal(t, email, response.Email)
	assert.Equal(t, invites_models.InviteStatusPending, response.Status)
}

func Test_CreateInvite_WhenUserIsEditor_ReturnsForbidden(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	editor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Permission Test", admin, router)
	projects_testing.AddMemberDirectly(project.ID, editor.UserID, users_enums.ProjectRoleEditor)

	request := invites_dto.CreateInviteRequestDTO{
		Email: "someone@example.com",
		Role:  users_enums.ProjectRoleViewer,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+editor.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to invite members")
}

func Test_CreateInvite_WhenUserIsNotMember_ReturnsNotFound(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Outsider Test", admin, router)

	request := invites_dto.CreateInviteRequestDTO{
		Email: "someone@example.com",
		Role:  users_enums.ProjectRoleViewer,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+outsider.Token,
		request,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "project not found")
}

func Test_CreateInvite_WithInvalidRole_ReturnsBadRequest(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invalid Role Invite Test", admin, router)

	request := invites_dto.CreateInviteRequestDTO{
		Email: "someone@example.com",
		Role:  users_enums.ProjectRole("superuser"),
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "invalid project role")
}

func Test_CreateInvite_ForExistingMember_ReturnsConflict(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Member Conflict Test", admin, router)
	projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	request := invites_dto.CreateInviteRequestDTO{
		Email: member.Email,
		Role:  users_enums.ProjectRoleViewer,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		request,
		http.StatusConflict,
	)
	assert.Contains(t, string(resp.Body), "user is already a member of this project")
}

func Test_CreateInvite_WhenPendingInviteExists_ReturnsConflict(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Duplicate Invite Test", admin, router)

	email := "pending-" + uuid.New().String()[:8] + "@example.com"
	createInvite(t, router, project.ID, email, users_enums.ProjectRoleViewer, admin.Token)

	request := invites_dto.CreateInviteRequestDTO{
		Email: email,
		Role:  users_enums.ProjectRoleEditor,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		request,
		http.StatusConflict,
	)
	assert.Contains(t, string(resp.Body), "an invitation for this email is already pending")
}

func Test_CreateInvite_SameEmailOnDifferentProjects_BothCreated(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project1 := projects_testing.CreateTestProjectViaAPI("Multi Project A", admin, router)
	project2 := projects_testing.CreateTestProjectViaAPI("Multi Project B", admin, router)

	email := "multi-" + uuid.New().String()[:8] + "@example.com"
	createInvite(t, router, project1.ID, email, users_enums.ProjectRoleViewer, admin.Token)
	createInvite(t, router, project2.ID, email, users_enums.ProjectRoleViewer, admin.Token)
}

func Test_ListProjectInvites_WhenUserIsAdmin_ReturnsPendingInvites(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("List Invites Test", admin, router)

	email := "listed-" + uuid.New().String()[:8] + "@example.com"
	created := createInvite(t, router, project.ID, email, users_enums.ProjectRoleEditor, admin.Token)

	var response invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, 1, len(response.Invites))
	invite := response.Invites[0]
	assert.Equal(t, created.ID, invite.ID)
	assert.Equal(t, email, invite.Email)
	assert.Equal(t, "List Invites Test", invite.ProjectTitle)
	assert.Equal(t, admin.Email, invite.InviterEmail)
}

func Test_ListProjectInvites_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("List Permission Test", admin, router)
	projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+viewer.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to view project invites")
}

func Test_ListMyInvites_ReturnsInvitesAddressedToUserEmail(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("My Invites Test", admin, router)
	created := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	var response invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, 1, len(response.Invites))
	assert.Equal(t, created.ID, response.Invites[0].ID)
	assert.Equal(t, project.ID, response.Invites[0].ProjectID)
}

func Test_ListMyInvites_DoesNotIncludeOtherUsersInvites(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	bystander := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Privacy Test", admin, router)
	createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	var response invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites",
		"Bearer "+bystander.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Invites)
}

func Test_AcceptInvite_CreatesMembershipWithInvitedRole(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Accept Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleEditor, admin.Token)

	resp := respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, invitee.Token, http.StatusOK)
	assert.Contains(t, string(resp.Body), "Invite accepted successfully")

	membership := projects_testing.GetMembership(project.ID, invitee.UserID)
	require.NotNil(t, membership)
	assert.Equal(t, users_enums.ProjectRoleEditor, membership.Role)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+invitee.Token,
		http.StatusOK,
	)
}

func Test_AcceptInvite_Twice_ReturnsConflict(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Double Accept Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, invitee.Token, http.StatusOK)

	resp := respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, invitee.Token, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "invite has already been processed")
}

func Test_AcceptInvite_RemovesInviteFromPendingLists(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Pending Removal Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, invitee.Token, http.StatusOK)

	var myInvites invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&myInvites,
	)
	assert.Empty(t, myInvites.Invites)

	var projectInvites invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invites",
		"Bearer "+admin.Token,
		http.StatusOK,
		&projectInvites,
	)
	assert.Empty(t, projectInvites.Invites)
}

func Test_DeclineInvite_DoesNotCreateMembership(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Decline Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	resp := respondToInvite(t, router, invite.ID, invites_dto.RespondActionDecline, invitee.Token, http.StatusOK)
	assert.Contains(t, string(resp.Body), "Invite declined successfully")

	assert.Nil(t, projects_testing.GetMembership(project.ID, invitee.UserID))

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+invitee.Token,
		http.StatusNotFound,
	)
}

func Test_DeclineInvite_ThenAccept_ReturnsConflict(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Decline Then Accept Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	respondToInvite(t, router, invite.ID, invites_dto.RespondActionDecline, invitee.Token, http.StatusOK)

	resp := respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, invitee.Token, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "invite has already been processed")
}

func Test_RespondToInvite_ByUserWithDifferentEmail_ReturnsForbidden(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	impostor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Wrong Email Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	resp := respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, impostor.Token, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "this invite was sent to a different email address")

	assert.Nil(t, projects_testing.GetMembership(project.ID, impostor.UserID))
}

func Test_RespondToInvite_WithUnknownInviteID_ReturnsNotFound(t *testing.T) {
	router := createInviteTestRouter()
	user := users_testing.CreateTestUser()

	resp := respondToInvite(t, router, uuid.New(), invites_dto.RespondActionAccept, user.Token, http.StatusNotFound)
	assert.Contains(t, string(resp.Body), "invite not found")
}

func Test_RespondToInvite_WithInvalidAction_ReturnsBadRequest(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invalid Action Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	request := invites_dto.RespondInviteRequestDTO{Action: "maybe"}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/respond",
		"Bearer "+invitee.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_RespondToInvite_WithInvalidInviteID_ReturnsBadRequest(t *testing.T) {
	router := createInviteTestRouter()
	user := users_testing.CreateTestUser()

	request := invites_dto.RespondInviteRequestDTO{Action: invites_dto.RespondActionAccept}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/not-a-uuid/respond",
		"Bearer "+user.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Invalid invite ID")
}

func Test_RevokeInvite_WhenUserIsAdmin_InviteRevoked(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Revoke Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/revoke",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)
	assert.Contains(t, string(resp.Body), "Invite revoked successfully")

	acceptResp := respondToInvite(
		t,
		router,
		invite.ID,
		invites_dto.RespondActionAccept,
		invitee.Token,
		http.StatusConflict,
	)
	assert.Contains(t, string(acceptResp.Body), "invite has already been processed")
}

func Test_RevokeInvite_Twice_ReturnsConflict(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Double Revoke Test", admin, router)
	email := "revoked-" + uuid.New().String()[:8] + "@example.com"
	invite := createInvite(t, router, project.ID, email, users_enums.ProjectRoleViewer, admin.Token)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/revoke",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/revoke",
		"Bearer "+admin.Token,
		nil,
		http.StatusConflict,
	)
	assert.Contains(t, string(resp.Body), "invite has already been processed")
}

func Test_RevokeInvite_AllowsNewInviteForSamePair(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Reinvite Test", admin, router)
	email := "reinvite-" + uuid.New().String()[:8] + "@example.com"
	invite := createInvite(t, router, project.ID, email, users_enums.ProjectRoleViewer, admin.Token)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/revoke",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)

	createInvite(t, router, project.ID, email, users_enums.ProjectRoleEditor, admin.Token)
}

func Test_RevokeInvite_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Revoke Permission Test", admin, router)
	projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)

	email := "target-" + uuid.New().String()[:8] + "@example.com"
	invite := createInvite(t, router, project.ID, email, users_enums.ProjectRoleViewer, admin.Token)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.ID.String()+"/revoke",
		"Bearer "+viewer.Token,
		nil,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to revoke invites")
}

func Test_InviteFlow_UserRegisteredAfterInvite_CanAccept(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Late Signup Test", admin, router)

	email := "late-signup-" + uuid.New().String()[:8] + "@example.com"
	invite := createInvite(t, router, project.ID, email, users_enums.ProjectRoleEditor, admin.Token)

	lateUser := users_testing.CreateTestUserWithEmail(email)

	respondToInvite(t, router, invite.ID, invites_dto.RespondActionAccept, lateUser.Token, http.StatusOK)

	membership := projects_testing.GetMembership(project.ID, lateUser.UserID)
	require.NotNil(t, membership)
	assert.Equal(t, users_enums.ProjectRoleEditor, membership.Role)
}

func Test_DeleteProject_RemovesItsPendingInvites(t *testing.T) {
	router := createInviteTestRouter()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Cascade Test", admin, router)
	invite := createInvite(t, router, project.ID, invitee.Email, users_enums.ProjectRoleViewer, admin.Token)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/projects/" + project.ID.String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusOK,
	})

	inviteRepository := &invites_repositories.InviteRepository{}
	deleted, err := inviteRepository.GetInviteByID(invite.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	var myInvites invites_dto.ListInvitesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&myInvites,
	)
	assert.Empty(t, myInvites.Invites)
}

func createInviteTestRouter() *gin.Engine {
	router := projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		GetInviteController(),
	)

	invites_services.SetupDependencies()

	return router
}

func createInvite(
	t *testing.T,
	router *gin.Engine,
	projectID uuid.UUID,
	email string,
	role users_enums.ProjectRole,
	token string,
) *invites_dto.InviteResponseDTO {
	t.Helper()

	request := invites_dto.CreateInviteRequestDTO{
		Email: email,
		Role:  role,
	}

	var response invites_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+projectID.String()+"/invites",
		"Bearer "+token,
		request,
		http.StatusOK,
		&response,
	)

	return &response
}

func respondToInvite(
	t *testing.T,
	router *gin.Engine,
	inviteID uuid.UUID,
	action string,
	token string,
	expectedStatus int,
) test_utils.Response {
	t.Helper()

	request := invites_dto.RespondInviteRequestDTO{Action: action}

	return test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+inviteID.String()+"/respond",
		"Bearer "+token,
		request,
		expectedStatus,
	)
}
