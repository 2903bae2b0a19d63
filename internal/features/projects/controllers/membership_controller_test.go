package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_dto "taskhive/internal/features/projects/dto"
	projects_testing "taskhive/internal/features/projects/testing"
	users_enums "taskhive/internal/features/users/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ListMembers_WhenUserIsMember_ReturnsAllMembers(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Members Test", owner, router)
	projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)

	var response projects_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+viewer.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, 2, len(response.Members))

	memberEmails := make([]string, len(response.Members))
	for i, m := range response.Members {
		memberEmails[i] = m.Email
	}
	assert.Contains(t, memberEmails, owner.Email)
	assert.Contains(t, memberEmails, viewer.Email)
}

func Test_ListMembers_WhenUserIsNotMember_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	nonMember := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Members Access Test", owner, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+nonMember.Token,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "project not found")
}

func Test_ChangeMemberRole_WhenUserIsAdmin_RoleChanged(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Role Change Test", owner, router)
	membership := projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	request := projects_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ProjectRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s/role", project.ID, membership.ID),
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
	)
	assert.Contains(t, string(resp.Body), "Member role changed successfully")

	updated := projects_testing.GetMembership(project.ID, member.UserID)
	require.NotNil(t, updated)
	assert.Equal(t, users_enums.ProjectRoleEditor, updated.Role)
}

func Test_ChangeMemberRole_WhenUserIsEditor_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	editor := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Role Permission Test", owner, router)
	projects_testing.AddMemberDirectly(project.ID, editor.UserID, users_enums.ProjectRoleEditor)
	viewerMembership := projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)

	request := projects_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ProjectRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s/role", project.ID, viewerMembership.ID),
		"Bearer "+editor.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to manage members")
}

func Test_ChangeMemberRole_ToOwnMembership_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Self Role Test", owner, router)
	ownMembership := projects_testing.GetMembership(project.ID, owner.UserID)
	require.NotNil(t, ownMembership)

	request := projects_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ProjectRoleViewer,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s/role", project.ID, ownMembership.ID),
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "cannot change your own role")
}

func Test_ChangeMemberRole_WithInvalidRole_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invalid Role Test", owner, router)
	membership := projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	request := projects_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ProjectRole("superuser"),
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s/role", project.ID, membership.ID),
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "invalid project role")
}

func Test_ChangeMemberRole_WithMembershipFromAnotherProject_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project1 := projects_testing.CreateTestProjectViaAPI("Project One", owner, router)
	project2 := projects_testing.CreateTestProjectViaAPI("Project Two", owner, router)
	otherMembership := projects_testing.AddMemberDirectly(project2.ID, member.UserID, users_enums.ProjectRoleViewer)

	request := projects_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ProjectRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s/role", project1.ID, otherMembership.ID),
		"Bearer "+owner.Token,
		request,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "member not found")
}

func Test_RemoveMember_WhenUserIsAdmin_MemberRemoved(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Remove Member Test", owner, router)
	membership := projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, membership.ID),
		AuthToken:      "Bearer " + owner.Token,
		ExpectedStatus: http.StatusOK,
	})
	assert.Contains(t, string(resp.Body), "Member removed successfully")

	assert.Nil(t, projects_testing.GetMembership(project.ID, member.UserID))
}

func Test_RemoveMember_RemovedUserLosesAccess(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Access Revocation Test", owner, router)
	membership := projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
	)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, membership.ID),
		AuthToken:      "Bearer " + owner.Token,
		ExpectedStatus: http.StatusOK,
	})

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+member.Token,
		http.StatusNotFound,
	)
}

func Test_RemoveMember_OwnMembership_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Self Removal Test", owner, router)
	ownMembership := projects_testing.GetMembership(project.ID, owner.UserID)
	require.NotNil(t, ownMembership)

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, ownMembership.ID),
		AuthToken:      "Bearer " + owner.Token,
		ExpectedStatus: http.StatusBadRequest,
	})
	assert.Contains(t, string(resp.Body), "cannot remove yourself from the project")
}

func Test_RemoveMember_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()
	otherMember := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Viewer Remove Test", owner, router)
	projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)
	otherMembership := projects_testing.AddMemberDirectly(project.ID, otherMember.UserID, users_enums.ProjectRoleViewer)

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, otherMembership.ID),
		AuthToken:      "Bearer " + viewer.Token,
		ExpectedStatus: http.StatusForbidden,
	})
	assert.Contains(t, string(resp.Body), "insufficient permissions to manage members")
}

func Test_RemoveMember_WithUnknownMembershipID_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Unknown Member Test", owner, router)

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, uuid.New()),
		AuthToken:      "Bearer " + owner.Token,
		ExpectedStatus: http.StatusNotFound,
	})
	assert.Contains(t, string(resp.Body), "member not found")
}

func Test_SearchInviteCandidates_WithMatchingEmail_ReturnsCandidates(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	unique := uuid.New().String()[:8]
	candidate := users_testing.CreateTestUserWithEmail("candidate-" + unique + "@example.com")

	project := projects_testing.CreateTestProjectViaAPI("Candidate Search Test", owner, router)

	var response projects_dto.GetInviteCandidatesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite-candidates?query=candidate-"+unique,
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, 1, len(response.Candidates))
	assert.Equal(t, candidate.UserID, response.Candidates[0].ID)
	assert.Equal(t, candidate.Email, response.Candidates[0].Email)
}

func Test_SearchInviteCandidates_ExcludesExistingMembers(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	unique := uuid.New().String()[:8]
	outsider := users_testing.CreateTestUserWithEmail("exclude-" + unique + "-outsider@example.com")
	member := users_testing.CreateTestUserWithEmail("exclude-" + unique + "-member@example.com")

	project := projects_testing.CreateTestProjectViaAPI("Exclusion Test", owner, router)
	projects_testing.AddMemberDirectly(project.ID, member.UserID, users_enums.ProjectRoleViewer)

	var response projects_dto.GetInviteCandidatesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite-candidates?query=exclude-"+unique,
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, 1, len(response.Candidates))
	assert.Equal(t, outsider.UserID, response.Candidates[0].ID)
}

func Test_SearchInviteCandidates_WithShortQuery_ReturnsEmptyList(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Short Query Test", owner, router)

	var response projects_dto.GetInviteCandidatesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite-candidates?query=ab",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Candidates)
}

func Test_SearchInviteCandidates_CapsResultsAtFive(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	unique := uuid.New().String()[:8]
	for i := 0; i < 7; i++ {
		users_testing.CreateTestUserWithEmail(fmt.Sprintf("capped-%s-%d@example.com", unique, i))
	}

	project := projects_testing.CreateTestProjectViaAPI("Capped Search Test", owner, router)

	var response projects_dto.GetInviteCandidatesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite-candidates?query=capped-"+unique,
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, 5, len(response.Candidates))
}

func Test_SearchInviteCandidates_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Candidate Permission Test", owner, router)
	projects_testing.AddMemberDirectly(project.ID, viewer.UserID, users_enums.ProjectRoleViewer)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite-candidates?query=someone",
		"Bearer "+viewer.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions to manage members")
}
