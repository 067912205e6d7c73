package team_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/http/handlers/handlerstest"
	"team-backoffice/internal/http/handlers/mocks"
	"team-backoffice/internal/http/handlers/team"
	repo "team-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func company() api.CompanySchema {
	return api.CompanySchema{
		CompanyName:    "Bygg AS",
		CompanyAddress: "Industriveien 4",
		CompanyPhone:   "55123456",
		CompanyEmail:   "post@bygg.no",
		Theme:          "light",
		Timezone:       "UTC",
		Language:       "no",
		Currency:       "NOK",
		DateFormat:     "DD.MM.YYYY",
		TimeFormat:     "24",
	}
}

func TestTeamHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req = handlerstest.WithScope(req, handlerstest.Owner())
	w := httptest.NewRecorder()

	expected := &api.TeamSchema{ID: 3, Name: "Bygg AS", Members: []api.TeamMember{{ID: 1, UserID: 7, Role: "owner"}}}
	mockService.On("Get", mock.Anything, 3).Return(expected, nil).Once()

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TeamSchema
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, expected.Members, resp.Members)
}

func TestTeamHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req = handlerstest.WithScope(req, handlerstest.Owner())
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, 3).Return(nil, repo.ErrNotFound).Once()

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestTeamHandler_UpdateCompany_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	body, _ := json.Marshal(company())
	req := httptest.NewRequest(http.MethodPut, "/api/team/company", bytes.NewReader(body))
	req = handlerstest.WithScope(req, handlerstest.Owner())
	w := httptest.NewRecorder()

	mockService.On("UpdateCompany", mock.Anything, 3, company()).
		Return(&api.TeamSchema{ID: 3, CompanySchema: company()}, nil).Once()

	h.UpdateCompany(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeamHandler_UpdateCompany_ValidationError(t *testing.T) {
	tests := map[string]func(c *api.CompanySchema){
		"short name":    func(c *api.CompanySchema) { c.CompanyName = "B" },
		"short phone":   func(c *api.CompanySchema) { c.CompanyPhone = "123" },
		"bad email":     func(c *api.CompanySchema) { c.CompanyEmail = "post" },
		"bad website":   func(c *api.CompanySchema) { c.CompanyWebsite = "bygg" },
		"short org":     func(c *api.CompanySchema) { c.CompanyOrgNumber = "123" },
		"bad theme":     func(c *api.CompanySchema) { c.Theme = "blue" },
		"bad currency":  func(c *api.CompanySchema) { c.Currency = "SEK" },
		"bad language":  func(c *api.CompanySchema) { c.Language = "sv" },
		"bad time":      func(c *api.CompanySchema) { c.TimeFormat = "36" },
		"bad date":      func(c *api.CompanySchema) { c.DateFormat = "YY" },
		"missing email": func(c *api.CompanySchema) { c.CompanyEmail = "" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			mockService := mocks.NewMockTeamService(t)
			h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

			c := company()
			mutate(&c)
			body, _ := json.Marshal(c)
			req := httptest.NewRequest(http.MethodPut, "/api/team/company", bytes.NewReader(body))
			req = handlerstest.WithScope(req, handlerstest.Owner())
			w := httptest.NewRecorder()

			h.UpdateCompany(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := handlerstest.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
		})
	}
}

func TestTeamHandler_Invite(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	body, _ := json.Marshal(team.InviteRequest{Email: "nils@bygg.no", Role: "member"})
	req := httptest.NewRequest(http.MethodPost, "/api/team/invitations", bytes.NewReader(body))
	req = handlerstest.WithScope(req, handlerstest.Owner())
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()

	mockService.On("Invite", mock.Anything, 3, 7, "nils@bygg.no", "member", "10.0.0.1").
		Return(&api.InvitationSchema{ID: 4, Email: "nils@bygg.no", Status: "pending"}, nil).Once()

	h.Invite(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTeamHandler_Invite_BadRole(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	body, _ := json.Marshal(team.InviteRequest{Email: "nils@bygg.no", Role: "admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/team/invitations", bytes.NewReader(body))
	req = handlerstest.WithScope(req, handlerstest.Owner())
	w := httptest.NewRecorder()

	h.Invite(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandler_Activity_NoTeam(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/team/activity", nil)
	req = handlerstest.WithScope(req, handlerstest.NoTeam())
	w := httptest.NewRecorder()

	h.Activity(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTeamHandler_Invitations_InternalError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/team/invitations", nil)
	req = handlerstest.WithScope(req, handlerstest.Owner())
	w := httptest.NewRecorder()

	mockService.On("Invitations", mock.Anything, 3).Return(nil, errors.New("db down")).Once()

	h.Invitations(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "db down")
}
