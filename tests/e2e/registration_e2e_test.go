//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	teamModel "github.com/arenahub/tournament/internal/team/model"
)

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) TestHealth() {
	resp, err := s.httpClient.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestRegisterRequiresLogin() {
	resp, body := s.registerTeam(nil, validForm(), false)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.JSONEq(`{"success":false,"message":"Login required"}`, string(body))

	var count int64
	s.db.Model(&teamModel.Team{}).Count(&count)
	s.Zero(count, "no row may be written for an unauthenticated request")
}

func (s *E2ETestSuite) TestRegisterPersistsTheTeam() {
	user, cookie := s.loginAs("captain@example.com")

	resp, body := s.registerTeam(cookie, validForm(), false)

	s.Require().Equal(http.StatusCreated, resp.StatusCode, "body: %s", body)

	var result struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Team    teamModel.Registered `json:"team"`
	}
	s.Require().NoError(json.Unmarshal(body, &result))
	s.True(result.Success)
	s.Contains(result.Message, "Night Owls")
	s.Equal(user.Email, result.Team.Email, "email must come from the signed-in identity")

	var team teamModel.Team
	s.Require().NoError(s.db.Where("team_name = ?", "Night Owls").First(&team).Error)
	s.Equal("captain@example.com", team.Email)
	s.Equal("Jordan", team.Leader)
	s.Equal("TXN-e2e-1", team.TransactionID)
	s.Nil(team.TransactionScreenshot)
}

func (s *E2ETestSuite) TestRegisterStoresScreenshotURL() {
	_, cookie := s.loginAs("captain@example.com")

	resp, body := s.registerTeam(cookie, validForm(), true)

	s.Require().Equal(http.StatusCreated, resp.StatusCode, "body: %s", body)

	var team teamModel.Team
	s.Require().NoError(s.db.Where("team_name = ?", "Night Owls").First(&team).Error)
	s.Require().NotNil(team.TransactionScreenshot)
	s.Contains(*team.TransactionScreenshot, "https://media.example.com/")
}

func (s *E2ETestSuite) TestRegisterReportsAllViolations() {
	_, cookie := s.loginAs("captain@example.com")

	form := validForm()
	form["teamName"] = ""
	form["phone"] = ""
	form["p3"] = ""

	resp, body := s.registerTeam(cookie, form, false)

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

	var result struct {
		Success bool                   `json:"success"`
		Errors  []teamModel.FieldError `json:"errors"`
	}
	s.Require().NoError(json.Unmarshal(body, &result))
	s.False(result.Success)
	s.Require().Len(result.Errors, 3)
	s.Equal("teamName", result.Errors[0].Field)
	s.Equal("phone", result.Errors[1].Field)
	s.Equal("p3", result.Errors[2].Field)

	var count int64
	s.db.Model(&teamModel.Team{}).Count(&count)
	s.Zero(count, "an invalid submission must not be persisted")
}

func (s *E2ETestSuite) TestResubmissionCreatesAnotherRecord() {
	_, cookie := s.loginAs("captain@example.com")

	resp, _ := s.registerTeam(cookie, validForm(), false)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, _ = s.registerTeam(cookie, validForm(), false)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var count int64
	s.db.Model(&teamModel.Team{}).Count(&count)
	s.EqualValues(2, count, "there is no duplicate guard on submissions")
}

func (s *E2ETestSuite) TestStaleSessionIsRejected() {
	_, cookie := s.loginAs("captain@example.com")

	s.Require().NoError(s.sessions.Delete(s.ctx, cookie.Value))

	resp, body := s.registerTeam(cookie, validForm(), false)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.JSONEq(`{"success":false,"message":"Login required"}`, string(body))
}
