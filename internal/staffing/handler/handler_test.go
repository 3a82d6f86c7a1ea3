package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/allocation"
	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/export"
	"staffplan/internal/staffing/handler/mocks"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/override"
	"staffplan/internal/staffing/service"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
	"staffplan/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/staffing-mocks.go -package=mocks Service
type StaffingHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestStaffingHandlerSuite(t *testing.T) {
	suite.Run(t, new(StaffingHandlerSuite))
}

func (s *StaffingHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *StaffingHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

var createdAt = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func person(name string, g models.Gender) models.Person {
	return models.Person{ID: id.NewPersonID(), Name: name, Gender: g, Preference: models.PreferenceNone, CreatedAt: createdAt}
}

func (s *StaffingHandlerSuite) TestAddPerson() {
	s.Run("parses gender aliases and preference", func() {
		p := person("Mei", models.GenderFemale)
		s.service.EXPECT().AddPerson(gomock.Any(), service.NewPersonInput{
			Name:       "Mei",
			Gender:     models.GenderFemale,
			Preference: models.PreferenceB,
			BondedWith: "Jun",
		}).Return(&p, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/roster", map[string]string{
			"name": "  Mei ", "gender": "女", "preference": "b", "bonded_with": " Jun",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		resp := testutil.UnmarshalResponse[PersonResponse](s.T(), rr)
		s.Equal(p.ID.String(), resp.ID)
		s.Equal("female", resp.Gender)
	})

	s.Run("rejects unknown gender before the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/roster", map[string]string{"name": "X", "gender": "other"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})

	s.Run("rejects unknown fields", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/roster", map[string]string{"name": "X", "gender": "m", "age": "30"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("requires a name", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/roster", map[string]string{"gender": "m"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})
}

func (s *StaffingHandlerSuite) TestGetPerson() {
	s.Run("bad id", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster/not-a-uuid"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("not found", func() {
		personID := id.NewPersonID()
		s.service.EXPECT().GetPerson(gomock.Any(), personID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "person not found"))
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster/"+personID.String()))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("found", func() {
		p := person("Lan", models.GenderFemale)
		s.service.EXPECT().GetPerson(gomock.Any(), p.ID).Return(&p, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster/"+p.ID.String()))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[PersonResponse](s.T(), rr)
		s.Equal("Lan", resp.Name)
	})

	s.Run("bonds route is not shadowed", func() {
		s.service.EXPECT().Bonds(gomock.Any()).Return(models.Bonds{}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster/bonds"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})
}

func (s *StaffingHandlerSuite) TestRemovePerson() {
	s.Run("bad id", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/roster/not-a-uuid"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("not found", func() {
		personID := id.NewPersonID()
		s.service.EXPECT().RemovePerson(gomock.Any(), personID).
			Return(dErrors.New(dErrors.CodeNotFound, "person not found"))
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/roster/"+personID.String()))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("removed", func() {
		personID := id.NewPersonID()
		s.service.EXPECT().RemovePerson(gomock.Any(), personID).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodDelete, "/roster/"+personID.String()))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})
}

func (s *StaffingHandlerSuite) TestListRosterAndBonds() {
	a, b := person("Ana", models.GenderFemale), person("Bo", models.GenderMale)
	b.BondedWithName = "Ana"
	b.BondedWithID = a.ID
	bonds := models.Bonds{{First: b.ID, Second: a.ID}}
	s.service.EXPECT().ListRoster(gomock.Any()).Return(&service.Roster{
		People: []models.Person{a, b},
		Bonds:  bonds,
		Stats:  models.StatsFor([]models.Person{a, b}),
	}, nil)
	s.service.EXPECT().Bonds(gomock.Any()).Return(bonds, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster"))
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	roster := testutil.UnmarshalResponse[RosterResponse](s.T(), rr)
	s.Require().Len(roster.People, 2)
	s.Equal(a.ID.String(), roster.People[1].BondedWithID)
	s.Equal(models.VenueStats{Males: 1, Females: 1, Total: 2}, roster.Stats)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/roster/bonds"))
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[BondsResponse](s.T(), rr)
	s.Equal([]BondResponse{{First: b.ID.String(), Second: a.ID.String()}}, resp.Bonds)
}

func (s *StaffingHandlerSuite) TestUpdateVenues() {
	s.Run("requires both quotas", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/venues", map[string]any{
			"A": map[string]any{"name": "North", "male_quota": 2},
			"B": map[string]any{"name": "South", "male_quota": 2, "female_quota": 2},
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})

	s.Run("passes configs through", func() {
		venues := models.Venues{
			A: models.VenueConfig{Name: "North", MaleQuota: 2, FemaleQuota: 3},
			B: models.VenueConfig{Name: "South", MaleQuota: 0, FemaleQuota: 1},
		}
		s.service.EXPECT().UpdateVenues(gomock.Any(), venues).Return(&service.VenueSettings{
			Venues: venues,
			Plan:   capacity.Plan{RequiredTotal: 6},
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/venues", map[string]any{
			"A": map[string]any{"name": " North ", "male_quota": 2, "female_quota": 3},
			"B": map[string]any{"name": "South", "male_quota": 0, "female_quota": 1},
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[VenueSettingsResponse](s.T(), rr)
		s.Equal(5, resp.A.TotalQuota)
		s.Equal(6, resp.Plan.RequiredTotal)
	})
}

func (s *StaffingHandlerSuite) TestRunAssignmentErrors() {
	s.Run("total mismatch carries figures", func() {
		core := &capacity.TotalMismatchError{Expected: 36, Actual: 35}
		s.service.EXPECT().RunAssignment(gomock.Any()).
			Return(nil, dErrors.Wrap(core, dErrors.CodeTotalMismatch, core.Error()))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/assignments"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeTotalMismatch))
		resp := testutil.UnmarshalResponse[struct {
			Details TotalMismatchDetails `json:"details"`
		}](s.T(), rr)
		s.Equal(TotalMismatchDetails{Expected: 36, Actual: 35}, resp.Details)
	})

	s.Run("quota infeasible lists violations", func() {
		core := &allocation.InfeasibleError{Violations: []models.Violation{{
			Kind: models.ViolationGenderOverQuota, Venue: models.VenueA, Gender: models.GenderMale, Limit: 1, Actual: 2,
		}}}
		s.service.EXPECT().RunAssignment(gomock.Any()).
			Return(nil, dErrors.Wrap(core, dErrors.CodeQuotaInfeasible, core.Error()))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/assignments"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeQuotaInfeasible))
		resp := testutil.UnmarshalResponse[struct {
			Details ViolationDetails `json:"details"`
		}](s.T(), rr)
		s.Equal(core.Violations, resp.Details.Violations)
	})

	s.Run("internal errors hide their description", func() {
		s.service.EXPECT().RunAssignment(gomock.Any()).
			Return(nil, dErrors.Wrap(errors.New("disk on fire"), dErrors.CodeInternal, "staffing operation failed"))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/assignments"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, string(dErrors.CodeInternal))
		s.NotContains(rr.Body.String(), "disk on fire")
	})
}

func (s *StaffingHandlerSuite) TestMovePerson() {
	personID := id.NewPersonID()

	s.Run("validates venues", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/assignments/moves", map[string]string{
			"person_id": personID.String(), "from": "A", "to": "C",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})

	s.Run("full venue is a conflict", func() {
		core := &override.CapacityExceededError{Venue: models.VenueB, Name: "South", Capacity: 18}
		s.service.EXPECT().MovePerson(gomock.Any(), personID, models.VenueA, models.VenueB).
			Return(nil, dErrors.Wrap(core, dErrors.CodeCapacityExceeded, core.Error()))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/assignments/moves", map[string]string{
			"person_id": personID.String(), "from": "a", "to": "b",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeCapacityExceeded))
		resp := testutil.UnmarshalResponse[struct {
			Details CapacityDetails `json:"details"`
		}](s.T(), rr)
		s.Equal(CapacityDetails{Venue: "B", Capacity: 18}, resp.Details)
	})

	s.Run("reports a broken bond", func() {
		partner := id.NewPersonID()
		s.service.EXPECT().MovePerson(gomock.Any(), personID, models.VenueB, models.VenueA).
			Return(&service.MoveResult{
				View:           &service.AssignmentView{Assigned: true, Moves: 1},
				BrokenBondWith: &partner,
			}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/assignments/moves", map[string]string{
			"person_id": personID.String(), "from": "B", "to": "A",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[MoveResponse](s.T(), rr)
		s.Equal(partner.String(), resp.BrokenBondWith)
		s.Equal(1, resp.Assignment.Moves)
		s.NotNil(resp.Assignment.Violations)
	})
}

func (s *StaffingHandlerSuite) TestExport() {
	s.Run("yaml attachment", func() {
		s.service.EXPECT().Export(gomock.Any(), export.FormatYAML).Return([]byte("Venue A (0 people): []\n"), nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/assignments/export?format=yml"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("application/yaml", rr.Header().Get("Content-Type"))
		s.Contains(rr.Header().Get("Content-Disposition"), "attachment")
		s.Equal("Venue A (0 people): []\n", rr.Body.String())
	})

	s.Run("unknown format", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/assignments/export?format=xlsx"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *StaffingHandlerSuite) TestActivity() {
	s.Run("default limit", func() {
		s.service.EXPECT().Activity(gomock.Any(), defaultActivityLimit).Return([]audit.Event{{Action: audit.ActionPersonAdded}}, nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/activity"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[ActivityResponse](s.T(), rr)
		s.Len(resp.Events, 1)
	})

	s.Run("bad limit", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/activity?limit=0"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func TestGetAssignmentBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Assignment(gomock.Any()).DoAndReturn(func(context.Context) (*service.AssignmentView, error) {
		return &service.AssignmentView{
			Venues:     models.DefaultVenues(),
			Assignment: models.Assignment{A: []models.Person{}, B: []models.Person{}},
		}, nil
	})

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/assignments"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[AssignmentResponse](t, rr)
	if resp.Assigned || resp.RunAt != nil || resp.A.Name != "Venue A" || len(resp.Violations) != 0 {
		t.Fatalf("unexpected empty assignment response: %+v", resp)
	}
}
