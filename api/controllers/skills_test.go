package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

func newSkillsService(t *testing.T) skills.Service {
	t.Helper()
	repo, err := skills.NewRepository(testDeps(), []skills.Skill{
		{ID: 1, Title: "Drums", Description: "Rock beats", Category: enums.SkillCategoryMusic, Type: enums.SkillTypeOffer, ExperienceLevel: enums.ExperienceLevelExpert, UserID: 1, CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: 2, Title: "Sketching", Description: "Portraits", Category: enums.SkillCategoryArt, Type: enums.SkillTypeRequest, ExperienceLevel: enums.ExperienceLevelBeginner, UserID: 2, CreatedAt: testNow.Add(-time.Hour)},
	})
	require.NoError(t, err)
	svc, err := skills.NewService(repo)
	require.NoError(t, err)
	return svc
}

type listedSkills struct {
	Items []skills.Skill `json:"items"`
	Count int            `json:"count"`
}

func TestListSkillsFiltersByQuery(t *testing.T) {
	svc := newSkillsService(t)

	resp := serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills?category=Music", "", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var music listedSkills
	decodeData(t, resp, &music)
	require.Equal(t, 1, music.Count)
	assert.Equal(t, 1, music.Items[0].ID)

	resp = serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills?category=Art&type=offer", "", nil))
	var none listedSkills
	decodeData(t, resp, &none)
	assert.Equal(t, 0, none.Count)
	assert.NotNil(t, none.Items)

	resp = serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills?sortBy=newest", "", nil))
	var newest listedSkills
	decodeData(t, resp, &newest)
	assert.Equal(t, 2, newest.Items[0].ID)
}

func TestListSkillsSearchKeepsWhitespace(t *testing.T) {
	svc := newSkillsService(t)

	resp := serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills?search=rock%20", "", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var rock listedSkills
	decodeData(t, resp, &rock)
	require.Equal(t, 1, rock.Count)
	assert.Equal(t, 1, rock.Items[0].ID)

	resp = serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills?search=drums%20", "", nil))
	var drums listedSkills
	decodeData(t, resp, &drums)
	assert.Equal(t, 0, drums.Count)
}

func TestListSkillsRejectsUnknownSort(t *testing.T) {
	resp := serve(ListSkills(newSkillsService(t), testLogger()), newRequest(http.MethodGet, "/api/v1/skills?sortBy=rating", "", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, string(pkgerrors.CodeValidation), errorCode(t, resp))
}

func TestGetSkill(t *testing.T) {
	svc := newSkillsService(t)

	resp := serve(GetSkill(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills/2", "", map[string]string{"skillId": "2"}))
	require.Equal(t, http.StatusOK, resp.Code)
	var skill skills.Skill
	decodeData(t, resp, &skill)
	assert.Equal(t, "Sketching", skill.Title)

	resp = serve(GetSkill(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills/abc", "", map[string]string{"skillId": "abc"}))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = serve(GetSkill(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills/99", "", map[string]string{"skillId": "99"}))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateSkill(t *testing.T) {
	svc := newSkillsService(t)
	body := `{"title":"Sourdough","description":"Starter care","category":"Cooking","type":"offer","experienceLevel":"advanced","userId":1}`

	resp := serve(CreateSkill(svc, testLogger()), newRequest(http.MethodPost, "/api/v1/skills", body, nil))
	require.Equal(t, http.StatusCreated, resp.Code)
	var created skills.Skill
	decodeData(t, resp, &created)
	assert.Equal(t, 3, created.ID)
	assert.True(t, created.CreatedAt.Equal(testNow))
}

func TestCreateSkillValidation(t *testing.T) {
	svc := newSkillsService(t)

	resp := serve(CreateSkill(svc, testLogger()), newRequest(http.MethodPost, "/api/v1/skills", `{"title":"x"}`, nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = serve(CreateSkill(svc, testLogger()), newRequest(http.MethodPost, "/api/v1/skills", `{"title":"x","description":"y","category":"Gardening","type":"offer","experienceLevel":"expert","userId":1}`, nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateAndDeleteSkill(t *testing.T) {
	svc := newSkillsService(t)

	resp := serve(UpdateSkill(svc, testLogger()), newRequest(http.MethodPatch, "/api/v1/skills/1", `{"title":"Jazz Drums"}`, map[string]string{"skillId": "1"}))
	require.Equal(t, http.StatusOK, resp.Code)
	var updated skills.Skill
	decodeData(t, resp, &updated)
	assert.Equal(t, "Jazz Drums", updated.Title)
	assert.Equal(t, "Rock beats", updated.Description)

	resp = serve(DeleteSkill(svc, testLogger()), newRequest(http.MethodDelete, "/api/v1/skills/1", "", map[string]string{"skillId": "1"}))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = serve(DeleteSkill(svc, testLogger()), newRequest(http.MethodDelete, "/api/v1/skills/1", "", map[string]string{"skillId": "1"}))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

type failingSkillsService struct {
	skills.Service
	err error
}

func (f failingSkillsService) List(ctx context.Context, criteria skills.Criteria) ([]skills.Skill, error) {
	return nil, f.err
}

func TestListSkillsMapsCanceledRequest(t *testing.T) {
	svc := failingSkillsService{err: pkgerrors.Wrap(pkgerrors.CodeCanceled, context.Canceled, "skill getAll canceled")}
	resp := serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills", "", nil))
	assert.Equal(t, 499, resp.Code)

	svc = failingSkillsService{err: errors.New("boom")}
	resp = serve(ListSkills(svc, testLogger()), newRequest(http.MethodGet, "/api/v1/skills", "", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestSkillsHandlersRequireService(t *testing.T) {
	resp := serve(ListSkills(nil, testLogger()), newRequest(http.MethodGet, "/api/v1/skills", "", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
