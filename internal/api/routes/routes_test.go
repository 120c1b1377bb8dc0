package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"duty-roster-backend/internal/api/routes"
	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/docstore"
	"duty-roster-backend/internal/roster"
	"duty-roster-backend/internal/service"
	"duty-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const rosterKey = "main_roster"

type RoutesTestSuite struct {
	suite.Suite
	store       *docstore.MemoryStore
	coordinator *roster.Coordinator
	http        *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.store = docstore.NewMemoryStore()
	require.NoError(suite.T(), suite.store.Put(rosterKey, []byte(`{
		"doctors": [
			{"id": "b", "name": "Dr. Bose", "category": "junior_pg", "color": "#E0F2FE"},
			{"id": "a", "name": "Dr. Anand", "category": "faculty", "color": "#FCE7F3"}
		],
		"assignments": {"2025-03-02": ["b"]},
		"notes": {}
	}`)))

	suite.coordinator = roster.NewCoordinator(suite.store, rosterKey, roster.WithSettleDelay(0))
	require.NoError(suite.T(), suite.coordinator.Start(context.Background()))

	cfg := &config.Config{
		EditPasscode:   "2613",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router = routes.SetupRoutes(nil, nil, suite.coordinator, cfg)
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.coordinator.Stop()
}

func (suite *RoutesTestSuite) TestReadRoutes() {
	var staff service.StaffListResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/roster/staff", nil), http.StatusOK, &staff)
	require.Len(suite.T(), staff.Staff, 2)
	assert.Equal(suite.T(), "Dr. Bose", staff.Staff[0].Name, "staff list keeps roster order")
	assert.Equal(suite.T(), "Dr. Anand", staff.Staff[1].Name)

	var cycle service.CycleResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/roster/cycle?date=2025-03-02", nil), http.StatusOK, &cycle)
	assert.Equal(suite.T(), roster.DateKey("2025-02-26"), cycle.StartDate)
	assert.Equal(suite.T(), roster.DateKey("2025-03-25"), cycle.EndDate)

	var day service.DayResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/roster/days/2025-03-02", nil), http.StatusOK, &day)
	assert.True(suite.T(), day.IsSunday)
	require.Len(suite.T(), day.Staff, 1)
	assert.Equal(suite.T(), roster.StaffID("b"), day.Staff[0].ID)

	var state service.LockStateResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/roster/lock", nil), http.StatusOK, &state)
	assert.True(suite.T(), state.Locked)
}

func (suite *RoutesTestSuite) TestEditFlow() {
	body := map[string]string{"staff_id": "a"}

	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/roster/days/2025-03-02/assignments", body)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "locked")

	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/roster/unlock", map[string]string{"passcode": "2613"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var day service.DayResponse
	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/roster/days/2025-03-02/assignments", body)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &day)
	require.Len(suite.T(), day.Staff, 2)
	assert.Equal(suite.T(), roster.StaffID("a"), day.Staff[0].ID)

	raw, ok := suite.store.Raw(rosterKey)
	require.True(suite.T(), ok)
	var doc struct {
		Assignments map[string][]string `json:"assignments"`
		StartDay    int                 `json:"startDay"`
	}
	require.NoError(suite.T(), json.Unmarshal(raw, &doc))
	assert.Equal(suite.T(), []string{"b", "a"}, doc.Assignments["2025-03-02"])
	assert.Equal(suite.T(), 26, doc.StartDay)

	w = suite.http.MakeRequest(http.MethodDelete, "/api/v1/roster/staff/b", nil)
	testutils.AssertNoContent(suite.T(), w)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/roster/days/2025-03-02", nil), http.StatusOK, &day)
	assert.Len(suite.T(), day.Staff, 1, "removed staff are hidden")

	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/roster/lock", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	w = suite.http.MakeRequest(http.MethodDelete, "/api/v1/roster/days/2025-03-02/assignments", nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestMiddlewareApplied() {
	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/roster/status", nil, map[string]string{
		"Origin": "http://localhost:5173",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
	assert.Equal(suite.T(), "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	var status map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(suite.T(), "live", status["status"])
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
