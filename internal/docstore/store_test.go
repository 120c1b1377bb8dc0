package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/docstore"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/mocks"
	"duty-roster-backend/internal/roster"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// StoreTestSuite tests the Postgres-backed Store against a mocked repository
type StoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockRosterDocumentRepositoryInterface
	notifier *docstore.LocalNotifier
	store    *docstore.Store
	ctx      context.Context
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRosterDocumentRepositoryInterface(suite.ctrl)
	suite.notifier = docstore.NewLocalNotifier()
	suite.store = docstore.NewStore(suite.repo, suite.notifier)
	suite.ctx = context.Background()
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StoreTestSuite) TestWrite_UpsertsOnlyNamedColumnsAndPublishes() {
	var published []byte
	_, err := suite.notifier.Subscribe(suite.ctx, "main_roster", func(p []byte) { published = p }, nil)
	suite.Require().NoError(err)

	stored := &models.RosterDocument{
		Key:         "main_roster",
		Staff:       json.RawMessage(`[{"id":"a","name":"A","category":"faculty","color":"#fff"}]`),
		Assignments: json.RawMessage(`{"2025-03-09":["a"]}`),
		StartDay:    26,
		LastUpdated: stamp,
	}

	suite.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(doc *models.RosterDocument, columns []string) error {
			suite.Equal("main_roster", doc.Key)
			suite.Equal(26, doc.StartDay)
			suite.Equal(stamp, doc.LastUpdated)
			suite.JSONEq(`{"2025-03-09":["a"]}`, string(doc.Assignments))
			suite.Nil(doc.Staff)
			suite.Nil(doc.Annotations)
			suite.ElementsMatch([]string{"start_day", "last_updated", "updated_at", "assignments"}, columns)
			return nil
		})
	suite.repo.EXPECT().GetByKey("main_roster").Return(stored, nil)

	err = suite.store.Write(suite.ctx, "main_roster", roster.Patch{
		Fields:      roster.FieldAssignments,
		Assignments: map[roster.DateKey][]roster.StaffID{"2025-03-09": {"a"}},
		StartDay:    roster.AnchorDay,
		LastUpdated: stamp,
	})
	suite.NoError(err)

	suite.Require().NotNil(published)
	snap, bad := roster.DecodeSnapshot(published)
	suite.Empty(bad)
	suite.Len(snap.Staff, 1)
	suite.Equal([]roster.StaffID{"a"}, snap.Assignments["2025-03-09"])
	suite.Empty(snap.Annotations)
	suite.Equal(26, snap.StartDay)
}

func (suite *StoreTestSuite) TestWrite_AllFieldsNameEveryColumn() {
	suite.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(doc *models.RosterDocument, columns []string) error {
			suite.JSONEq(`[]`, string(doc.Staff))
			suite.JSONEq(`{}`, string(doc.Assignments))
			suite.JSONEq(`{"2025-03-16":""}`, string(doc.Annotations))
			suite.ElementsMatch([]string{"start_day", "last_updated", "updated_at", "staff", "assignments", "annotations"}, columns)
			return nil
		})
	suite.repo.EXPECT().GetByKey("main_roster").Return(&models.RosterDocument{Key: "main_roster", StartDay: 26}, nil)

	err := suite.store.Write(suite.ctx, "main_roster", roster.Patch{
		Fields:      roster.AllFields,
		Annotations: map[roster.DateKey]string{"2025-03-16": ""},
		StartDay:    roster.AnchorDay,
		LastUpdated: stamp,
	})
	suite.NoError(err)
}

func (suite *StoreTestSuite) TestWrite_UpsertError() {
	suite.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	err := suite.store.Write(suite.ctx, "main_roster", roster.Patch{Fields: roster.AllFields, LastUpdated: stamp})
	suite.Error(err)
	suite.Contains(err.Error(), "failed to write roster document")
	suite.Contains(err.Error(), "connection refused")
}

func (suite *StoreTestSuite) TestWrite_ReloadError() {
	suite.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	suite.repo.EXPECT().GetByKey("main_roster").Return(nil, errors.New("timeout"))

	err := suite.store.Write(suite.ctx, "main_roster", roster.Patch{Fields: roster.AllFields, LastUpdated: stamp})
	suite.Error(err)
	suite.Contains(err.Error(), "failed to reload roster document")
}

func (suite *StoreTestSuite) TestSubscribe_MissingDocumentDeliversNothing() {
	suite.repo.EXPECT().GetByKey("main_roster").Return(nil, gorm.ErrRecordNotFound)

	delivered := 0
	unsubscribe, err := suite.store.Subscribe(suite.ctx, "main_roster", func(roster.Snapshot) { delivered++ }, nil)
	suite.Require().NoError(err)
	suite.NotNil(unsubscribe)
	suite.Equal(0, delivered)

	suite.Require().NoError(suite.notifier.Publish(suite.ctx, "main_roster", []byte(`{"staff": []}`)))
	suite.Equal(1, delivered)

	unsubscribe()
	suite.Require().NoError(suite.notifier.Publish(suite.ctx, "main_roster", []byte(`{}`)))
	suite.Equal(1, delivered)
}

func (suite *StoreTestSuite) TestSubscribe_DeliversStoredDocument() {
	suite.repo.EXPECT().GetByKey("main_roster").Return(&models.RosterDocument{
		Key:         "main_roster",
		Staff:       json.RawMessage(`[{"id":7,"name":"Legacy","category":"senior_pg","color":"#BAFFC9"}]`),
		Annotations: json.RawMessage(`{"2025-03-09":"Unit 3"}`),
		StartDay:    26,
	}, nil)

	var got []roster.Snapshot
	_, err := suite.store.Subscribe(suite.ctx, "main_roster", func(s roster.Snapshot) { got = append(got, s) }, nil)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Require().Len(got[0].Staff, 1)
	suite.Equal(roster.StaffID("7"), got[0].Staff[0].ID)
	suite.Empty(got[0].Assignments)
	suite.Equal("Unit 3", got[0].Annotations["2025-03-09"])
}

func (suite *StoreTestSuite) TestSubscribe_RepositoryError() {
	suite.repo.EXPECT().GetByKey("main_roster").Return(nil, errors.New("db down"))

	unsubscribe, err := suite.store.Subscribe(suite.ctx, "main_roster", func(roster.Snapshot) {}, nil)
	suite.Error(err)
	suite.Nil(unsubscribe)

	// the notifier subscription was released
	suite.NoError(suite.notifier.Publish(suite.ctx, "main_roster", []byte(`{}`)))
}

func (suite *StoreTestSuite) TestLoad_MissingDocument() {
	suite.repo.EXPECT().GetByKey("main_roster").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.store.Load("main_roster")
	suite.ErrorIs(err, apperrors.ErrRosterDocumentNotFound)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *StoreTestSuite) TestLoad_RepositoryError() {
	suite.repo.EXPECT().GetByKey("main_roster").Return(nil, errors.New("db down"))

	_, err := suite.store.Load("main_roster")
	suite.Error(err)
	suite.False(apperrors.IsNotFound(err))
	suite.Contains(err.Error(), "failed to load roster document")
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
