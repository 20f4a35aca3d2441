package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"schoolsync/internal/domain"
	"schoolsync/internal/service/mocks"
	"schoolsync/internal/source/airtable"
	"schoolsync/testdata/utils"
)

type SchoolsProcessorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	schools *mocks.MockSchoolStore
	logger  *slog.Logger
}

func (s *SchoolsProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.schools = mocks.NewMockSchoolStore(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *SchoolsProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchoolsProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolsProcessorTestSuite))
}

func (s *SchoolsProcessorTestSuite) newProcessor(linkExisting bool) Processor {
	return NewSchoolsProcessor(s.schools, linkExisting, s.logger)
}

func schoolRecord(id string) airtable.Record {
	return airtable.Record{
		ID:          id,
		CreatedTime: "2024-03-12T08:00:00.000Z",
		Fields: map[string]any{
			"School":                    "Makhaza Primary",
			"Type":                      []any{"Primary"},
			"Programmes":                []any{"Literacy", "Numeracy"},
			"Principal":                 "Mrs Jacobs",
			"Main Contact":              "Mr Adams",
			"Main Contact Phone Number": "(021) 555-1234",
			"Address":                   "12 Main Road",
			"Suburb":                    "Khayelitsha",
			"City":                      "Cape Town",
			"Coord East":                float64(-34.04),
			"Coord South":               float64(18.67),
			"Actively Working In":       true,
		},
	}
}

func (s *SchoolsProcessorTestSuite) TestProcess_CreatesSchool() {
	ctx := context.Background()
	rec := schoolRecord("recSchool1")

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(nil, nil)
	s.schools.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, school *domain.School) (int64, error) {
			s.Equal("Makhaza Primary", school.Name)
			s.Require().NotNil(school.ExternalID)
			s.Equal("recSchool1", *school.ExternalID)
			s.Require().NotNil(school.Category)
			s.Equal("Primary School", *school.Category)
			s.Require().NotNil(school.SiteType)
			s.Equal("Literacy, Numeracy", *school.SiteType)
			s.Require().NotNil(school.ContactPhone)
			s.Equal("0215551234", *school.ContactPhone)
			s.Require().NotNil(school.Address)
			s.Equal("12 Main Road, Khayelitsha", *school.Address)
			s.Require().NotNil(school.Latitude)
			s.InDelta(-34.04, *school.Latitude, 1e-9)
			s.Require().NotNil(school.ActivelyWorkingIn)
			s.Equal("Yes", *school.ActivelyWorkingIn)
			s.True(school.IsActive)
			return 10, nil
		},
	)

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)
}

func (s *SchoolsProcessorTestSuite) TestProcess_UnknownTypeMapsToOther() {
	ctx := context.Background()
	rec := airtable.Record{
		ID: "recSchool1",
		Fields: map[string]any{
			"School": "Community Hall",
			"Type":   []any{"Aftercare"},
		},
	}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(nil, nil)
	s.schools.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, school *domain.School) (int64, error) {
			s.Require().NotNil(school.Category)
			s.Equal("Other", *school.Category)
			return 10, nil
		},
	)

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)
}

func (s *SchoolsProcessorTestSuite) TestProcess_MissingName() {
	ctx := context.Background()
	rec := airtable.Record{ID: "recSchool1", Fields: map[string]any{"City": "Cape Town"}}

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
	s.Equal(domain.SkipMissingNaturalKey, out.Reason)
}

func (s *SchoolsProcessorTestSuite) TestProcess_UpdatesChangedFields() {
	ctx := context.Background()
	rec := schoolRecord("recSchool1")

	existing := &domain.School{
		ID:         10,
		ExternalID: utils.Ptr("recSchool1"),
		Name:       "Makhaza Primary",
		City:       utils.Ptr("Old City"),
		IsActive:   true,
	}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(existing, nil)
	s.schools.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, school *domain.School) error {
			s.Equal(int64(10), school.ID)
			s.Require().NotNil(school.City)
			s.Equal("Cape Town", *school.City)
			return nil
		},
	)

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionUpdated, out.Action)
}

func (s *SchoolsProcessorTestSuite) TestProcess_UnchangedIsSkipped() {
	ctx := context.Background()
	rec := airtable.Record{
		ID:     "recSchool1",
		Fields: map[string]any{"School": "Makhaza Primary"},
	}

	existing := &domain.School{
		ID:         10,
		ExternalID: utils.Ptr("recSchool1"),
		Name:       "Makhaza Primary",
		IsActive:   true,
	}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(existing, nil)

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
	s.Equal(domain.SkipUnchanged, out.Reason)
}

func (s *SchoolsProcessorTestSuite) TestProcess_EmptyRemoteFieldsKeepLocalData() {
	ctx := context.Background()
	rec := airtable.Record{
		ID:     "recSchool1",
		Fields: map[string]any{"School": "Makhaza Primary"},
	}

	existing := &domain.School{
		ID:         10,
		ExternalID: utils.Ptr("recSchool1"),
		Name:       "Makhaza Primary",
		City:       utils.Ptr("Cape Town"),
		Principal:  utils.Ptr("Mrs Jacobs"),
		IsActive:   true,
	}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(existing, nil)

	// No Update call: the sparse record must not blank locally held data.
	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
}

func (s *SchoolsProcessorTestSuite) TestProcess_LinkExistingClaimsUnlinkedRow() {
	ctx := context.Background()
	rec := airtable.Record{
		ID:     "recSchool1",
		Fields: map[string]any{"School": "Makhaza Primary"},
	}

	unlinked := &domain.School{ID: 10, Name: "Makhaza Primary", IsActive: true}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(nil, nil)
	s.schools.EXPECT().GetUnlinkedByName(ctx, "Makhaza Primary").Return(unlinked, nil)
	s.schools.EXPECT().LinkExternalID(ctx, int64(10), "recSchool1").Return(nil)

	out, err := s.newProcessor(true).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionUpdated, out.Action)
}

func (s *SchoolsProcessorTestSuite) TestProcess_WithoutLinkExistingCreatesNewRow() {
	ctx := context.Background()
	rec := airtable.Record{
		ID:     "recSchool1",
		Fields: map[string]any{"School": "Makhaza Primary"},
	}

	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(nil, nil)
	s.schools.EXPECT().Create(ctx, gomock.Any()).Return(int64(11), nil)

	out, err := s.newProcessor(false).Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)
}
