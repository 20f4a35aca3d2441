package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"schoolsync/internal/domain"
	"schoolsync/internal/service/mocks"
	"schoolsync/internal/source/airtable"
)

type DuplicatesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	schools *mocks.MockSchoolStore
}

func (s *DuplicatesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.schools = mocks.NewMockSchoolStore(s.ctrl)
}

func (s *DuplicatesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDuplicatesTestSuite(t *testing.T) {
	suite.Run(t, new(DuplicatesTestSuite))
}

func (s *DuplicatesTestSuite) TestCheckSchoolDuplicates_MatchesCaseInsensitively() {
	ctx := context.Background()

	s.fetcher.EXPECT().FetchAll(ctx).Return([]airtable.Record{
		{ID: "recA", Fields: map[string]any{"School": "Makhaza Primary"}},
		{ID: "recB", Fields: map[string]any{"School": "Harare Secondary"}},
		{ID: "recC", Fields: map[string]any{"City": "Cape Town"}},
	}, nil)

	s.schools.EXPECT().ListUnlinked(ctx).Return([]domain.School{
		{ID: 1, Name: "MAKHAZA PRIMARY"},
		{ID: 2, Name: "Some Other School"},
	}, nil)

	dups, err := CheckSchoolDuplicates(ctx, s.fetcher, s.schools)
	s.NoError(err)
	s.Require().Len(dups, 1)
	s.Equal(int64(1), dups[0].LocalID)
	s.Equal("MAKHAZA PRIMARY", dups[0].LocalName)
	s.Equal("recA", dups[0].RemoteID)
	s.Equal("Makhaza Primary", dups[0].RemoteName)
}

func (s *DuplicatesTestSuite) TestCheckSchoolDuplicates_NoUnlinkedRows() {
	ctx := context.Background()

	s.fetcher.EXPECT().FetchAll(ctx).Return([]airtable.Record{
		{ID: "recA", Fields: map[string]any{"School": "Makhaza Primary"}},
	}, nil)
	s.schools.EXPECT().ListUnlinked(ctx).Return(nil, nil)

	dups, err := CheckSchoolDuplicates(ctx, s.fetcher, s.schools)
	s.NoError(err)
	s.Empty(dups)
}

func (s *DuplicatesTestSuite) TestCheckSchoolDuplicates_FetchError() {
	ctx := context.Background()

	s.fetcher.EXPECT().FetchAll(ctx).Return(nil, errors.New("remote down"))

	_, err := CheckSchoolDuplicates(ctx, s.fetcher, s.schools)
	s.Error(err)
	s.Contains(err.Error(), "fetch school records")
}
