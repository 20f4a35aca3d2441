package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"schoolsync/internal/domain"
	"schoolsync/internal/service/mocks"
	"schoolsync/internal/source/airtable"
)

type SessionsProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	schools  *mocks.MockSchoolStore
	youth    *mocks.MockYouthStore
	children *mocks.MockChildStore
	mentors  *mocks.MockMentorStore
	sessions *mocks.MockSessionStore

	proc Processor
}

func (s *SessionsProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.schools = mocks.NewMockSchoolStore(s.ctrl)
	s.youth = mocks.NewMockYouthStore(s.ctrl)
	s.children = mocks.NewMockChildStore(s.ctrl)
	s.mentors = mocks.NewMockMentorStore(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	resolver := NewResolver(s.schools, s.youth, s.children, s.mentors, logger)
	s.proc = NewSessionsProcessor(domain.SyncTypeSessions, SessionFields(), s.sessions, resolver, logger)
}

func (s *SessionsProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionsProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(SessionsProcessorTestSuite))
}

func sessionRecord(id string, sessionNumber float64) airtable.Record {
	return airtable.Record{
		ID:          id,
		CreatedTime: "2024-03-12T08:00:00.000Z",
		Fields: map[string]any{
			"Sessions ID":                             sessionNumber,
			"Schools":                                 []any{"recSchool1"},
			"Schools (from Schools)":                  []any{"Makhaza Primary"},
			"Site Type":                               []any{"Primary School"},
			"LC Full Name":                            []any{"recYouth1"},
			"Full Name (from LC Full Name)":           []any{"Sipho Dlamini"},
			"Employee ID":                             []any{float64(555)},
			"Child Full Name":                         []any{"recChild1"},
			"Child Full Name (from Child Full Name)":  []any{"Lwazi Ngcobo"},
			"Mcode":                                   []any{"M-1001"},
			"Grade":                                   []any{"Grade 2"},
			"On the Programme":                        []any{"Yes"},
			"Mentor":                                  "Nomsa Khumalo",
			"Total Weekly Sessions Received":          float64(3),
			"Submitted for This Week":                 float64(1),
			"Week":                                    "Week 11",
			"Month":                                   "March",
			"Month and Year":                          "March 2024",
			"Sessions Met Minimum":                    "Yes",
			"Sessions Capture Date":                   "2024-03-11",
			"Created":                                 "2024-03-12T08:00:00.000Z",
		},
	}
}

func (s *SessionsProcessorTestSuite) expectResolved(school domain.School, youth domain.Youth, child domain.Child, mentor domain.Mentor) {
	s.schools.EXPECT().GetByExternalID(gomock.Any(), "recSchool1").Return(&school, nil)
	s.youth.EXPECT().GetByExternalID(gomock.Any(), "recYouth1").Return(&youth, nil)
	s.children.EXPECT().GetByExternalID(gomock.Any(), "recChild1").Return(&child, nil)
	s.mentors.EXPECT().GetByName(gomock.Any(), "Nomsa Khumalo").Return(&mentor, nil)
}

func (s *SessionsProcessorTestSuite) TestProcess_CreatesSession() {
	ctx := context.Background()
	rec := sessionRecord("recSess1", 1001)

	s.expectResolved(
		domain.School{ID: 10, Name: "Makhaza Primary"},
		domain.Youth{ID: 20, FullName: "Sipho Dlamini"},
		domain.Child{ID: 30, FullName: "Lwazi Ngcobo"},
		domain.Mentor{ID: 40, Name: "Nomsa Khumalo"},
	)

	s.sessions.EXPECT().GetByExternalID(ctx, "recSess1").Return(nil, nil)
	s.sessions.EXPECT().GetBySessionNumber(ctx, int64(1001)).Return(nil, nil)
	s.sessions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess *domain.Session) (int64, error) {
			s.Equal("recSess1", sess.ExternalID)
			s.Equal(int64(1001), sess.SessionNumber)
			s.Equal(int64(20), sess.YouthID)
			s.Equal(int64(30), sess.ChildID)
			s.Equal(int64(10), sess.SchoolID)
			s.Require().NotNil(sess.MentorID)
			s.Equal(int64(40), *sess.MentorID)
			s.Equal(3, sess.TotalWeeklySessions)
			s.Equal(1, sess.SubmittedForWeek)
			s.Equal("Week 11", sess.Week)
			s.Equal("March 2024", sess.MonthYear)
			s.Equal("Yes", sess.MetMinimum)
			s.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), sess.CaptureDate)
			s.Equal(time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), sess.RemoteCreatedAt)
			return 99, nil
		},
	)

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)
}

func (s *SessionsProcessorTestSuite) TestProcess_UpdatesByExternalID() {
	ctx := context.Background()
	rec := sessionRecord("recSess1", 1001)

	s.expectResolved(
		domain.School{ID: 10}, domain.Youth{ID: 20}, domain.Child{ID: 30}, domain.Mentor{ID: 40},
	)

	s.sessions.EXPECT().GetByExternalID(ctx, "recSess1").Return(&domain.Session{ID: 99}, nil)
	s.sessions.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess *domain.Session) error {
			s.Equal(int64(99), sess.ID)
			return nil
		},
	)

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionUpdated, out.Action)
}

func (s *SessionsProcessorTestSuite) TestProcess_LinksBySessionNumber() {
	ctx := context.Background()
	rec := sessionRecord("recSessNew", 1001)

	s.expectResolved(
		domain.School{ID: 10}, domain.Youth{ID: 20}, domain.Child{ID: 30}, domain.Mentor{ID: 40},
	)

	s.sessions.EXPECT().GetByExternalID(ctx, "recSessNew").Return(nil, nil)
	s.sessions.EXPECT().GetBySessionNumber(ctx, int64(1001)).Return(&domain.Session{ID: 77, SessionNumber: 1001}, nil)
	s.sessions.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess *domain.Session) error {
			s.Equal(int64(77), sess.ID)
			s.Equal("recSessNew", sess.ExternalID)
			return nil
		},
	)

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionUpdated, out.Action)
}

func (s *SessionsProcessorTestSuite) TestProcess_MissingSessionNumber() {
	ctx := context.Background()
	rec := airtable.Record{ID: "recSess1", Fields: map[string]any{"Week": "Week 11"}}

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
	s.Equal(domain.SkipMissingNaturalKey, out.Reason)
}

func (s *SessionsProcessorTestSuite) TestProcess_DuplicateInBatch() {
	ctx := context.Background()

	s.expectResolved(
		domain.School{ID: 10}, domain.Youth{ID: 20}, domain.Child{ID: 30}, domain.Mentor{ID: 40},
	)
	s.sessions.EXPECT().GetByExternalID(ctx, "recSess1").Return(nil, nil)
	s.sessions.EXPECT().GetBySessionNumber(ctx, int64(1001)).Return(nil, nil)
	s.sessions.EXPECT().Create(ctx, gomock.Any()).Return(int64(99), nil)

	out, err := s.proc.Process(ctx, sessionRecord("recSess1", 1001))
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)

	// Same session number again in the same run: no store calls at all.
	out, err = s.proc.Process(ctx, sessionRecord("recSess2", 1001))
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
	s.Equal(domain.SkipDuplicateInBatch, out.Reason)
}

func (s *SessionsProcessorTestSuite) TestProcess_MissingSchoolData() {
	ctx := context.Background()
	rec := airtable.Record{
		ID: "recSess1",
		Fields: map[string]any{
			"Sessions ID": float64(1001),
			"Week":        "Week 11",
		},
	}

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionSkipped, out.Action)
	s.Equal(domain.SkipMissingSchool, out.Reason)
}

func (s *SessionsProcessorTestSuite) TestProcess_CreatesPlaceholders() {
	ctx := context.Background()
	rec := sessionRecord("recSess1", 1001)

	// Nothing resolves by external id or natural key; the full placeholder
	// chain runs: school, youth, child, mentor.
	s.schools.EXPECT().GetByExternalID(ctx, "recSchool1").Return(nil, nil)
	s.schools.EXPECT().GetByName(ctx, "Makhaza Primary").Return(nil, nil)
	s.schools.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, school *domain.School) (int64, error) {
			s.Equal("Makhaza Primary", school.Name)
			s.Require().NotNil(school.ExternalID)
			s.Equal("recSchool1", *school.ExternalID)
			s.True(school.IsActive)
			school.ID = 10
			return 10, nil
		},
	)

	s.youth.EXPECT().GetByExternalID(ctx, "recYouth1").Return(nil, nil)
	s.youth.EXPECT().GetByEmployeeID(ctx, int64(555)).Return(nil, nil)
	s.youth.EXPECT().GetByFullName(ctx, "Sipho Dlamini").Return(nil, nil)
	s.youth.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, y *domain.Youth) (int64, error) {
			s.Equal("Sipho", y.FirstNames)
			s.Equal("Dlamini", y.LastName)
			s.Equal(int64(555), y.EmployeeID)
			s.Equal("Active", y.EmploymentStatus)
			s.Require().NotNil(y.SchoolID)
			s.Equal(int64(10), *y.SchoolID)
			y.ID = 20
			return 20, nil
		},
	)

	s.children.EXPECT().GetByExternalID(ctx, "recChild1").Return(nil, nil)
	s.children.EXPECT().GetByMcode(ctx, "M-1001").Return(nil, nil)
	s.children.EXPECT().GetByNameAndSchool(ctx, "Lwazi Ngcobo", int64(10)).Return(nil, nil)
	s.children.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Child) (int64, error) {
			s.Equal("Lwazi Ngcobo", c.FullName)
			s.Require().NotNil(c.Mcode)
			s.Equal("M-1001", *c.Mcode)
			s.True(c.OnProgramme)
			s.Equal(int64(10), c.SchoolID)
			c.ID = 30
			return 30, nil
		},
	)

	s.mentors.EXPECT().GetByName(ctx, "Nomsa Khumalo").Return(nil, nil)
	s.mentors.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Mentor) (int64, error) {
			s.Equal("Nomsa Khumalo", m.Name)
			m.ID = 40
			return 40, nil
		},
	)

	s.sessions.EXPECT().GetByExternalID(ctx, "recSess1").Return(nil, nil)
	s.sessions.EXPECT().GetBySessionNumber(ctx, int64(1001)).Return(nil, nil)
	s.sessions.EXPECT().Create(ctx, gomock.Any()).Return(int64(99), nil)

	out, err := s.proc.Process(ctx, rec)
	s.NoError(err)
	s.Equal(ActionCreated, out.Action)
}

func (s *SessionsProcessorTestSuite) TestExistsLocally() {
	ctx := context.Background()

	s.sessions.EXPECT().ExistsByExternalID(ctx, "recSess1").Return(true, nil)

	exists, err := s.proc.ExistsLocally(ctx, "recSess1")
	s.NoError(err)
	s.True(exists)
}
