// Code generated by MockGen. DO NOT EDIT.
// Source: interfaces.go
//
// Generated by this command:
//
//	mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	domain "schoolsync/internal/domain"
	airtable "schoolsync/internal/source/airtable"

	gomock "go.uber.org/mock/gomock"
)

// MockSchoolStore is a mock of SchoolStore interface.
type MockSchoolStore struct {
	ctrl     *gomock.Controller
	recorder *MockSchoolStoreMockRecorder
	isgomock struct{}
}

// MockSchoolStoreMockRecorder is the mock recorder for MockSchoolStore.
type MockSchoolStoreMockRecorder struct {
	mock *MockSchoolStore
}

// NewMockSchoolStore creates a new mock instance.
func NewMockSchoolStore(ctrl *gomock.Controller) *MockSchoolStore {
	mock := &MockSchoolStore{ctrl: ctrl}
	mock.recorder = &MockSchoolStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSchoolStore) EXPECT() *MockSchoolStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSchoolStore) Create(ctx context.Context, school *domain.School) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, school)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockSchoolStoreMockRecorder) Create(ctx, school any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSchoolStore)(nil).Create), ctx, school)
}

// GetByExternalID mocks base method.
func (m *MockSchoolStore) GetByExternalID(ctx context.Context, externalID string) (*domain.School, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByExternalID", ctx, externalID)
	ret0, _ := ret[0].(*domain.School)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByExternalID indicates an expected call of GetByExternalID.
func (mr *MockSchoolStoreMockRecorder) GetByExternalID(ctx, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByExternalID", reflect.TypeOf((*MockSchoolStore)(nil).GetByExternalID), ctx, externalID)
}

// GetByName mocks base method.
func (m *MockSchoolStore) GetByName(ctx context.Context, name string) (*domain.School, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", ctx, name)
	ret0, _ := ret[0].(*domain.School)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockSchoolStoreMockRecorder) GetByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockSchoolStore)(nil).GetByName), ctx, name)
}

// GetUnlinkedByName mocks base method.
func (m *MockSchoolStore) GetUnlinkedByName(ctx context.Context, name string) (*domain.School, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnlinkedByName", ctx, name)
	ret0, _ := ret[0].(*domain.School)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnlinkedByName indicates an expected call of GetUnlinkedByName.
func (mr *MockSchoolStoreMockRecorder) GetUnlinkedByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnlinkedByName", reflect.TypeOf((*MockSchoolStore)(nil).GetUnlinkedByName), ctx, name)
}

// LinkExternalID mocks base method.
func (m *MockSchoolStore) LinkExternalID(ctx context.Context, id int64, externalID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkExternalID", ctx, id, externalID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkExternalID indicates an expected call of LinkExternalID.
func (mr *MockSchoolStoreMockRecorder) LinkExternalID(ctx, id, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkExternalID", reflect.TypeOf((*MockSchoolStore)(nil).LinkExternalID), ctx, id, externalID)
}

// ListUnlinked mocks base method.
func (m *MockSchoolStore) ListUnlinked(ctx context.Context) ([]domain.School, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnlinked", ctx)
	ret0, _ := ret[0].([]domain.School)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUnlinked indicates an expected call of ListUnlinked.
func (mr *MockSchoolStoreMockRecorder) ListUnlinked(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnlinked", reflect.TypeOf((*MockSchoolStore)(nil).ListUnlinked), ctx)
}

// Update mocks base method.
func (m *MockSchoolStore) Update(ctx context.Context, school *domain.School) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, school)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockSchoolStoreMockRecorder) Update(ctx, school any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockSchoolStore)(nil).Update), ctx, school)
}

// MockYouthStore is a mock of YouthStore interface.
type MockYouthStore struct {
	ctrl     *gomock.Controller
	recorder *MockYouthStoreMockRecorder
	isgomock struct{}
}

// MockYouthStoreMockRecorder is the mock recorder for MockYouthStore.
type MockYouthStoreMockRecorder struct {
	mock *MockYouthStore
}

// NewMockYouthStore creates a new mock instance.
func NewMockYouthStore(ctrl *gomock.Controller) *MockYouthStore {
	mock := &MockYouthStore{ctrl: ctrl}
	mock.recorder = &MockYouthStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockYouthStore) EXPECT() *MockYouthStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockYouthStore) Create(ctx context.Context, y *domain.Youth) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, y)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockYouthStoreMockRecorder) Create(ctx, y any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockYouthStore)(nil).Create), ctx, y)
}

// GetByEmployeeID mocks base method.
func (m *MockYouthStore) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.Youth, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmployeeID", ctx, employeeID)
	ret0, _ := ret[0].(*domain.Youth)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmployeeID indicates an expected call of GetByEmployeeID.
func (mr *MockYouthStoreMockRecorder) GetByEmployeeID(ctx, employeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmployeeID", reflect.TypeOf((*MockYouthStore)(nil).GetByEmployeeID), ctx, employeeID)
}

// GetByExternalID mocks base method.
func (m *MockYouthStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Youth, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByExternalID", ctx, externalID)
	ret0, _ := ret[0].(*domain.Youth)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByExternalID indicates an expected call of GetByExternalID.
func (mr *MockYouthStoreMockRecorder) GetByExternalID(ctx, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByExternalID", reflect.TypeOf((*MockYouthStore)(nil).GetByExternalID), ctx, externalID)
}

// GetByFullName mocks base method.
func (m *MockYouthStore) GetByFullName(ctx context.Context, fullName string) (*domain.Youth, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByFullName", ctx, fullName)
	ret0, _ := ret[0].(*domain.Youth)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByFullName indicates an expected call of GetByFullName.
func (mr *MockYouthStoreMockRecorder) GetByFullName(ctx, fullName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByFullName", reflect.TypeOf((*MockYouthStore)(nil).GetByFullName), ctx, fullName)
}

// Update mocks base method.
func (m *MockYouthStore) Update(ctx context.Context, y *domain.Youth) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, y)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockYouthStoreMockRecorder) Update(ctx, y any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockYouthStore)(nil).Update), ctx, y)
}

// MockChildStore is a mock of ChildStore interface.
type MockChildStore struct {
	ctrl     *gomock.Controller
	recorder *MockChildStoreMockRecorder
	isgomock struct{}
}

// MockChildStoreMockRecorder is the mock recorder for MockChildStore.
type MockChildStoreMockRecorder struct {
	mock *MockChildStore
}

// NewMockChildStore creates a new mock instance.
func NewMockChildStore(ctrl *gomock.Controller) *MockChildStore {
	mock := &MockChildStore{ctrl: ctrl}
	mock.recorder = &MockChildStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChildStore) EXPECT() *MockChildStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockChildStore) Create(ctx context.Context, c *domain.Child) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, c)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockChildStoreMockRecorder) Create(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockChildStore)(nil).Create), ctx, c)
}

// GetByExternalID mocks base method.
func (m *MockChildStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Child, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByExternalID", ctx, externalID)
	ret0, _ := ret[0].(*domain.Child)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByExternalID indicates an expected call of GetByExternalID.
func (mr *MockChildStoreMockRecorder) GetByExternalID(ctx, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByExternalID", reflect.TypeOf((*MockChildStore)(nil).GetByExternalID), ctx, externalID)
}

// GetByMcode mocks base method.
func (m *MockChildStore) GetByMcode(ctx context.Context, mcode string) (*domain.Child, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByMcode", ctx, mcode)
	ret0, _ := ret[0].(*domain.Child)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByMcode indicates an expected call of GetByMcode.
func (mr *MockChildStoreMockRecorder) GetByMcode(ctx, mcode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByMcode", reflect.TypeOf((*MockChildStore)(nil).GetByMcode), ctx, mcode)
}

// GetByNameAndSchool mocks base method.
func (m *MockChildStore) GetByNameAndSchool(ctx context.Context, fullName string, schoolID int64) (*domain.Child, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByNameAndSchool", ctx, fullName, schoolID)
	ret0, _ := ret[0].(*domain.Child)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByNameAndSchool indicates an expected call of GetByNameAndSchool.
func (mr *MockChildStoreMockRecorder) GetByNameAndSchool(ctx, fullName, schoolID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByNameAndSchool", reflect.TypeOf((*MockChildStore)(nil).GetByNameAndSchool), ctx, fullName, schoolID)
}

// MockMentorStore is a mock of MentorStore interface.
type MockMentorStore struct {
	ctrl     *gomock.Controller
	recorder *MockMentorStoreMockRecorder
	isgomock struct{}
}

// MockMentorStoreMockRecorder is the mock recorder for MockMentorStore.
type MockMentorStoreMockRecorder struct {
	mock *MockMentorStore
}

// NewMockMentorStore creates a new mock instance.
func NewMockMentorStore(ctrl *gomock.Controller) *MockMentorStore {
	mock := &MockMentorStore{ctrl: ctrl}
	mock.recorder = &MockMentorStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMentorStore) EXPECT() *MockMentorStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m_2 *MockMentorStore) Create(ctx context.Context, m *domain.Mentor) (int64, error) {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "Create", ctx, m)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockMentorStoreMockRecorder) Create(ctx, m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMentorStore)(nil).Create), ctx, m)
}

// GetByName mocks base method.
func (m *MockMentorStore) GetByName(ctx context.Context, name string) (*domain.Mentor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", ctx, name)
	ret0, _ := ret[0].(*domain.Mentor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockMentorStoreMockRecorder) GetByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockMentorStore)(nil).GetByName), ctx, name)
}

// MockSessionStore is a mock of SessionStore interface.
type MockSessionStore struct {
	ctrl     *gomock.Controller
	recorder *MockSessionStoreMockRecorder
	isgomock struct{}
}

// MockSessionStoreMockRecorder is the mock recorder for MockSessionStore.
type MockSessionStoreMockRecorder struct {
	mock *MockSessionStore
}

// NewMockSessionStore creates a new mock instance.
func NewMockSessionStore(ctrl *gomock.Controller) *MockSessionStore {
	mock := &MockSessionStore{ctrl: ctrl}
	mock.recorder = &MockSessionStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionStore) EXPECT() *MockSessionStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSessionStore) Create(ctx context.Context, sess *domain.Session) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, sess)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockSessionStoreMockRecorder) Create(ctx, sess any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSessionStore)(nil).Create), ctx, sess)
}

// ExistsByExternalID mocks base method.
func (m *MockSessionStore) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistsByExternalID", ctx, externalID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExistsByExternalID indicates an expected call of ExistsByExternalID.
func (mr *MockSessionStoreMockRecorder) ExistsByExternalID(ctx, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistsByExternalID", reflect.TypeOf((*MockSessionStore)(nil).ExistsByExternalID), ctx, externalID)
}

// GetByExternalID mocks base method.
func (m *MockSessionStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByExternalID", ctx, externalID)
	ret0, _ := ret[0].(*domain.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByExternalID indicates an expected call of GetByExternalID.
func (mr *MockSessionStoreMockRecorder) GetByExternalID(ctx, externalID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByExternalID", reflect.TypeOf((*MockSessionStore)(nil).GetByExternalID), ctx, externalID)
}

// GetBySessionNumber mocks base method.
func (m *MockSessionStore) GetBySessionNumber(ctx context.Context, sessionNumber int64) (*domain.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySessionNumber", ctx, sessionNumber)
	ret0, _ := ret[0].(*domain.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBySessionNumber indicates an expected call of GetBySessionNumber.
func (mr *MockSessionStoreMockRecorder) GetBySessionNumber(ctx, sessionNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySessionNumber", reflect.TypeOf((*MockSessionStore)(nil).GetBySessionNumber), ctx, sessionNumber)
}

// Update mocks base method.
func (m *MockSessionStore) Update(ctx context.Context, sess *domain.Session) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, sess)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockSessionStoreMockRecorder) Update(ctx, sess any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockSessionStore)(nil).Update), ctx, sess)
}

// MockSyncRunStore is a mock of SyncRunStore interface.
type MockSyncRunStore struct {
	ctrl     *gomock.Controller
	recorder *MockSyncRunStoreMockRecorder
	isgomock struct{}
}

// MockSyncRunStoreMockRecorder is the mock recorder for MockSyncRunStore.
type MockSyncRunStoreMockRecorder struct {
	mock *MockSyncRunStore
}

// NewMockSyncRunStore creates a new mock instance.
func NewMockSyncRunStore(ctrl *gomock.Controller) *MockSyncRunStore {
	mock := &MockSyncRunStore{ctrl: ctrl}
	mock.recorder = &MockSyncRunStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSyncRunStore) EXPECT() *MockSyncRunStoreMockRecorder {
	return m.recorder
}

// Complete mocks base method.
func (m *MockSyncRunStore) Complete(ctx context.Context, run *domain.SyncRun) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, run)
	ret0, _ := ret[0].(error)
	return ret0
}

// Complete indicates an expected call of Complete.
func (mr *MockSyncRunStoreMockRecorder) Complete(ctx, run any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockSyncRunStore)(nil).Complete), ctx, run)
}

// Create mocks base method.
func (m *MockSyncRunStore) Create(ctx context.Context, syncType string) (*domain.SyncRun, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, syncType)
	ret0, _ := ret[0].(*domain.SyncRun)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockSyncRunStoreMockRecorder) Create(ctx, syncType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSyncRunStore)(nil).Create), ctx, syncType)
}

// LastSuccessful mocks base method.
func (m *MockSyncRunStore) LastSuccessful(ctx context.Context, syncType string) (*domain.SyncRun, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastSuccessful", ctx, syncType)
	ret0, _ := ret[0].(*domain.SyncRun)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastSuccessful indicates an expected call of LastSuccessful.
func (mr *MockSyncRunStoreMockRecorder) LastSuccessful(ctx, syncType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastSuccessful", reflect.TypeOf((*MockSyncRunStore)(nil).LastSuccessful), ctx, syncType)
}

// SaveProgress mocks base method.
func (m *MockSyncRunStore) SaveProgress(ctx context.Context, run *domain.SyncRun) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveProgress", ctx, run)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveProgress indicates an expected call of SaveProgress.
func (mr *MockSyncRunStoreMockRecorder) SaveProgress(ctx, run any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveProgress", reflect.TypeOf((*MockSyncRunStore)(nil).SaveProgress), ctx, run)
}

// MockFetcher is a mock of Fetcher interface.
type MockFetcher struct {
	ctrl     *gomock.Controller
	recorder *MockFetcherMockRecorder
	isgomock struct{}
}

// MockFetcherMockRecorder is the mock recorder for MockFetcher.
type MockFetcherMockRecorder struct {
	mock *MockFetcher
}

// NewMockFetcher creates a new mock instance.
func NewMockFetcher(ctrl *gomock.Controller) *MockFetcher {
	mock := &MockFetcher{ctrl: ctrl}
	mock.recorder = &MockFetcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFetcher) EXPECT() *MockFetcherMockRecorder {
	return m.recorder
}

// FetchAll mocks base method.
func (m *MockFetcher) FetchAll(ctx context.Context) ([]airtable.Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchAll", ctx)
	ret0, _ := ret[0].([]airtable.Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchAll indicates an expected call of FetchAll.
func (mr *MockFetcherMockRecorder) FetchAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchAll", reflect.TypeOf((*MockFetcher)(nil).FetchAll), ctx)
}

// MockTransactionManager is a mock of TransactionManager interface.
type MockTransactionManager struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionManagerMockRecorder
	isgomock struct{}
}

// MockTransactionManagerMockRecorder is the mock recorder for MockTransactionManager.
type MockTransactionManagerMockRecorder struct {
	mock *MockTransactionManager
}

// NewMockTransactionManager creates a new mock instance.
func NewMockTransactionManager(ctrl *gomock.Controller) *MockTransactionManager {
	mock := &MockTransactionManager{ctrl: ctrl}
	mock.recorder = &MockTransactionManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionManager) EXPECT() *MockTransactionManagerMockRecorder {
	return m.recorder
}

// WithTransaction mocks base method.
func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTransaction", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTransaction indicates an expected call of WithTransaction.
func (mr *MockTransactionManagerMockRecorder) WithTransaction(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTransaction", reflect.TypeOf((*MockTransactionManager)(nil).WithTransaction), ctx, fn)
}

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
	isgomock struct{}
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockPublisher) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockPublisherMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockPublisher)(nil).Close))
}

// PublishRun mocks base method.
func (m *MockPublisher) PublishRun(ctx context.Context, run *domain.SyncRun) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishRun", ctx, run)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishRun indicates an expected call of PublishRun.
func (mr *MockPublisherMockRecorder) PublishRun(ctx, run any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishRun", reflect.TypeOf((*MockPublisher)(nil).PublishRun), ctx, run)
}
