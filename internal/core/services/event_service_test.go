package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/cache"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/core/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Fake clock shared by cache and services ---

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByType(ctx context.Context, eventType string) ([]domain.Event, error) {
	args := m.Called(ctx, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventStatuses(ctx context.Context) ([]domain.EventStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventStatus), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock CashbookRepository ---

type MockCashbookRepository struct {
	mock.Mock
}

func (m *MockCashbookRepository) FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *MockCashbookRepository) ListCashbooks(ctx context.Context) ([]domain.Cashbook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *MockCashbookRepository) SaveCashbook(ctx context.Context, cashbook domain.Cashbook) error {
	args := m.Called(ctx, cashbook)
	return args.Error(0)
}

func (m *MockCashbookRepository) UpdateCashbookTotalsTx(ctx context.Context, tx pgx.Tx, cashbookID string, fundsRaised, expenses, remainingBalance decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, tx, cashbookID, fundsRaised, expenses, remainingBalance, updatedAt)
	return args.Error(0)
}

func (m *MockCashbookRepository) LockCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) error {
	args := m.Called(ctx, tx, cashbookID)
	return args.Error(0)
}

func (m *MockCashbookRepository) DeleteCashbook(ctx context.Context, cashbookID string) error {
	args := m.Called(ctx, cashbookID)
	return args.Error(0)
}

func (m *MockCashbookRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCashbookRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCashbookRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---

type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo    *MockEventRepository
	mockCashbookRepo *MockCashbookRepository
	clock            *fakeClock
	cacheStore       *cache.Store
	service          portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockCashbookRepo = new(MockCashbookRepository)
	suite.clock = newFakeClock()
	suite.cacheStore = cache.NewStore(2*time.Minute, suite.clock.Now)
	suite.service = services.NewEventService(
		suite.mockEventRepo,
		suite.mockCashbookRepo,
		suite.cacheStore,
		services.WithEventClock(suite.clock.Now),
	)
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{EventID: "e2", Title: "Tech Fest", Status: domain.StatusOngoing, CashbookID: "cb-tech-fest", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{EventID: "e1", Title: "Cultural Night", Status: domain.StatusCompleted, CashbookID: "cb-cultural-night", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

// --- Test Cases ---

func (suite *EventServiceTestSuite) TestListEvents_SecondCallWithinTTLServedFromCache() {
	ctx := context.Background()
	events := sampleEvents()

	suite.mockEventRepo.On("ListEvents", ctx).Return(events, nil).Once()

	first, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Equal(events, first)

	suite.clock.Advance(90 * time.Second)

	second, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Equal(events, second)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_RefetchesAfterTTL() {
	ctx := context.Background()
	events := sampleEvents()

	suite.mockEventRepo.On("ListEvents", ctx).Return(events, nil).Twice()

	_, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	suite.clock.Advance(2 * time.Minute)

	_, err = suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_EmptyCollectionIsCached() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListEvents", ctx).Return([]domain.Event{}, nil).Once()

	first, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Empty(first)

	second, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Empty(second)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_FetchErrorLeavesCacheEmpty() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListEvents", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEventRepo.On("ListEvents", ctx).Return(sampleEvents(), nil).Once()

	_, err := suite.service.ListEvents(ctx)
	suite.Require().Error(err)

	events, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Len(events, 2)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestGetEventByID_ServedFromFreshCache() {
	ctx := context.Background()
	events := sampleEvents()

	suite.mockEventRepo.On("ListEvents", ctx).Return(events, nil).Once()

	_, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	event, err := suite.service.GetEventByID(ctx, "e1")
	suite.Require().NoError(err)
	suite.Equal("Cultural Night", event.Title)

	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventByID", ctx, "e1")
}

func (suite *EventServiceTestSuite) TestGetEventByID_FallsBackToSingleFetch() {
	ctx := context.Background()
	expected := &domain.Event{EventID: "e1", Title: "Cultural Night"}

	suite.mockEventRepo.On("FindEventByID", ctx, "e1").Return(expected, nil).Once()

	event, err := suite.service.GetEventByID(ctx, "e1")
	suite.Require().NoError(err)
	suite.Equal(expected.Title, event.Title)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestGetEventByID_NotFound() {
	ctx := context.Background()

	suite.mockEventRepo.On("FindEventByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.GetEventByID(ctx, "missing")
	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEventsByStatus_BypassesCache() {
	ctx := context.Background()
	events := sampleEvents()
	ongoing := events[:1]

	suite.mockEventRepo.On("ListEvents", ctx).Return(events, nil).Once()
	suite.mockEventRepo.On("ListEventsByStatus", ctx, domain.StatusOngoing).Return(ongoing, nil).Once()

	_, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	filtered, err := suite.service.ListEventsByStatus(ctx, domain.StatusOngoing)
	suite.Require().NoError(err)
	suite.Len(filtered, 1)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEventsWithFunds_FetchesBothAndPrimesCache() {
	ctx := context.Background()
	events := sampleEvents()
	cashbooks := []domain.Cashbook{{CashbookID: "cb-tech-fest"}}

	suite.mockEventRepo.On("ListEvents", mock.Anything).Return(events, nil).Once()
	suite.mockCashbookRepo.On("ListCashbooks", mock.Anything).Return(cashbooks, nil).Once()

	result, err := suite.service.ListEventsWithFunds(ctx)
	suite.Require().NoError(err)
	suite.Len(result.Events, 2)
	suite.Len(result.Cashbooks, 1)

	// Both snapshots primed, so the second composed read hits the cache.
	again, err := suite.service.ListEventsWithFunds(ctx)
	suite.Require().NoError(err)
	suite.Equal(result.Events, again.Events)

	cached, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)
	suite.Equal(events, cached)

	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_InvalidatesCache() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListEvents", ctx).Return(sampleEvents(), nil).Twice()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Title == "Sports Meet" && e.CashbookID == "cb-sports-meet" && e.EventID != ""
	})).Return(nil).Once()

	_, err := suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	req := dto.CreateEventRequest{
		Title:      "Sports Meet",
		Type:       "Sports",
		Status:     "Upcoming",
		Date:       "2025-04-12",
		CashbookID: "cb-sports-meet",
	}
	event, err := suite.service.CreateEvent(ctx, req)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusUpcoming, event.Status)
	suite.Equal(suite.clock.Now(), event.CreatedAt)

	// Write invalidated the snapshot; the next listing hits the repository.
	_, err = suite.service.ListEvents(ctx)
	suite.Require().NoError(err)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_InvalidDate() {
	ctx := context.Background()

	req := dto.CreateEventRequest{
		Title:      "Bad Date",
		Type:       "Misc",
		Status:     "Upcoming",
		Date:       "12-04-2025",
		CashbookID: "cb-misc",
	}
	event, err := suite.service.CreateEvent(ctx, req)
	suite.Require().Error(err)
	suite.Nil(event)

	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Event{
		EventID:    "e1",
		Title:      "Cultural Night",
		Type:       "Cultural",
		Status:     domain.StatusOngoing,
		CashbookID: "cb-cultural-night",
	}
	newStatus := "Completed"

	suite.mockEventRepo.On("FindEventByID", ctx, "e1").Return(existing, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Status == domain.StatusCompleted && e.Title == "Cultural Night" && e.LastUpdatedAt.Equal(suite.clock.Now())
	})).Return(nil).Once()

	event, err := suite.service.UpdateEvent(ctx, "e1", dto.UpdateEventRequest{Status: &newStatus})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, event.Status)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()

	suite.mockEventRepo.On("DeleteEvent", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, "missing")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockEventRepo.AssertExpectations(suite.T())
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
