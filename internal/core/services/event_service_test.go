package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/daybookhq/daybook-backend/internal/apperrors"
	"github.com/daybookhq/daybook-backend/internal/core/domain"
	portssvc "github.com/daybookhq/daybook-backend/internal/core/ports/services"
	"github.com/daybookhq/daybook-backend/internal/core/services"
	"github.com/daybookhq/daybook-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, userID string, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, userID, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) FindEventsByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	args := m.Called(ctx, userID)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventStatus(ctx context.Context, userID string, eventID string, status domain.EventStatus, updatedAt time.Time) error {
	args := m.Called(ctx, userID, eventID, status, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo *MockEventRepository
	service       portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.service = services.NewEventService(suite.mockEventRepo)
}

func validCreateRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title: "Team Dinner",
		Date:  "2025-06-20",
		Time:  "19:00",
		Venue: "Luigi's",
	}
}

// --- ListEvents Tests ---
func (suite *EventServiceTestSuite) TestListEvents_DisplayOrder() {
	ctx := context.Background()
	userID := uuid.NewString()

	stored := []domain.Event{
		{EventID: "done", UserID: userID, Title: "Done", EventDate: "2025-01-01", EventTime: "08:00", Status: domain.EventStatusCompleted},
		{EventID: "late", UserID: userID, Title: "Late", EventDate: "2025-12-01", EventTime: "10:00", Status: domain.EventStatusPending},
		{EventID: "early", UserID: userID, Title: "Early", EventDate: "2025-02-01", EventTime: "10:00", Status: domain.EventStatusPending},
	}
	suite.mockEventRepo.On("FindEventsByUser", ctx, userID).Return(stored, nil).Once()

	events, err := suite.service.ListEvents(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	// Completed events sort last even though "done" has the earliest date
	suite.Equal("early", events[0].EventID)
	suite.Equal("late", events[1].EventID)
	suite.Equal("done", events[2].EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_AppliesSearchQuery() {
	ctx := context.Background()
	userID := uuid.NewString()

	stored := []domain.Event{
		{EventID: "a", UserID: userID, Title: "Dentist", EventDate: "2025-02-01", EventTime: "10:00", Status: domain.EventStatusPending},
		{EventID: "b", UserID: userID, Title: "Lunch", Venue: "Dental district", EventDate: "2025-03-01", EventTime: "12:00", Status: domain.EventStatusPending},
		{EventID: "c", UserID: userID, Title: "Gym", EventDate: "2025-04-01", EventTime: "18:00", Status: domain.EventStatusPending},
	}
	suite.mockEventRepo.On("FindEventsByUser", ctx, userID).Return(stored, nil).Once()

	events, err := suite.service.ListEvents(ctx, userID, "dent")

	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal("a", events[0].EventID)
	suite.Equal("b", events[1].EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockEventRepo.On("FindEventsByUser", ctx, userID).Return(nil, assert.AnError).Once()

	events, err := suite.service.ListEvents(ctx, userID, "")

	suite.Require().Error(err)
	suite.Nil(events)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- CreateEvent Tests ---
func (suite *EventServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validCreateRequest()
	req.Requirements = []string{"cake", "candles", "cake"}

	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.UserID == userID &&
			e.Title == req.Title &&
			e.Status == domain.EventStatusPending &&
			e.Priority == domain.PriorityMedium &&
			len(e.Requirements) == 2
	})).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(event)
	suite.NotEmpty(event.EventID)
	suite.Equal(domain.EventStatusPending, event.Status)
	suite.Equal(domain.PriorityMedium, event.Priority)
	suite.Equal([]string{"cake", "candles"}, event.Requirements)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_TrimsWhitespace() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validCreateRequest()
	req.Title = "  Team Dinner  "
	req.Venue = "\tLuigi's \n"

	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Title == "Team Dinner" && e.Venue == "Luigi's"
	})).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal("Team Dinner", event.Title)
	suite.Equal("Luigi's", event.Venue)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_BlankTitle() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Title = "   "

	event, err := suite.service.CreateEvent(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(event)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *EventServiceTestSuite) TestCreateEvent_BadDate() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Date = "2025-13-40"

	event, err := suite.service.CreateEvent(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(event)
}

func (suite *EventServiceTestSuite) TestCreateEvent_SaveError() {
	// The write goes to the store first; on failure no event is returned so
	// nothing unsaved ever reaches the caller.
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(assert.AnError).Once()

	event, err := suite.service.CreateEvent(ctx, userID, validCreateRequest())

	suite.Require().Error(err)
	suite.Nil(event)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- UpdateEvent Tests ---
func (suite *EventServiceTestSuite) TestUpdateEvent_Reschedule() {
	ctx := context.Background()
	userID := uuid.NewString()
	eventID := uuid.NewString()

	existing := &domain.Event{
		EventID:   eventID,
		UserID:    userID,
		Title:     "Team Dinner",
		EventDate: "2025-06-20",
		EventTime: "19:00",
		Venue:     "Luigi's",
		Status:    domain.EventStatusPending,
		Priority:  domain.PriorityHigh,
	}
	suite.mockEventRepo.On("FindEventByID", ctx, userID, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.EventID == eventID &&
			e.EventDate == "2025-07-01" &&
			e.Status == domain.EventStatusRescheduled
	})).Return(nil).Once()

	req := dto.UpdateEventRequest{
		Title:    "Team Dinner",
		Date:     "2025-07-01",
		Time:     "20:00",
		Venue:    "Luigi's",
		Priority: "high",
		Status:   "rescheduled",
	}
	event, err := suite.service.UpdateEvent(ctx, userID, eventID, req)

	suite.Require().NoError(err)
	suite.Equal("2025-07-01", event.EventDate)
	suite.Equal("20:00", event.EventTime)
	suite.Equal(domain.EventStatusRescheduled, event.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_TrimsWhitespace() {
	ctx := context.Background()
	userID := uuid.NewString()
	eventID := uuid.NewString()

	existing := &domain.Event{
		EventID:   eventID,
		UserID:    userID,
		Title:     "Team Dinner",
		EventDate: "2025-06-20",
		EventTime: "19:00",
		Venue:     "Luigi's",
		Status:    domain.EventStatusPending,
		Priority:  domain.PriorityMedium,
	}
	suite.mockEventRepo.On("FindEventByID", ctx, userID, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Title == "Team Brunch" && e.Venue == "The Deck"
	})).Return(nil).Once()

	req := dto.UpdateEventRequest{
		Title: " Team Brunch ",
		Date:  "2025-06-21",
		Time:  "11:00",
		Venue: " The Deck ",
	}
	event, err := suite.service.UpdateEvent(ctx, userID, eventID, req)

	suite.Require().NoError(err)
	suite.Equal("Team Brunch", event.Title)
	suite.Equal("The Deck", event.Venue)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, userID, eventID).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.UpdateEventRequest{Title: "x", Date: "2025-07-01", Time: "20:00", Venue: "y"}
	event, err := suite.service.UpdateEvent(ctx, userID, eventID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(event)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- MarkEventDone Tests ---
func (suite *EventServiceTestSuite) TestMarkEventDone_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	eventID := uuid.NewString()

	completed := &domain.Event{
		EventID: eventID,
		UserID:  userID,
		Title:   "Team Dinner",
		Status:  domain.EventStatusCompleted,
	}
	suite.mockEventRepo.On("UpdateEventStatus", ctx, userID, eventID, domain.EventStatusCompleted, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, userID, eventID).Return(completed, nil).Once()

	event, err := suite.service.MarkEventDone(ctx, userID, eventID)

	suite.Require().NoError(err)
	suite.Equal(domain.EventStatusCompleted, event.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestMarkEventDone_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("UpdateEventStatus", ctx, userID, eventID, domain.EventStatusCompleted, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	event, err := suite.service.MarkEventDone(ctx, userID, eventID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(event)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
