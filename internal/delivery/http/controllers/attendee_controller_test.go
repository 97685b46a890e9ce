package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	joinErr     error
	lastEventID string
	lastUserID  string
	listResult  []*domain.Attendee
	listErr     error
}

func (f *fakeAttendeeService) JoinEvent(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
	f.lastEventID, f.lastUserID = eventID, userID
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	return &domain.Attendee{ID: "att-1", EventID: eventID, UserID: userID}, nil
}

func (f *fakeAttendeeService) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	f.lastEventID = eventID
	return f.listResult, f.listErr
}

func TestAttendeeController_JoinEvent(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		svc        *fakeAttendeeService
		wantStatus int
		wantMsg    string
	}{
		{name: "joined", eventID: testEventID, svc: &fakeAttendeeService{}, wantStatus: http.StatusOK, wantMsg: "Successfully joined the event"},
		{name: "already joined", eventID: testEventID, svc: &fakeAttendeeService{joinErr: domain.ErrAlreadyJoined}, wantStatus: http.StatusBadRequest, wantMsg: "Already joined this event"},
		{name: "event missing", eventID: testEventID, svc: &fakeAttendeeService{joinErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound, wantMsg: "Event not found"},
		{name: "malformed id", eventID: "123", svc: &fakeAttendeeService{}, wantStatus: http.StatusNotFound, wantMsg: "Event not found"},
		{name: "store error", eventID: testEventID, svc: &fakeAttendeeService{joinErr: errors.New("db down")}, wantStatus: http.StatusInternalServerError, wantMsg: "Error joining event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/events/"+tt.eventID+"/join", nil)
			req.SetPathValue("eventID", tt.eventID)
			req = authed(req, testUserID)
			rr := httptest.NewRecorder()

			NewAttendeeController(testLogger, tt.svc).JoinEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
				assert.Equal(t, testEventID, tt.svc.lastEventID)
				assert.Equal(t, testUserID, tt.svc.lastUserID)
				return
			}
			assert.Equal(t, tt.wantMsg, decodeError(t, rr).Message)
		})
	}
}

func TestAttendeeController_JoinEvent_unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/join", nil)
	req.SetPathValue("eventID", testEventID)
	rr := httptest.NewRecorder()

	NewAttendeeController(testLogger, &fakeAttendeeService{}).JoinEvent(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAttendeeController_ListAttendees(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendeeService{listResult: []*domain.Attendee{{ID: "att-1", UserID: testUserID, UserName: "Bo", EventID: testEventID}}}
		req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/attendees", nil)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()

		NewAttendeeController(testLogger, svc).ListAttendees(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []*domain.Attendee
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Bo", got[0].UserName)
	})

	t.Run("event missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/attendees", nil)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()

		NewAttendeeController(testLogger, &fakeAttendeeService{listErr: domain.ErrNotFound}).ListAttendees(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
