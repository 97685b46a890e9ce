package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/delivery/http/helpers"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID = "6f1c3c1e-3a7e-4c55-9d2b-0a3f6c1d2e4f"
	testOwnerID = "b2f8a1d4-1111-4c55-9d2b-0a3f6c1d2e4f"
	testUserID  = "c3e9b2e5-2222-4c55-9d2b-0a3f6c1d2e4f"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body helpers.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Message
}
