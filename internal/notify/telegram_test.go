package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/testutil"
)

type TelegramSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTelegramSuite(t *testing.T) {
	suite.Run(t, new(TelegramSuite))
}

func (s *TelegramSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TelegramSuite) TestSendSucceeds() {
	var gotPath string
	var gotBody sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	}))
	defer server.Close()

	notifier := NewTelegramNotifierWithBaseURL("test-token", server.URL)
	err := notifier.Send(s.ctx, model.NotificationRequest{ChatID: "chat-1", Text: "hello"})
	s.Require().NoError(err)

	s.Equal("/bottest-token/sendMessage", gotPath)
	s.Equal("chat-1", gotBody.ChatID)
	s.Equal("hello", gotBody.Text)
}

func (s *TelegramSuite) TestSendReportsAPIFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "chat not found"})
	}))
	defer server.Close()

	notifier := NewTelegramNotifierWithBaseURL("test-token", server.URL)
	err := notifier.Send(s.ctx, model.NotificationRequest{ChatID: "bad", Text: "hello"})

	s.Require().Error(err)
	s.Contains(err.Error(), "chat not found")
}

func (s *TelegramSuite) TestSendReportsNonJSONResponse() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream error"))
	}))
	defer server.Close()

	notifier := NewTelegramNotifierWithBaseURL("test-token", server.URL)
	err := notifier.Send(s.ctx, model.NotificationRequest{ChatID: "chat-1", Text: "hello"})

	s.Require().Error(err)
	s.Contains(err.Error(), "502")
}

// failingNotifier always errors, for Dispatch behavior tests
type failingNotifier struct {
	calls int
}

func (n *failingNotifier) Send(ctx context.Context, req model.NotificationRequest) error {
	n.calls++
	return errors.New("boom")
}

func (s *TelegramSuite) TestDispatchContinuesPastFailures() {
	notifier := &failingNotifier{}

	Dispatch(s.ctx, notifier, testutil.NopLogger(), []model.NotificationRequest{
		{ChatID: "chat-1", Text: "a"},
		{ChatID: "chat-2", Text: "b"},
	})

	s.Equal(2, notifier.calls)
}
