package factory

import (
	"time"

	"github.com/nikrus/rpsduel-go/internal/dependencies/mocks"
	"github.com/nikrus/rpsduel-go/internal/notify"
	"github.com/nikrus/rpsduel-go/internal/services/manual"
	"github.com/nikrus/rpsduel-go/internal/storage/memory"
	"github.com/nikrus/rpsduel-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	logger := testutil.NopLogger()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	notifier := notify.NewLogNotifier(logger)

	app := newWithDependencies(store, mockClock, notifier, manual.DefaultDuoNames(), logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
