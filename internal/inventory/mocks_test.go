package inventory

import (
	"github.com/stretchr/testify/mock"
)

// MockRecorder implements Recorder for testing
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordRun(days int) {
	m.Called(days)
}

func (m *MockRecorder) RecordAdvance(category string, qualityDelta int) {
	m.Called(category, qualityDelta)
}

func (m *MockRecorder) RecordViolation(category string) {
	m.Called(category)
}

func (m *MockRecorder) SetTracked(n int) {
	m.Called(n)
}
