package testutil

import (
	"context"
	"fmt"
)

// MockGetter mocks the blocking HTTP GET used by the search and audio clients
type MockGetter struct {
	Responses map[string][]byte
	Errors    map[string]error
	Calls     []string
}

// NewMockGetter creates an empty MockGetter
func NewMockGetter() *MockGetter {
	return &MockGetter{
		Responses: make(map[string][]byte),
		Errors:    make(map[string]error),
	}
}

// Get mocks an HTTP GET request
func (m *MockGetter) Get(ctx context.Context, url string) ([]byte, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("GET %s", url))

	if err, ok := m.Errors[url]; ok {
		return nil, err
	}

	if body, ok := m.Responses[url]; ok {
		return body, nil
	}

	return nil, fmt.Errorf("unexpected request: %s", url)
}

// AudioData returns a few bytes of a fake MP3 frame header
func AudioData() []byte {
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}
