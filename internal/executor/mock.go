// internal/executor/mock.go
package executor

import (
	"context"
)

type MockCall struct {
	Name string
	Args []string
}

type MockExecutor struct {
	Calls     []MockCall
	RunErrors map[string]error
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		RunErrors: make(map[string]error),
	}
}

func (m *MockExecutor) Run(_ context.Context, name string, args ...string) error {
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args})
	if err, ok := m.RunErrors[name]; ok {
		return err
	}
	return nil
}
