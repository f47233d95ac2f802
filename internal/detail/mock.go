package detail

import "github.com/stretchr/testify/mock"

// MockFactory is a mock implementation of Factory for testing.
type MockFactory struct {
	mock.Mock
}

// Create provides a mock function with given fields: req.
func (_m *MockFactory) Create(req Request) (Window, error) {
	ret := _m.Called(req)

	var r0 Window
	if rf, ok := ret.Get(0).(func(Request) Window); ok {
		r0 = rf(req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(Window)
	}

	return r0, ret.Error(1)
}

// MockWindow is a mock implementation of Window for testing.
type MockWindow struct {
	mock.Mock
}

// ID provides a mock function with given fields: .
func (_m *MockWindow) ID() string {
	ret := _m.Called()
	return ret.String(0)
}

// Dispose provides a mock function with given fields: .
func (_m *MockWindow) Dispose() error {
	ret := _m.Called()
	return ret.Error(0)
}
