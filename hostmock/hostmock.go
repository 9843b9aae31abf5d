package hostmock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// Mock simulates a host call interface with validation, configurable
// responses, and call accounting.
type Mock struct {
	config Config

	// Calls counts how many times HostCall has been invoked, including
	// calls that failed validation. Useful for asserting that a component
	// made no host call at all.
	Calls int

	// LastPayload holds the payload of the most recent HostCall.
	LastPayload []byte
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{config: config}, nil
}

// HostCall simulates a host call, validating inputs and returning a response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.Calls++
	m.LastPayload = payload

	// Return user-defined error if Fail is set
	if m.config.Fail && m.config.Error != nil {
		return nil, m.config.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.config.Fail {
		return nil, ErrOperationFailed
	}

	// Validate namespace
	if m.config.ExpectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.config.ExpectedNamespace,
			namespace,
		)
	}

	// Validate capability
	if m.config.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.config.ExpectedCapability,
			capability,
		)
	}

	// Validate function
	if m.config.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.config.ExpectedFunction, function)
	}

	// Validate payload using user-defined validator, if provided
	if m.config.PayloadValidator != nil {
		if err := m.config.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	// Return user-defined response if provided
	if m.config.Response != nil {
		return m.config.Response(), nil
	}

	// Default to no response
	return nil, nil
}
