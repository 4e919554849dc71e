package rm690b0

import "fmt"

// InterfaceError wraps an error returned by the controller interface. The
// driver never retries a failed transaction; after a flush error the
// controller's addressing window must be considered undefined.
type InterfaceError struct {
	Err error
}

func (e *InterfaceError) Error() string {
	return fmt.Sprintf("rm690b0: interface error: %v", e.Err)
}

func (e *InterfaceError) Unwrap() error {
	return e.Err
}

// ResetError wraps an error returned by the reset line. It can only occur
// during construction or an explicit hard reset.
type ResetError struct {
	Err error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("rm690b0: reset error: %v", e.Err)
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

// InvalidConfigurationError reports caller-supplied bad geometry. It is
// raised before any transaction is issued, so the controller state is
// unchanged.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "rm690b0: invalid configuration: " + e.Reason
}

func interfaceError(err error) error {
	if err == nil {
		return nil
	}
	return &InterfaceError{Err: err}
}

func resetError(err error) error {
	if err == nil {
		return nil
	}
	return &ResetError{Err: err}
}
