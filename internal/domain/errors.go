package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr is returned when a mutation contradicts the current stored state.
type ConflictErr struct {
	domainErr
}

// NewConflictErr creates a new ConflictErr with the given message.
func NewConflictErr(message string) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
	}
}

// UnavailableErr is returned when a backing store or provider cannot be reached.
type UnavailableErr struct {
	domainErr
	cause error
}

// NewUnavailableErr creates a new UnavailableErr wrapping the underlying cause.
func NewUnavailableErr(message string, cause error) *UnavailableErr {
	return &UnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *UnavailableErr) Unwrap() error {
	return e.cause
}

// UnknownToolErr is returned when the model requests a tool that is not registered.
type UnknownToolErr struct {
	domainErr
	Name string
}

// NewUnknownToolErr creates a new UnknownToolErr for the given tool name.
func NewUnknownToolErr(name string) *UnknownToolErr {
	return &UnknownToolErr{
		domainErr: domainErr{message: "unknown tool: " + name},
		Name:      name,
	}
}

// InvalidArgumentsErr is returned when tool arguments do not satisfy the tool input schema.
type InvalidArgumentsErr struct {
	domainErr
}

// NewInvalidArgumentsErr creates a new InvalidArgumentsErr with the given message.
func NewInvalidArgumentsErr(message string) *InvalidArgumentsErr {
	return &InvalidArgumentsErr{
		domainErr: domainErr{message: message},
	}
}
