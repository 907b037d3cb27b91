package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidLoanID           = 4001
	CodeInvalidLockOwner        = 4002
	CodeInvalidBusinessDate     = 4003
	CodeInvalidExecutionContext = 4004
	CodeDuplicateLock           = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeInvalidChunkSize   = 5001
	CodeStoreRead          = 5031
	CodeStoreWrite         = 5032
	CodeDatabaseConnection = 5033
)

// Store operations reported by StoreError
const (
	OpRead  = "read"
	OpWrite = "write"
)

// Base error types
var (
	// ErrStoreRead is returned when reading existing locks from the store fails
	ErrStoreRead = errors.New("loan account lock store read failed")

	// ErrStoreWrite is returned when writing new locks to the store fails
	ErrStoreWrite = errors.New("loan account lock store write failed")

	// ErrInvalidChunkSize is returned when the parameter-count limit is missing or not positive
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidLockOwner is returned when a lock owner is not one of the known stages
	ErrInvalidLockOwner = errors.New("invalid lock owner")

	// ErrInvalidLoanID is returned when a loan ID is not a positive integer
	ErrInvalidLoanID = errors.New("loan ID must be positive")

	// ErrInvalidBusinessDate is returned when no COB business date is available
	ErrInvalidBusinessDate = errors.New("COB business date is missing")

	// ErrInvalidExecutionContext is returned when the step execution context lacks required values
	ErrInvalidExecutionContext = errors.New("invalid step execution context")

	// ErrDuplicateLock is returned when a (loan, owner) lock already exists in the store
	ErrDuplicateLock = errors.New("loan account is already locked by this owner")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidLoanID):
		return CodeInvalidLoanID
	case errors.Is(err, ErrInvalidLockOwner):
		return CodeInvalidLockOwner
	case errors.Is(err, ErrInvalidBusinessDate):
		return CodeInvalidBusinessDate
	case errors.Is(err, ErrInvalidExecutionContext):
		return CodeInvalidExecutionContext
	case errors.Is(err, ErrDuplicateLock):
		return CodeDuplicateLock
	case errors.Is(err, ErrInvalidChunkSize):
		return CodeInvalidChunkSize
	case errors.Is(err, ErrStoreRead):
		return CodeStoreRead
	case errors.Is(err, ErrStoreWrite):
		return CodeStoreWrite
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// StoreError describes a failed bounded read or write against the lock store.
// For writes, Committed counts the rows of earlier chunks that are already durable.
type StoreError struct {
	Op         string
	Chunk      int
	ChunkCount int
	Committed  int
	Err        error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("loan account lock store %s failed on chunk %d/%d (%d rows committed): %v",
		e.Op, e.Chunk+1, e.ChunkCount, e.Committed, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the sentinel matching the failed operation
func (e *StoreError) Is(target error) bool {
	switch e.Op {
	case OpRead:
		return target == ErrStoreRead
	case OpWrite:
		return target == ErrStoreWrite
	default:
		return false
	}
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "store_error",
		"operation":   e.Op,
		"chunk":       e.Chunk,
		"chunk_count": e.ChunkCount,
		"committed":   e.Committed,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e),
	}
}

// NewStoreReadError creates a store error for a failed read chunk
func NewStoreReadError(chunk, chunkCount int, err error) error {
	return &StoreError{
		Op:         OpRead,
		Chunk:      chunk,
		ChunkCount: chunkCount,
		Err:        err,
	}
}

// NewStoreWriteError creates a store error for a failed write chunk
func NewStoreWriteError(chunk, chunkCount, committed int, err error) error {
	return &StoreError{
		Op:         OpWrite,
		Chunk:      chunk,
		ChunkCount: chunkCount,
		Committed:  committed,
		Err:        err,
	}
}

// ExecutionContextError describes a missing or malformed execution context entry
type ExecutionContextError struct {
	Key    string
	Reason string
}

// Error implements the error interface
func (e *ExecutionContextError) Error() string {
	return fmt.Sprintf("invalid step execution context: %s: %s", e.Key, e.Reason)
}

// Is checks if the target error is an ErrInvalidExecutionContext
func (e *ExecutionContextError) Is(target error) bool {
	return target == ErrInvalidExecutionContext
}

// NewExecutionContextError creates a new execution context error
func NewExecutionContextError(key, reason string) error {
	return &ExecutionContextError{Key: key, Reason: reason}
}

// IsStoreError checks if the error came from the lock store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreRead) || errors.Is(err, ErrStoreWrite)
}

// IsConfigurationError checks if the error is caused by invalid configuration
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidChunkSize)
}

// CommittedRows returns how many rows were durably written before a write fault
func CommittedRows(err error) int {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Op == OpWrite {
		return storeErr.Committed
	}
	return 0
}
