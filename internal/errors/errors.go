package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

// ItemUnavailableError is a business-rule rejection: the referenced menu item
// exists but is currently not orderable.
type ItemUnavailableError struct {
	Message  string
	ItemName string
}

func (e *ItemUnavailableError) Error() string {
	return e.Message
}

func NewItemUnavailableError(itemName string) *ItemUnavailableError {
	return &ItemUnavailableError{
		Message:  fmt.Sprintf("menu item %q is not available", itemName),
		ItemName: itemName,
	}
}

func IsItemUnavailableError(err error) (*ItemUnavailableError, bool) {
	if iu, ok := err.(*ItemUnavailableError); ok {
		return iu, true
	}
	return nil, false
}

type InvalidStatusError struct {
	Message string
	Status  string
}

func (e *InvalidStatusError) Error() string {
	return e.Message
}

func NewInvalidStatusError(message string, status string) *InvalidStatusError {
	return &InvalidStatusError{Message: message, Status: status}
}

func IsInvalidStatusError(err error) (*InvalidStatusError, bool) {
	if is, ok := err.(*InvalidStatusError); ok {
		return is, true
	}
	return nil, false
}

type InvalidPaymentStatusError struct {
	Message string
	Status  string
}

func (e *InvalidPaymentStatusError) Error() string {
	return e.Message
}

func NewInvalidPaymentStatusError(message string, status string) *InvalidPaymentStatusError {
	return &InvalidPaymentStatusError{Message: message, Status: status}
}

func IsInvalidPaymentStatusError(err error) (*InvalidPaymentStatusError, bool) {
	if ip, ok := err.(*InvalidPaymentStatusError); ok {
		return ip, true
	}
	return nil, false
}

type InvalidFileTypeError struct {
	Message     string
	ContentType string
}

func (e *InvalidFileTypeError) Error() string {
	return e.Message
}

func NewInvalidFileTypeError(contentType string) *InvalidFileTypeError {
	return &InvalidFileTypeError{
		Message:     fmt.Sprintf("invalid file type %q", contentType),
		ContentType: contentType,
	}
}

func IsInvalidFileTypeError(err error) (*InvalidFileTypeError, bool) {
	if ift, ok := err.(*InvalidFileTypeError); ok {
		return ift, true
	}
	return nil, false
}

type FileTooLargeError struct {
	Message string
	Size    int64
	Limit   int64
}

func (e *FileTooLargeError) Error() string {
	return e.Message
}

func NewFileTooLargeError(size, limit int64) *FileTooLargeError {
	return &FileTooLargeError{
		Message: fmt.Sprintf("file of %d bytes exceeds the %d byte limit", size, limit),
		Size:    size,
		Limit:   limit,
	}
}

func IsFileTooLargeError(err error) (*FileTooLargeError, bool) {
	if ftl, ok := err.(*FileTooLargeError); ok {
		return ftl, true
	}
	return nil, false
}

// UnsupportedFormatError means the uploaded bytes could not be decoded as an
// image, regardless of the declared content type.
type UnsupportedFormatError struct {
	Message string
	Cause   error
}

func (e *UnsupportedFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Cause
}

func NewUnsupportedFormatError(cause error) *UnsupportedFormatError {
	return &UnsupportedFormatError{Message: "unsupported image format", Cause: cause}
}

func IsUnsupportedFormatError(err error) (*UnsupportedFormatError, bool) {
	if uf, ok := err.(*UnsupportedFormatError); ok {
		return uf, true
	}
	return nil, false
}

// StorageError marks a failed record-store or object-store operation. It is
// distinct from application errors because an infrastructure retry may help.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{Message: message, Cause: cause}
}

func IsStorageError(err error) (*StorageError, bool) {
	if se, ok := err.(*StorageError); ok {
		return se, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
