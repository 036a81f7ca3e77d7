package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	msg string
}

func (e *ResourceNotFoundError) Error() string {
	return e.msg
}

func NewBookNotFoundError(id int) *ResourceNotFoundError {
	return &ResourceNotFoundError{msg: fmt.Sprintf("Error: no such Book with id %d", id)}
}

func NewLoggerNotFoundError() *ResourceNotFoundError {
	return &ResourceNotFoundError{msg: "No logger found"}
}

func NewLogLevelNotFoundError() *ResourceNotFoundError {
	return &ResourceNotFoundError{msg: "No level found"}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("Error: Book with the title [%s] already exists in the system", e.Title)
}

func NewDuplicateTitleError(title string) *DuplicateTitleError {
	return &DuplicateTitleError{Title: title}
}

func IsDuplicateTitleError(err error) bool {
	var e *DuplicateTitleError
	return errors.As(err, &e)
}

type InvalidYearError struct {
	Year     int
	Min, Max int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("Error: Can’t create new Book that its year [%d] is not in the accepted range [%d -> %d]", e.Year, e.Min, e.Max)
}

func NewInvalidYearError(year, min, max int) *InvalidYearError {
	return &InvalidYearError{Year: year, Min: min, Max: max}
}

func IsInvalidYearError(err error) bool {
	var e *InvalidYearError
	return errors.As(err, &e)
}

type InvalidPriceError struct {
	msg string
}

func (e *InvalidPriceError) Error() string {
	return e.msg
}

// NewInvalidPriceError is returned when a book is created with a non positive price.
func NewInvalidPriceError() *InvalidPriceError {
	return &InvalidPriceError{msg: "Error: Can’t create new Book with negative price"}
}

// NewInvalidPriceUpdateError is returned when the price of book id is set to a non positive value.
func NewInvalidPriceUpdateError(id int) *InvalidPriceError {
	return &InvalidPriceError{msg: fmt.Sprintf("Error: price update for book %d must be a positive integer", id)}
}

func IsInvalidPriceError(err error) bool {
	var e *InvalidPriceError
	return errors.As(err, &e)
}

type BadFilterError struct {
	msg string
}

func (e *BadFilterError) Error() string {
	return e.msg
}

func NewMalformedGenresError(genres string) *BadFilterError {
	return &BadFilterError{msg: fmt.Sprintf("Error: genres [%s] must be given in upper case", genres)}
}

func IsBadFilterError(err error) bool {
	var e *BadFilterError
	return errors.As(err, &e)
}

// IsValidationError reports whether err is one of the rejections of a create or price update.
func IsValidationError(err error) bool {
	return IsDuplicateTitleError(err) || IsInvalidYearError(err) || IsInvalidPriceError(err)
}
