package errors

import (
	"fmt"
)

// EntryNotFoundErr is raised when requested entry doesn't exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// EntryNotFound builds EntryNotFoundErr for entity with id
func EntryNotFound(entity string, id string) *EntryNotFoundErr {
	return NewEntryNotFoundErr(fmt.Sprintf("%s with id %s doesn't exist", entity, id))
}
