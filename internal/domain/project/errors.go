package project

import "errors"

var (
	ErrProjectNotFound = errors.New("Project not found")
	ErrProjectDeleted  = errors.New("Project has been deleted")
)
