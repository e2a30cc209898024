package service

import "errors"

var (
	ErrExamNotFound       = errors.New("exam not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAttemptsExhausted  = errors.New("no attempts left for this exam")
	ErrDeadlineExceeded   = errors.New("reported time exceeds the exam duration")
	ErrNotExamOwner       = errors.New("exam belongs to another creator")
	ErrInvalidQuestion    = errors.New("question answer must equal one of its options")
)
