package usecase

import "errors"

// ErrSessionNotFound is returned by SessionRepository implementations when no
// session exists for a conversation.
var ErrSessionNotFound = errors.New("chat session not found")
