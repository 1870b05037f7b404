package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// each of these to a status code; the message is what clients see.
var ErrEmailRegistered = errors.New("Email already registered")
var ErrEmailInUse = errors.New("Email already in use")
var ErrInvalidCredentials = errors.New("Invalid credentials")
var ErrAccountInactive = errors.New("Account is inactive")
var ErrWrongPassword = errors.New("Incorrect current password")
var ErrUserNotFound = errors.New("User not found")
var ErrSelfDeactivation = errors.New("Admin cannot deactivate themselves")
var ErrInvalidToken = errors.New("Invalid token")
