package domain

import "errors"

var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("resource not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUpstream = errors.New("upstream api error")
