package jwt

import "errors"

var ErrTokenFormat = errors.New("invalid token format")
