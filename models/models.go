package models

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrNotFound = errors.New("not found")
var ErrEmptyCart = errors.New("cart is empty")
var ErrStorageError = errors.New("storage error")
var ErrBadTransition = errors.New("status transition not allowed")
