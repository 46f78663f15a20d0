package storefront

import (
	"errors"

	"github.com/tair/storefront/internal/storefront/api"
)

// Errors returned by App operations; backend failures unwrap to the api kinds
var (
	ErrValidation   = api.ErrValidation
	ErrNotFound     = api.ErrNotFound
	ErrAuthRequired = api.ErrAuthRequired
	ErrNetwork      = api.ErrNetwork
	ErrEmptyCart    = errors.New("cart is empty")
)
