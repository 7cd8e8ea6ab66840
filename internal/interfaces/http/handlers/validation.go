// internal/interfaces/http/handlers/validation.go
package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/verve-shop/storefront/internal/domain/checkout"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the storefront's custom tags to gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		registerErr = checkout.RegisterValidations(v)
	})
	return registerErr
}
