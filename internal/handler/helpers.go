package handler

import (
	"errors"
	"net/http"
	"reflect"

	"shopstock/internal/apierror"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeError maps service-layer errors onto the HTTP taxonomy. Anything
// unclassified is attached to the context so ErrorHandler logs it and
// responds 500.
func writeError(c *gin.Context, err error) {
	var insufficient *service.InsufficientStockError
	var txErr *service.TransactionError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, service.ErrDuplicateKey):
		c.JSON(http.StatusConflict, apierror.New("duplicate key"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, apierror.New(insufficient.Error()))
	case errors.As(err, &txErr):
		// Safe to retry: neither half of the sale is visible.
		c.JSON(http.StatusInternalServerError, apierror.New("could not complete transaction, retry"))
	default:
		_ = c.Error(err)
	}
}
