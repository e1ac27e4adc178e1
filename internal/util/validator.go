package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/collectionlog/backend/internal/pkg/wikiparse"
)

var itemIDRegex = regexp.MustCompile(`^[0-9]+$`)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("itemid", itemID)
	validate.RegisterValidation("extractorversion", extractorVersion)

	return validate
}

// itemID accepts a non-negative base-10 integer without sign or spaces.
func itemID(fl validator.FieldLevel) bool {
	return itemIDRegex.MatchString(fl.Field().String())
}

func extractorVersion(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, v := range wikiparse.Versions() {
		if val == v {
			return true
		}
	}
	return false
}
