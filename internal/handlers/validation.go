package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dkanak/shopcart-backend/internal/apperr"
)

// bindingError maps a request bind failure to the per-field message of
// the first offending field. messages is keyed by lowercased field name
// so validator (struct field) and json (tag) spellings both resolve.
func bindingError(err error, messages map[string]string, fallback string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[strings.ToLower(verrs[0].Field())]; ok {
			return apperr.Validation(msg)
		}
	}
	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) {
		if msg, ok := messages[strings.ToLower(jerr.Field)]; ok {
			return apperr.Validation(msg)
		}
	}
	return apperr.Validation(fallback)
}
