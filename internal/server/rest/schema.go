package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/xeipuuv/gojsonschema"
)

// Request body schemas. "required" and minLength violations are reported
// as missing fields, everything else as invalid.
var (
	signupSchema = mustSchema(`{
		"type": "object",
		"required": ["full_name", "email", "password", "birthday", "store_id"],
		"properties": {
			"full_name": {"type": "string", "minLength": 1},
			"email":     {"type": "string", "minLength": 1, "format": "email"},
			"password":  {"type": "string", "minLength": 1, "maxLength": 72},
			"birthday":  {"type": "string", "minLength": 1},
			"store_id":  {"type": "integer", "minimum": 1}
		}
	}`)

	loginSchema = mustSchema(`{
		"type": "object",
		"required": ["email", "password"],
		"properties": {
			"email":    {"type": "string", "minLength": 1},
			"password": {"type": "string", "minLength": 1}
		}
	}`)

	refreshSchema = mustSchema(`{
		"type": "object",
		"required": ["refresh_token"],
		"properties": {
			"refresh_token": {"type": "string", "minLength": 1}
		}
	}`)

	storeIDSchema = mustSchema(`{
		"type": "object",
		"required": ["country", "company", "branch"],
		"properties": {
			"country": {"type": "string", "minLength": 1},
			"company": {"type": "string", "minLength": 1},
			"branch":  {"type": "string", "minLength": 1}
		}
	}`)

	addScoreSchema = mustSchema(`{
		"type": "object",
		"required": ["staff_id", "score"],
		"properties": {
			"staff_id": {"type": "integer", "minimum": 1},
			"score":    {"type": "integer", "minimum": -2147483648, "maximum": 2147483647}
		}
	}`)

	getScoresSchema = mustSchema(`{
		"type": "object",
		"required": ["staff_id"],
		"properties": {
			"staff_id": {"type": "integer", "minimum": 1}
		}
	}`)
)

var errBadJSON = errors.New("invalid JSON body")

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

// decodeValid reads the body, validates it against schema and unmarshals
// it into v.
func decodeValid(r *http.Request, schema *gojsonschema.Schema, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return errBadJSON
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	if !res.Valid() {
		return schemaError(res.Errors())
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}

// schemaError picks the most useful violation: missing fields first, in
// schema order, then the first type or format problem.
func schemaError(errs []gojsonschema.ResultError) error {
	for _, e := range errs {
		if e.Type() == "required" {
			if p, ok := e.Details()["property"].(string); ok {
				return common.MissingField(p)
			}
		}
	}
	for _, e := range errs {
		if e.Type() == "string_gte" {
			return common.MissingField(e.Field())
		}
	}
	if len(errs) > 0 {
		field := errs[0].Field()
		if field == "(root)" {
			field = "body"
		}
		return common.InvalidField(field)
	}
	return errBadJSON
}

// decodeError writes the 400 for a decodeValid failure.
func (h *Handler) decodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	var fe *common.FieldError
	switch {
	case errors.As(err, &maxBytesErr):
		writeMessage(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.As(err, &fe):
		h.writeError(w, r, err)
	default:
		writeMessage(w, http.StatusBadRequest, errBadJSON.Error())
	}
}
