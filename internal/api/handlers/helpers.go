package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"moto-backoffice/internal/datamodel"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/tableview"
	"moto-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func formatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps service-level errors onto HTTP responses.
// Validation failures carry their field map into the body.
func respondServiceError(c *gin.Context, err error, resource string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErr.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict saving " + resource})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.Error().Err(err).Str("resource", resource).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + resource})
	}
}

// buildListQuery assembles the derived-view query from the bound parameters.
// Field filters arrive as filter[key]=substring and are read from the raw
// query; the sort defaults to the schema's when none is given. The category
// value is matched against the schema's select options so it keeps its
// original type.
func buildListQuery(c *gin.Context, params dto.ListQueryRequest, schema tableview.Schema) tableview.Query {
	q := tableview.Query{
		Search: params.Search,
		Sort:   schema.DefaultSort,
	}

	if params.Sort != "" {
		dir := tableview.Ascending
		if params.Dir == string(tableview.Descending) {
			dir = tableview.Descending
		}
		q.Sort = tableview.Sort{Key: params.Sort, Direction: dir}
	}

	if params.Category != "" {
		q.Category = params.Category
		if catField, found := schema.CategoryField(); found {
			for _, opt := range catField.Options {
				if fmt.Sprint(opt.Value) == params.Category {
					q.Category = opt.Value
					break
				}
			}
		}
	}

	for key, values := range c.Request.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		field := key[len("filter[") : len(key)-1]
		if field == "" || len(values) == 0 {
			continue
		}
		if q.FieldFilters == nil {
			q.FieldFilters = make(map[string]string)
		}
		q.FieldFilters[field] = values[0]
	}
	return q
}

// respondListView converts entities to records, runs the view pipeline, and
// writes the result. With display set, every schema field is projected to its
// display value instead of returning the raw records. Used by every list
// endpoint.
func respondListView(c *gin.Context, entity string, v any) {
	schema, ok := datamodel.ByEntity(entity)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown entity " + entity})
		return
	}
	var params dto.ListQueryRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list query: " + err.Error()})
		return
	}
	records, err := tableview.ToRecords(v)
	if err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("failed to convert records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render " + entity})
		return
	}
	view := tableview.DeriveView(records, schema, buildListQuery(c, params, schema))
	if params.Display {
		view = tableview.RenderRecords(view, schema)
	}
	if view == nil {
		view = []tableview.Record{}
	}
	c.JSON(http.StatusOK, view)
}
