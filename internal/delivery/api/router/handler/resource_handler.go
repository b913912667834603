// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"natours/internal/delivery/api/response"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	paramID = "id"
	docKey  = "doc"
)

// protectedFields are never taken from a request body.
var protectedFields = []string{"id", "_id", "__v", "createdAt"}

// defaulter is implemented by entities that need defaults before binding.
type defaulter interface {
	SetDefaults()
}

// ResourceOptions tunes the generated handlers of one resource.
type ResourceOptions[T any] struct {
	// Populate names the relations getOne loads.
	Populate []string

	// Scope turns route parameters into predicates that narrow getAll.
	Scope func(c echo.Context) ([]query.Predicate, error)

	// BeforeCreate completes a bound document before it is validated.
	BeforeCreate func(c echo.Context, doc *T) error
}

// ResourceHandler serves the five CRUD endpoints of a resource.
// It performs no authorization; routes attach their own guards.
type ResourceHandler[T any] struct {
	uc   usecase.ResourceUsecase[T]
	opts ResourceOptions[T]
}

func NewResourceHandler[T any](uc usecase.ResourceUsecase[T], opts ResourceOptions[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{uc: uc, opts: opts}
}

// CreateOne binds the body into a new document and stores it.
func (h *ResourceHandler[T]) CreateOne(c echo.Context) error {
	fields, err := decodeBody(c)
	if err != nil {
		return err
	}

	doc := new(T)
	if d, ok := any(doc).(defaulter); ok {
		d.SetDefaults()
	}
	if err := applyFields(fields, doc); err != nil {
		return err
	}
	if h.opts.BeforeCreate != nil {
		if err := h.opts.BeforeCreate(c, doc); err != nil {
			return err
		}
	}
	if err := c.Validate(doc); err != nil {
		return err
	}

	if err := h.uc.Create(c.Request().Context(), doc); err != nil {
		return errors.WithStack(err)
	}

	return response.Doc(c, http.StatusCreated, doc)
}

// GetOne loads the document named by :id.
func (h *ResourceHandler[T]) GetOne(c echo.Context) error {
	id, err := parseID(c, paramID)
	if err != nil {
		return err
	}

	doc, err := h.uc.Get(c.Request().Context(), id, h.opts.Populate...)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Doc(c, http.StatusOK, doc)
}

// GetAll lists documents through the query pipeline and projects the selected fields.
func (h *ResourceHandler[T]) GetAll(c echo.Context) error {
	var scope []query.Predicate
	if h.opts.Scope != nil {
		preds, err := h.opts.Scope(c)
		if err != nil {
			return err
		}
		scope = preds
	}

	spec := query.NewFeatures(c.QueryParams()).
		With(scope...).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Spec()

	docs, err := h.uc.List(c.Request().Context(), spec)
	if err != nil {
		return errors.WithStack(err)
	}

	projected, err := project(docs, spec.Selection)
	if err != nil {
		return err
	}

	return response.List(c, docKey, projected, len(projected))
}

// UpdateOne merges the body into the document named by :id and validates the result.
func (h *ResourceHandler[T]) UpdateOne(c echo.Context) error {
	id, err := parseID(c, paramID)
	if err != nil {
		return err
	}

	fields, err := decodeBody(c)
	if err != nil {
		return err
	}

	doc, err := h.uc.Update(c.Request().Context(), id, func(doc *T) error {
		if err := applyFields(fields, doc); err != nil {
			return err
		}

		return c.Validate(doc)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Doc(c, http.StatusOK, doc)
}

// DeleteOne removes the document named by :id.
func (h *ResourceHandler[T]) DeleteOne(c echo.Context) error {
	id, err := parseID(c, paramID)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// parseID reads a uuid path parameter. Malformed ids cannot name a document.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewNotFoundError(raw)
	}

	return id, nil
}

// decodeBody reads a JSON object body. An empty body is an empty object.
func decodeBody(c echo.Context) (map[string]any, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	fields := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, domainerrors.NewOperationalError("Invalid JSON body", http.StatusBadRequest)
	}

	return fields, nil
}

// applyFields writes the unprotected fields over doc.
func applyFields(fields map[string]any, doc any) error {
	for _, name := range protectedFields {
		delete(fields, name)
	}
	if len(fields) == 0 {
		return nil
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		if typeErr, ok := errors.AsType[*json.UnmarshalTypeError](err); ok && typeErr.Field != "" {
			return domainerrors.NewCastError(typeErr.Field, fmt.Sprint(fields[typeErr.Field]))
		}

		return domainerrors.NewOperationalError("Invalid input data. "+err.Error(), http.StatusBadRequest)
	}

	return nil
}

// project renders docs as JSON objects restricted to the selection. The id is always kept
// by an inclusive selection.
func project[T any](docs []*T, sel query.Selection) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, errors.WithStack(err)
		}
		out = append(out, selectFields(fields, sel))
	}

	return out, nil
}

func selectFields(fields map[string]any, sel query.Selection) map[string]any {
	if len(sel.Include) > 0 {
		kept := map[string]any{"id": fields["id"]}
		for _, name := range sel.Include {
			if v, ok := fields[name]; ok {
				kept[name] = v
			}
		}

		return kept
	}

	for _, name := range sel.Exclude {
		delete(fields, name)
	}

	return fields
}
