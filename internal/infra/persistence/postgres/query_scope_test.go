package postgres

import (
	"net/http"
	"net/url"
	"testing"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTourSQL(t *testing.T, raw string) (string, []any) {
	t.Helper()

	db, _ := newMockDB(t)
	params, err := url.ParseQuery(raw)
	require.NoError(t, err)

	scoped, err := applySpec(publicTours(dryRun(db).Model(&model.TourModel{})), query.Build(params), tourFields)
	require.NoError(t, err)

	var tours []*model.TourModel
	stmt := scoped.Find(&tours).Statement

	return stmt.SQL.String(), stmt.Vars
}

func TestApplySpec_FiltersSortAndPagination(t *testing.T) {
	sql, vars := buildTourSQL(t, "duration[gte]=5&difficulty=easy&sort=-price,ratingsAverage&page=3&limit=10")

	assert.Contains(t, sql, `"tours"."secret_tour" = $1`)
	assert.Contains(t, sql, `"difficulty" = $2`)
	assert.Contains(t, sql, `"duration" >= $3`)
	assert.Contains(t, sql, `ORDER BY "price" DESC,"ratings_average"`)
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	assert.Contains(t, vars, "easy")
	assert.Contains(t, vars, "5")
}

func TestApplySpec_DefaultSortAndVersionExcluded(t *testing.T) {
	sql, _ := buildTourSQL(t, "")

	assert.Contains(t, sql, `ORDER BY "created_at" DESC`)
	assert.Contains(t, sql, `"tours"."name"`)
	assert.NotContains(t, sql, `"version"`)
}

func TestApplySpec_FieldSelectionAlwaysKeepsID(t *testing.T) {
	sql, _ := buildTourSQL(t, "fields=name,price,unknown")

	assert.Contains(t, sql, `SELECT "id","name","price" FROM "tours"`)
	assert.NotContains(t, sql, "summary")
}

func TestApplySpec_UnknownSortFieldIgnored(t *testing.T) {
	sql, _ := buildTourSQL(t, "sort=bogus")

	assert.NotContains(t, sql, "ORDER BY")
}

func TestApplySpec_RejectsUnknownFilters(t *testing.T) {
	db, _ := newMockDB(t)

	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "unknown operator", raw: "price[regex]=1", message: "Invalid query operator: regex"},
		{name: "unknown field", raw: "password=secret", message: "Invalid field: password"},
		{name: "json column", raw: "images=a.jpg", message: "Invalid field: images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			_, err = applySpec(dryRun(db), query.Build(params), tourFields)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestApplySpec_NestedScopeOnReviews(t *testing.T) {
	db, _ := newMockDB(t)
	spec := query.NewFeatures(url.Values{"rating[gte]": {"4"}}).
		Filter().
		With(query.Predicate{Field: "tour", Op: query.OpEq, Value: "0190a5a8-0000-7000-8000-000000000001"}).
		Sort().LimitFields().Paginate().Spec()

	scoped, err := applySpec(dryRun(db).Model(&model.ReviewModel{}), spec, reviewFields)
	require.NoError(t, err)

	var reviews []*model.ReviewModel
	sql := scoped.Find(&reviews).Statement.SQL.String()

	assert.Contains(t, sql, `"tour_id" = $1`)
	assert.Contains(t, sql, `"rating" >= $2`)
}

func TestApplySpec_NilSpec(t *testing.T) {
	db, _ := newMockDB(t)

	got, err := applySpec(db, nil, tourFields)

	require.NoError(t, err)
	assert.Same(t, db, got)
}
