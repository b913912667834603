package postgres

import (
	"fmt"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idColumn = "id"

// column describes how one API field maps onto the table.
type column struct {
	name       string
	filterable bool
}

// fieldMap maps API field names to table columns for one resource.
type fieldMap map[string]column

var comparisonSQL = map[query.Operator]string{
	query.OpEq:  "=",
	query.OpGt:  ">",
	query.OpGte: ">=",
	query.OpLt:  "<",
	query.OpLte: "<=",
}

// applySpec translates a query specification into GORM clauses.
// Unknown filter fields and operators are rejected, unknown sort and projection fields are ignored.
func applySpec(db *gorm.DB, spec *query.Spec, fields fieldMap) (*gorm.DB, error) {
	if spec == nil {
		return db, nil
	}

	for _, p := range spec.Filters {
		col, ok := fields[p.Field]
		if !ok || !col.filterable {
			return nil, domainerrors.NewInvalidQueryError("field", p.Field)
		}
		op, ok := comparisonSQL[p.Op]
		if !ok {
			return nil, domainerrors.NewInvalidQueryError("query operator", string(p.Op))
		}
		db = db.Where(fmt.Sprintf("%s %s ?", quote(col.name), op), p.Value)
	}

	for _, key := range spec.Sort {
		col, ok := fields[key.Field]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col.name}, Desc: key.Desc})
	}

	db = applySelection(db, spec.Selection, fields)

	if spec.Page.Limit > 0 {
		db = db.Offset(spec.Page.Skip).Limit(spec.Page.Limit)
	}

	return db, nil
}

func applySelection(db *gorm.DB, selection query.Selection, fields fieldMap) *gorm.DB {
	if len(selection.Include) > 0 {
		columns := []string{idColumn}
		for _, name := range selection.Include {
			col, ok := fields[name]
			if !ok || col.name == idColumn {
				continue
			}
			columns = append(columns, col.name)
		}

		return db.Select(columns)
	}

	var omitted []string
	for _, name := range selection.Exclude {
		col, ok := fields[name]
		if !ok || col.name == idColumn {
			continue
		}
		omitted = append(omitted, col.name)
	}
	if len(omitted) > 0 {
		db = db.Omit(omitted...)
	}

	return db
}

func quote(name string) string {
	return `"` + name + `"`
}
