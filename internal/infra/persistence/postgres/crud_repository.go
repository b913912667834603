package postgres

import (
	"context"

	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scopeFunc func(db *gorm.DB) *gorm.DB

// resource describes how one entity is stored. It drives crudRepository.
type resource[E any, M any] struct {
	name   string
	fields fieldMap

	// visible hides documents that default lookups never return.
	visible scopeFunc
	// preloads maps populate directives onto relations.
	preloads map[string]scopeFunc
	// alwaysPreload is applied to every read.
	alwaysPreload []string

	toDomain   func(m *M) *E
	fromDomain func(e *E) *M
	idOf       func(m *M) uuid.UUID
	setID      func(m *M, id uuid.UUID)
	version    func(m *M) *int

	// beforeSave derives stored fields from the document.
	beforeSave func(e *E)
	// afterSave writes relations, which GORM never writes by itself here.
	afterSave func(tx *gorm.DB, id uuid.UUID, e *E) error
}

// crudRepository implements repository.CRUDRepository over a GORM model.
type crudRepository[E any, M any] struct {
	db  *gorm.DB
	res *resource[E, M]
}

func newCRUDRepository[E any, M any](db *gorm.DB, res *resource[E, M]) *crudRepository[E, M] {
	return &crudRepository[E, M]{db: db, res: res}
}

var _ repository.CRUDRepository[struct{}] = (*crudRepository[struct{}, struct{}])(nil)

func (repo *crudRepository[E, M]) read(db *gorm.DB, populate []string) *gorm.DB {
	if repo.res.visible != nil {
		db = repo.res.visible(db)
	}

	return repo.preload(db, populate)
}

func (repo *crudRepository[E, M]) preload(db *gorm.DB, populate []string) *gorm.DB {
	for _, name := range append(append([]string(nil), repo.res.alwaysPreload...), populate...) {
		if preload, ok := repo.res.preloads[name]; ok {
			db = preload(db)
		}
	}

	return db
}

// Create persists doc and copies generated values back into it.
func (repo *crudRepository[E, M]) Create(ctx context.Context, doc *E) error {
	if repo.res.beforeSave != nil {
		repo.res.beforeSave(doc)
	}
	m := repo.res.fromDomain(doc)
	if repo.res.idOf(m) == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate id")
		}
		repo.res.setID(m, id)
	}
	*repo.res.version(m) = 0

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return translateError(err, "create "+repo.res.name)
		}
		if repo.res.afterSave != nil {
			if err := repo.res.afterSave(tx, repo.res.idOf(m), doc); err != nil {
				return translateError(err, "create "+repo.res.name)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	stored, err := repo.reload(repo.db.WithContext(ctx), repo.res.idOf(m))
	if err != nil {
		return err
	}
	*doc = *stored

	return nil
}

// FindByID loads a visible document with the requested relations.
func (repo *crudRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID, populate ...string) (*E, error) {
	return repo.findByID(repo.db.WithContext(ctx), id, populate)
}

func (repo *crudRepository[E, M]) findByID(db *gorm.DB, id uuid.UUID, populate []string) (*E, error) {
	m := new(M)
	if err := repo.read(db, populate).Where(quote(idColumn)+" = ?", id).First(m).Error; err != nil {
		return nil, translateError(err, "find "+repo.res.name)
	}

	return repo.res.toDomain(m), nil
}

// reload reads a document just written, even if it is no longer visible.
func (repo *crudRepository[E, M]) reload(db *gorm.DB, id uuid.UUID) (*E, error) {
	m := new(M)
	if err := repo.preload(db, nil).Where(quote(idColumn)+" = ?", id).First(m).Error; err != nil {
		return nil, translateError(err, "reload "+repo.res.name)
	}

	return repo.res.toDomain(m), nil
}

// Find lists visible documents matching spec.
func (repo *crudRepository[E, M]) Find(ctx context.Context, spec *query.Spec) ([]*E, error) {
	db, err := applySpec(repo.read(repo.db.WithContext(ctx).Model(new(M)), nil), spec, repo.res.fields)
	if err != nil {
		return nil, err
	}

	var models []*M
	if err := db.Find(&models).Error; err != nil {
		return nil, translateError(err, "find "+repo.res.name)
	}

	return repo.toDomainList(models), nil
}

// UpdateByID applies mutate to the stored document inside one transaction.
// The id and creation time cannot be changed by mutate.
func (repo *crudRepository[E, M]) UpdateByID(ctx context.Context, id uuid.UUID, mutate func(doc *E) error) (*E, error) {
	var updated *E
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := new(M)
		if err := repo.read(tx, nil).Where(quote(idColumn)+" = ?", id).First(current).Error; err != nil {
			return translateError(err, "find "+repo.res.name)
		}

		doc := repo.res.toDomain(current)
		if err := mutate(doc); err != nil {
			return err
		}
		if repo.res.beforeSave != nil {
			repo.res.beforeSave(doc)
		}

		next := repo.res.fromDomain(doc)
		repo.res.setID(next, id)
		*repo.res.version(next) = *repo.res.version(current) + 1
		if err := tx.Omit("CreatedAt", clause.Associations).Save(next).Error; err != nil {
			return translateError(err, "update "+repo.res.name)
		}
		if repo.res.afterSave != nil {
			if err := repo.res.afterSave(tx, id, doc); err != nil {
				return translateError(err, "update "+repo.res.name)
			}
		}

		stored, err := repo.reload(tx, id)
		if err != nil {
			return err
		}
		updated = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteByID removes a visible document and returns it.
func (repo *crudRepository[E, M]) DeleteByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var removed *E
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc, err := repo.findByID(tx, id, nil)
		if err != nil {
			return err
		}
		if err := tx.Where(quote(idColumn)+" = ?", id).Delete(new(M)).Error; err != nil {
			return translateError(err, "delete "+repo.res.name)
		}
		removed = doc

		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (repo *crudRepository[E, M]) toDomainList(models []*M) []*E {
	docs := make([]*E, 0, len(models))
	for _, m := range models {
		docs = append(docs, repo.res.toDomain(m))
	}

	return docs
}
