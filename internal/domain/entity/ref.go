package entity

import (
	"bytes"
	"encoding/json"

	"natours/internal/errors"

	"github.com/google/uuid"
)

// Ref points at another document by id. Once populated, Doc holds the document
// and the reference serializes as that document instead of the bare id.
type Ref[T any] struct {
	ID  uuid.UUID
	Doc *T
}

// RefTo builds an unpopulated reference.
func RefTo[T any](id uuid.UUID) Ref[T] {
	return Ref[T]{ID: id}
}

// RefID exposes the referenced id without knowing T.
func (r Ref[T]) RefID() uuid.UUID {
	return r.ID
}

// Populated reports whether the referenced document was loaded.
func (r Ref[T]) Populated() bool {
	return r.Doc != nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	if r.ID == uuid.Nil {
		return []byte("null"), nil
	}

	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts an id string or an object carrying an "id".
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref[T]{}

		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.WithStack(err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid reference %q", raw)
		}
		*r = Ref[T]{ID: id}

		return nil
	}

	var obj struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.WithStack(err)
	}
	*r = Ref[T]{ID: obj.ID}

	return nil
}

// RefIDs collects the ids of a reference list.
func RefIDs[T any](refs []Ref[T]) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	return ids
}
