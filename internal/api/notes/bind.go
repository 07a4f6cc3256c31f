package notes

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/internal/pipeline"
)

var jsonNull = []byte("null")

func metadata(c *fiber.Ctx) pipeline.Metadata {
	return pipeline.MetadataFunc(func(key string) string {
		return c.Get(key)
	})
}

// bindBody decodes the JSON body. An absent body leaves the request
// empty for the validator to report missing fields.
func bindBody[T any](c *fiber.Ctx) pipeline.Binder[T] {
	return func(req *T) []entity.Violation {
		if len(c.Body()) == 0 {
			return nil
		}

		if !c.Is("json") {
			return []entity.Violation{{Field: "body", Message: "body must be application/json", Tag: "content_type"}}
		}

		if err := c.BodyParser(req); err != nil {
			var zero T
			*req = zero
			return []entity.Violation{{Field: "body", Message: "body must be a valid JSON object", Tag: "json"}}
		}

		return nullFields[T](c)
	}
}

// nullFields reports fields of T sent as an explicit JSON null. A null
// would otherwise decode like an absent field and pick up its default.
func nullFields[T any](c *fiber.Ctx) []entity.Violation {
	var raw map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(c.Body(), &raw); err != nil {
		return nil
	}

	var violations []entity.Violation
	t := reflect.TypeFor[T]()
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		if v, ok := raw[name]; ok && bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			violations = append(violations, entity.Violation{
				Field:   name,
				Message: name + " must not be null",
				Tag:     "null",
			})
		}
	}

	return violations
}

// bindList reads list parameters from the query. A parameter sent with an
// empty value is kept as empty so that it is validated, not defaulted.
func bindList(c *fiber.Ctx) pipeline.Binder[pipeline.ListNotesRequest] {
	return func(req *pipeline.ListNotesRequest) []entity.Violation {
		req.FiltroCor = queryParam(c, "filtroCor")
		req.Ordem = queryParam(c, "ordem")
		return nil
	}
}

func queryParam(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}

	v := string(args.Peek(key))
	return &v
}

func bindID(c *fiber.Ctx) pipeline.Binder[pipeline.NoteIDRequest] {
	return func(req *pipeline.NoteIDRequest) []entity.Violation {
		id, violations := pathID(c)
		req.ID = id
		return violations
	}
}

func pathID(c *fiber.Ctx) (int64, []entity.Violation) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, []entity.Violation{{Field: "id", Message: "id must be a positive integer", Tag: "gt"}}
	}

	return int64(id), nil
}
