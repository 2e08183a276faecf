package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cureplus/website/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	structRules  *validator.Validate
)

// reservedSlugs are first path segments owned by site routes. A hospital
// slug equal to one of them would be rewritten before routing and hide the
// route.
var reservedSlugs = map[string]bool{
	"about":    true,
	"api":      true,
	"assets":   true,
	"health":   true,
	"hospital": true,
	"static":   true,
}

func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return domain.ValidSlug(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("register slug validation: %v", err))
		}
		structRules = v
	})
	return structRules
}

// Validate checks field rules and registry invariants of doc: ids are
// unique and run 1..N, and every hospital has exactly one unique slug that
// does not shadow a site route. All problems are reported together.
func Validate(doc Document) error {
	var errs []error

	if err := rules().Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q rule", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	seenIDs := make(map[int]int, len(doc.Hospitals))
	seenSlugs := make(map[string]int, len(doc.Hospitals))
	ids := make([]int, 0, len(doc.Hospitals))
	for i, r := range doc.Hospitals {
		if prev, dup := seenIDs[r.ID]; dup {
			errs = append(errs, fmt.Errorf("hospitals[%d]: id %d already used by hospitals[%d]", i, r.ID, prev))
		} else {
			seenIDs[r.ID] = i
			ids = append(ids, r.ID)
		}
		if r.Slug == "" {
			continue
		}
		if reservedSlugs[normalizeSlug(r.Slug)] {
			errs = append(errs, fmt.Errorf("hospitals[%d]: slug %q is reserved for a site route", i, r.Slug))
		}
		if prev, dup := seenSlugs[r.Slug]; dup {
			errs = append(errs, fmt.Errorf("hospitals[%d]: slug %q already used by hospitals[%d]", i, r.Slug, prev))
		} else {
			seenSlugs[r.Slug] = i
		}
	}

	slices.Sort(ids)
	for i, id := range ids {
		if id != i+1 {
			errs = append(errs, fmt.Errorf("hospital ids must run 1..%d without gaps, found %d at position %d", len(ids), id, i+1))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid hospital dataset: %w", errors.Join(errs...))
	}
	return nil
}
