package blogservice

import (
	"context"
	"slices"
	"strings"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

func sortCategories(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
}

// ListCategories returns the managed categories sorted alphabetically, ignoring case.
func (s *BlogService) ListCategories(ctx context.Context) ([]string, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.View(func(tx *memdb.Tx) error {
		names = slices.Clone(tx.Categories())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if names == nil {
		names = []string{}
	}
	sortCategories(names)
	return names, nil
}

// ListCategoriesWithCounts returns each managed category with the number of published posts tagged with it.
func (s *BlogService) ListCategoriesWithCounts(ctx context.Context) ([]CategoryCount, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	counts := make([]CategoryCount, 0)
	err := s.db.View(func(tx *memdb.Tx) error {
		names := slices.Clone(tx.Categories())
		sortCategories(names)

		for _, name := range names {
			n := 0
			for _, p := range tx.Posts() {
				if p.IsPublished() && p.HasTag(name) {
					n++
				}
			}
			counts = append(counts, CategoryCount{Name: name, Count: n})
		}
		return nil
	})

	return counts, err
}

// AddCategory adds a managed category. Names are unique ignoring case.
func (s *BlogService) AddCategory(ctx context.Context, name string) (string, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)

	v := common.NewValidator()
	validateCategory(v, name)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	err := s.db.Update(func(tx *memdb.Tx) error {
		if tx.HasCategory(name) {
			return ErrDuplicateCategory
		}
		tx.InsertCategory(name)
		return nil
	})
	if err != nil {
		return "", err
	}

	return name, nil
}

// DeleteCategory removes a managed category and strips it from the tags of every post.
func (s *BlogService) DeleteCategory(ctx context.Context, name string) error {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return err
	}

	name = strings.TrimSpace(name)

	v := common.NewValidator()
	v.Check(common.NotBlank(name), "name", "must be provided")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.db.Update(func(tx *memdb.Tx) error {
		tx.DeleteCategory(name)

		for _, p := range tx.Posts() {
			p.Tags = slices.DeleteFunc(p.Tags, func(t string) bool { return strings.EqualFold(t, name) })
		}
		return nil
	})
}
