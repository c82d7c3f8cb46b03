package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// List returns products, optionally filtered by category.
func (s *Service) List(ctx context.Context, categoryID string) ([]Product, error) {
	prods, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID == "" {
		return prods, nil
	}
	out := prods[:0]
	for _, p := range prods {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, ok, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}
	if !ok {
		return Product{}, apperr.NotFoundErr("Product not found.")
	}
	return p, nil
}

type AddCategoryInput struct {
	Name string
}

func (s *Service) AddCategory(ctx context.Context, in AddCategoryInput) (Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Category{}, apperr.InvalidErr("Category name is required.", map[string]string{"name": "required"})
	}
	c := Category{ID: uuid.NewString(), Name: name}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return Category{}, apperr.Wrap(err)
	}
	return c, nil
}

// DeleteCategory is unconditional and cascades to products in it.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

type VariantInput struct {
	Name        string
	PriceCents  int64
	DownloadURL string
	FileName    string
}

type ProductInput struct {
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
	Variants    []VariantInput
}

func (s *Service) AddProduct(ctx context.Context, in ProductInput) (Product, error) {
	if err := s.validateProductInput(ctx, in); err != nil {
		return Product{}, err
	}
	p := Product{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Variants:    buildVariants(in.Variants),
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return Product{}, apperr.Wrap(err)
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	if err := s.validateProductInput(ctx, in); err != nil {
		return Product{}, err
	}
	existing, ok, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}
	if !ok {
		return Product{}, apperr.NotFoundErr("Product not found.")
	}

	p := Product{
		ID:          existing.ID,
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Variants:    mergeVariants(existing.Variants, in.Variants),
	}
	if _, err := s.repo.UpdateProduct(ctx, p); err != nil {
		return Product{}, apperr.Wrap(err)
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) validateProductInput(ctx context.Context, in ProductInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "required"
	}
	if len(in.Variants) == 0 {
		fields["variants"] = "at least one variant is required"
	}
	for _, v := range in.Variants {
		if v.PriceCents < 0 {
			fields["variants"] = "price must not be negative"
		}
		if strings.TrimSpace(v.Name) == "" {
			fields["variants"] = "variant name is required"
		}
	}
	if in.CategoryID != "" {
		_, ok, err := s.repo.GetCategory(ctx, in.CategoryID)
		if err != nil {
			return apperr.Wrap(err)
		}
		if !ok {
			fields["category_id"] = "unknown category"
		}
	} else {
		fields["category_id"] = "required"
	}
	if len(fields) > 0 {
		return apperr.InvalidErr("Product data is invalid.", fields)
	}
	return nil
}

func buildVariants(in []VariantInput) []Variant {
	out := make([]Variant, 0, len(in))
	for _, v := range in {
		out = append(out, Variant{
			ID:          uuid.NewString(),
			Name:        strings.TrimSpace(v.Name),
			PriceCents:  v.PriceCents,
			DownloadURL: v.DownloadURL,
			FileName:    v.FileName,
		})
	}
	return out
}

// mergeVariants keeps existing variant ids stable by position so order
// snapshots and download links keep pointing at the same variant.
func mergeVariants(existing []Variant, in []VariantInput) []Variant {
	out := make([]Variant, 0, len(in))
	for i, v := range in {
		id := uuid.NewString()
		if i < len(existing) {
			id = existing[i].ID
		}
		out = append(out, Variant{
			ID:          id,
			Name:        strings.TrimSpace(v.Name),
			PriceCents:  v.PriceCents,
			DownloadURL: v.DownloadURL,
			FileName:    v.FileName,
		})
	}
	return out
}
