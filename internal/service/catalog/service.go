package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/pkg/clients/translate"
)

// Store defines the read operations the catalog needs from persistence.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
}

// Service serves the product catalog and the blog content hub. Product text
// is stored in English and machine-translated per request when the caller
// asks for another supported language.
type Service struct {
	store      Store
	translator translate.Client
	logger     *zap.Logger
}

// NewService wires a catalog service. translator may be nil, in which case
// every language falls back to the stored English text.
func NewService(store Store, translator translate.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, translator: translator, logger: logger}
}

// Products lists the catalog, localized into lang when possible. A failed
// translation is logged and the English text kept; it never fails the
// request.
func (s *Service) Products(ctx context.Context, lang string) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	lang = models.NormalizeLanguage(lang)
	if lang == models.DefaultLanguage || s.translator == nil {
		return products, nil
	}

	for i := range products {
		products[i].Name = s.translateOrKeep(ctx, products[i].Name, lang)
		products[i].Description = s.translateOrKeep(ctx, products[i].Description, lang)
	}

	return products, nil
}

// Posts lists all blog posts, newest first.
func (s *Service) Posts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	return posts, nil
}

// Post fetches a single blog post by ID.
func (s *Service) Post(ctx context.Context, id string) (models.Post, error) {
	return s.store.GetPost(ctx, id)
}

func (s *Service) translateOrKeep(ctx context.Context, text, lang string) string {
	translated, err := s.translator.Translate(ctx, text, models.DefaultLanguage, lang)
	if err != nil {
		s.logger.Warn("translation failed, keeping source text",
			zap.String("lang", lang), zap.Error(err))
		return text
	}
	return translated
}
