package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// Prices are in paise per bag/pack.
var seedProducts = []models.Product{
	{
		ID:          "cattle-feed-pellets-50kg",
		Name:        "Godhan Cattle Feed Pellets (50 kg)",
		Description: "Balanced compound feed pellets for lactating cows and buffaloes, 20% crude protein.",
		Price:       145000,
		Category:    "Cattle Feed",
		ImageURL:    "/images/products/cattle-feed-pellets.jpg",
	},
	{
		ID:          "calf-starter-25kg",
		Name:        "Godhan Calf Starter (25 kg)",
		Description: "Starter meal for calves from two weeks to six months, fortified with vitamins A and D3.",
		Price:       92000,
		Category:    "Cattle Feed",
		ImageURL:    "/images/products/calf-starter.jpg",
	},
	{
		ID:          "buffalo-special-50kg",
		Name:        "Godhan Buffalo Special (50 kg)",
		Description: "High-energy mash for Murrah and other dairy buffaloes in peak lactation.",
		Price:       152000,
		Category:    "Cattle Feed",
		ImageURL:    "/images/products/buffalo-special.jpg",
	},
	{
		ID:          "goat-grower-25kg",
		Name:        "Godhan Goat Grower (25 kg)",
		Description: "Concentrate mix for growing and milking goats, suited to stall-fed units.",
		Price:       88000,
		Category:    "Goat Feed",
		ImageURL:    "/images/products/goat-grower.jpg",
	},
	{
		ID:          "mineral-mixture-5kg",
		Name:        "Godhan Mineral Mixture (5 kg)",
		Description: "Chelated mineral mixture with calcium, phosphorus and trace elements for all ruminants.",
		Price:       65000,
		Category:    "Supplements",
		ImageURL:    "/images/products/mineral-mixture.jpg",
	},
	{
		ID:          "salt-lick-brick",
		Name:        "Godhan Salt Lick Brick (3 kg)",
		Description: "Compressed salt brick for free-choice licking in the stall or paddock.",
		Price:       18000,
		Category:    "Supplements",
		ImageURL:    "/images/products/salt-lick.jpg",
	},
	{
		ID:          "silage-bale-40kg",
		Name:        "Godhan Maize Silage Bale (40 kg)",
		Description: "Vacuum-packed maize silage bale, green-fodder substitute for the dry season.",
		Price:       42000,
		Category:    "Fodder",
		ImageURL:    "/images/products/silage-bale.jpg",
	},
	{
		ID:          "urea-molasses-block",
		Name:        "Godhan Urea Molasses Block (3 kg)",
		Description: "Lick block supplying degradable nitrogen and energy with dry-roughage diets.",
		Price:       22000,
		Category:    "Supplements",
		ImageURL:    "/images/products/umb-block.jpg",
	},
}

var seedPosts = []models.Post{
	{
		ID:          "balanced-ration-basics",
		Title:       "Balanced Ration Basics for Dairy Cattle",
		Author:      "Godhan Feeds Team",
		Excerpt:     "Why green fodder, dry fodder and concentrate each have a fixed job in the daily ration.",
		Body:        "A dairy animal's ration has three pillars. Green fodder supplies carotene and keeps the rumen active; dry fodder adds the long fibre that drives cud chewing; concentrate carries the protein and energy that milk production actually draws on. Feeding any one of them in excess wastes money and can upset digestion. Start from a breed-appropriate baseline and adjust for body weight, pregnancy and health, and split the concentrate between the morning and evening milkings.",
		ImageURL:    "/images/posts/balanced-ration.jpg",
		PublishedAt: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "mineral-mixture-matters",
		Title:       "Why a Daily Mineral Mixture Matters",
		Author:      "Godhan Feeds Team",
		Excerpt:     "Calcium, phosphorus and trace minerals decide fertility and milk yield more than most farmers expect.",
		Body:        "Indian fodders are chronically short of phosphorus and several trace elements. A lactating cow pulls calcium into every litre of milk, and a pregnant animal builds the calf's skeleton from the dam's reserves. Thirty to fifty grams of a good mineral mixture every day costs less than half a litre of milk and prevents repeat breeding, milk fever and weak calves. Mix it into the concentrate so the animal cannot sort it out.",
		ImageURL:    "/images/posts/mineral-mixture.jpg",
		PublishedAt: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "feeding-pregnant-animals",
		Title:       "Feeding the Pregnant Animal: The Last Trimester",
		Author:      "Godhan Feeds Team",
		Excerpt:     "Three quarters of calf growth happens in the final three months. The ration must keep up.",
		Body:        "In the last trimester the foetus gains weight fastest while the dam's rumen space shrinks. Raise the concentrate share gradually, add ten to fifteen grams of extra mineral mixture, and keep soft green fodder in front of the animal. Avoid sudden feed changes in the final fortnight and always keep clean water within reach. Ask your veterinarian for a trimester-specific plan; the diet chart on this site is a starting point, not a substitute.",
		ImageURL:    "/images/posts/pregnant-feeding.jpg",
		PublishedAt: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "summer-fodder-planning",
		Title:       "Planning Green Fodder Through the Summer",
		Author:      "Godhan Feeds Team",
		Excerpt:     "Silage, hydroponic fodder and sorghum rotations that keep the green share of the ration alive in May.",
		Body:        "Green fodder is the first casualty of summer, and milk yield follows it down. Farmers who bale or pit silage in the maize flush of February hold their yield through June. Multi-cut sorghum and bajra napier hybrids extend the season, and a small hydroponic unit can bridge the worst weeks. When green fodder genuinely runs out, substitute silage kilo for kilo and raise the mineral mixture slightly.",
		ImageURL:    "/images/posts/summer-fodder.jpg",
		PublishedAt: time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC),
	},
}

// Seed inserts the product catalog and blog posts when their collections are
// empty. Existing data is never modified, so redeploys are safe.
func (r *Repository) Seed(ctx context.Context, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	productCount, err := r.collection(productsCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to count products before seeding: %w", err)
	}
	if productCount == 0 {
		docs := make([]interface{}, len(seedProducts))
		for i, p := range seedProducts {
			docs[i] = p
		}
		if _, err := r.collection(productsCollection).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		logger.Info("seeded product catalog", zap.Int("count", len(seedProducts)))
	}

	postCount, err := r.collection(postsCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to count posts before seeding: %w", err)
	}
	if postCount == 0 {
		docs := make([]interface{}, len(seedPosts))
		for i, p := range seedPosts {
			docs[i] = p
		}
		if _, err := r.collection(postsCollection).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
		logger.Info("seeded blog posts", zap.Int("count", len(seedPosts)))
	}

	return nil
}
