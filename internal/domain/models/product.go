package models

// Product is one catalog item. Price is stored in paise (integer
// minor-currency units). Name and Description are stored in English and
// machine-translated per request when a language code is supplied.
type Product struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"`
	Category    string `bson:"category" json:"category"`
	ImageURL    string `bson:"image_url" json:"imageUrl"`
}
