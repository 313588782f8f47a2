package store

import (
	"context"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

// SeedListings returns the demo listings loaded at startup. IDs are assigned
// by the store on Append, so appending these in order keeps the first entry
// at id 1.
func SeedListings() []model.Listing {
	return []model.Listing{
		{
			Title:       "Gently Used Wooden Chair",
			Description: "Strong, classic dining chair. No major scratches or stains.",
			Category:    "Furniture",
			Price:       uintPtr(15),
			PostedBy:    "Alice",
			Img:         strPtr("https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=300&q=80"),
		},
		{
			Title:       "Children's Storybooks Collection",
			Description: "A bundle of 8 bedtime favorites. Free to a good home!",
			Category:    "Books",
			IsDonation:  true,
			PostedBy:    "Ben",
			Img:         strPtr("https://images.unsplash.com/photo-1519681393784-d120267933ba?auto=format&fit=crop&w=300&q=80"),
		},
		{
			Title:       "Kitchen Blender (Working)",
			Description: "Just upgraded. Works perfectly and comes with all parts.",
			Category:    "Appliances",
			Price:       uintPtr(10),
			PostedBy:    "Charlie",
			Img:         strPtr("https://images.unsplash.com/photo-1519864600565-cb8ae3e161ae?auto=format&fit=crop&w=300&q=80"),
		},
		{
			Title:       "Warm Winter Jacket",
			Description: "Men's Large. No rips, very warm. Available for donation.",
			Category:    "Clothing",
			IsDonation:  true,
			PostedBy:    "Diana",
			Img:         strPtr("https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=300&q=80"),
		},
	}
}

// Seed appends every seed listing to the store.
func Seed(ctx context.Context, st ListingStore) error {
	for _, l := range SeedListings() {
		if _, err := st.Append(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}
