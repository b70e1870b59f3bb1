package config

import (
	"log"
	"time"

	"rasaroots/models"

	"github.com/lib/pq"
)

// SeedReferenceData loads the catalog, loyalty tiers, seasonal highlights and
// ingredient options on an empty database. Idempotent: each table is only
// seeded when it has no rows.
func SeedReferenceData() {
	seedDishes()
	seedTiers()
	seedSeasonal()
	seedIngredients()
}

func seedDishes() {
	var count int64
	DB.Model(&models.Dish{}).Count(&count)
	if count > 0 {
		return
	}

	dishes := []models.Dish{
		{
			ID: "dish-masala-dosa", Name: "Masala Dosa", Region: "South", State: "Karnataka",
			Description: "Crisp fermented crepe wrapped around spiced potato",
			SpiceLevel:  2, Price: 140,
			Dietary:   pq.StringArray{"vegetarian", "gluten-free"},
			Allergens: pq.StringArray{},
			Macros:    models.Macros{Calories: 420, Protein: 9, Carbs: 68, Fats: 12},
			Vitamins:  pq.StringArray{"B1", "C"}, Minerals: pq.StringArray{"Iron"},
			SeasonalTags: pq.StringArray{"breakfast"},
		},
		{
			ID: "dish-rajma-chawal", Name: "Rajma Chawal", Region: "North", State: "Punjab",
			Description: "Slow-simmered kidney beans over steamed rice",
			SpiceLevel:  2, Price: 160,
			Dietary:   pq.StringArray{"vegetarian", "vegan"},
			Allergens: pq.StringArray{},
			Macros:    models.Macros{Calories: 520, Protein: 18, Carbs: 82, Fats: 10},
			Vitamins:  pq.StringArray{"B9"}, Minerals: pq.StringArray{"Iron", "Magnesium"},
			SeasonalTags: pq.StringArray{"comfort"},
		},
		{
			ID: "dish-macher-jhol", Name: "Macher Jhol", Region: "East", State: "West Bengal",
			Description: "Light mustard fish curry with seasonal vegetables",
			SpiceLevel:  3, Price: 220,
			Dietary:   pq.StringArray{"non-vegetarian"},
			Allergens: pq.StringArray{"fish", "mustard"},
			Macros:    models.Macros{Calories: 380, Protein: 32, Carbs: 14, Fats: 18},
			Vitamins:  pq.StringArray{"D", "B12"}, Minerals: pq.StringArray{"Selenium"},
			SeasonalTags: pq.StringArray{"monsoon"},
		},
		{
			ID: "dish-dhokla", Name: "Khaman Dhokla", Region: "West", State: "Gujarat",
			Description: "Steamed gram-flour sponge with curry-leaf tempering",
			SpiceLevel:  1, Price: 110,
			Dietary:   pq.StringArray{"vegetarian", "jain", "gluten-free"},
			Allergens: pq.StringArray{"chickpea"},
			Macros:    models.Macros{Calories: 280, Protein: 11, Carbs: 38, Fats: 8},
			Vitamins:  pq.StringArray{"B6"}, Minerals: pq.StringArray{"Calcium"},
			SeasonalTags:  pq.StringArray{"snack"},
			IsChefSpecial: true,
		},
		{
			ID: "dish-litti-chokha", Name: "Litti Chokha", Region: "Central", State: "Bihar",
			Description: "Fire-roasted wheat rounds with smoked aubergine mash",
			SpiceLevel:  3, Price: 130,
			Dietary:   pq.StringArray{"vegetarian", "vegan"},
			Allergens: pq.StringArray{"gluten"},
			Macros:    models.Macros{Calories: 460, Protein: 14, Carbs: 70, Fats: 14},
			Vitamins:  pq.StringArray{"E"}, Minerals: pq.StringArray{"Zinc"},
			SeasonalTags:   pq.StringArray{"winter"},
			IsDishOfTheDay: true,
		},
		{
			ID: "dish-chicken-chettinad", Name: "Chicken Chettinad", Region: "South", State: "Tamil Nadu",
			Description: "Pepper-forward chicken curry from the Chettiar kitchens",
			SpiceLevel:  5, Price: 260,
			Dietary:   pq.StringArray{"non-vegetarian"},
			Allergens: pq.StringArray{},
			Macros:    models.Macros{Calories: 540, Protein: 42, Carbs: 12, Fats: 34},
			Vitamins:  pq.StringArray{"B3", "B12"}, Minerals: pq.StringArray{"Iron"},
			SeasonalTags: pq.StringArray{"dinner"},
		},
	}

	if err := DB.Create(&dishes).Error; err != nil {
		log.Printf("dish seed failed: %v", err)
	}
}

func seedTiers() {
	var count int64
	DB.Model(&models.LoyaltyTier{}).Count(&count)
	if count > 0 {
		return
	}

	tiers := []models.LoyaltyTier{
		{
			ID: "bronze", Name: "Bronze Tastemaker", MinPoints: 0, Color: "#CD7F32",
			Benefits: pq.StringArray{"Birthday dessert", "Early menu previews"},
		},
		{
			ID: "silver", Name: "Silver Connoisseur", MinPoints: 200, Color: "#C0C0C0",
			Benefits: pq.StringArray{"Free delivery", "Monthly chef tasting"},
		},
		{
			ID: "gold", Name: "Gold Epicurean", MinPoints: 500, Color: "#FFD700",
			Benefits: pq.StringArray{"Priority kitchen queue", "Festival thali invites"},
		},
		{
			ID: "saffron-elite", Name: "Saffron Elite", MinPoints: 1200, Color: "#F4C430",
			Benefits: pq.StringArray{"Concierge dining", "Chef's table residency"},
		},
	}

	if err := DB.Create(&tiers).Error; err != nil {
		log.Printf("tier seed failed: %v", err)
	}
}

func seedSeasonal() {
	var count int64
	DB.Model(&models.SeasonalDish{}).Count(&count)
	if count > 0 {
		return
	}

	seasonal := []models.SeasonalDish{
		{
			ID: "seasonal-ugadi", Title: "Ugadi Pachadi Bowl", Festival: "Ugadi",
			Description:    "Six tastes of the new year in one bowl",
			AvailableUntil: time.Now().AddDate(0, 2, 0),
			Highlight:      "Festival Feature", DishID: "dish-masala-dosa",
			PromoLabel: "Festival week", PromoDiscount: 15,
		},
		{
			ID: "seasonal-chefs-dhokla", Title: "Chef's Dhokla Flight", Festival: "",
			Description:    "Three regional dhokla styles, one plate",
			AvailableUntil: time.Now().AddDate(0, 1, 0),
			Highlight:      "Chef's Special", DishID: "dish-dhokla",
		},
	}

	if err := DB.Create(&seasonal).Error; err != nil {
		log.Printf("seasonal seed failed: %v", err)
	}
}

func seedIngredients() {
	var count int64
	DB.Model(&models.IngredientOption{}).Count(&count)
	if count > 0 {
		return
	}

	ingredients := []models.IngredientOption{
		{
			ID: "ing-paneer", Name: "Paneer",
			RegionAvailability: pq.StringArray{"North", "West", "Central"},
			Nutrition:          models.Macros{Calories: 265, Protein: 18, Carbs: 4, Fats: 20},
			SupportsDietary:    pq.StringArray{"vegetarian"},
			Allergens:          pq.StringArray{"dairy"},
			Pairings:           pq.StringArray{"spinach", "butter masala"},
		},
		{
			ID: "ing-millet", Name: "Foxtail Millet",
			RegionAvailability: pq.StringArray{"South", "Central"},
			Nutrition:          models.Macros{Calories: 190, Protein: 6, Carbs: 36, Fats: 2},
			SupportsDietary:    pq.StringArray{"vegetarian", "vegan", "gluten-free", "jain"},
			Allergens:          pq.StringArray{},
			Pairings:           pq.StringArray{"sambar", "coconut chutney"},
		},
		{
			ID: "ing-prawn", Name: "Tiger Prawns",
			RegionAvailability: pq.StringArray{"East", "West", "South"},
			Nutrition:          models.Macros{Calories: 120, Protein: 24, Carbs: 0, Fats: 2},
			SupportsDietary:    pq.StringArray{"non-vegetarian"},
			Allergens:          pq.StringArray{"shellfish"},
			Pairings:           pq.StringArray{"curry leaf", "kokum"},
		},
	}

	if err := DB.Create(&ingredients).Error; err != nil {
		log.Printf("ingredient seed failed: %v", err)
	}
}
