package services

import (
	"errors"

	"rasaroots/models"

	"gorm.io/gorm"
)

// CatalogService serves the dish catalog and the static seasonal/ingredient
// reference data. Reads only; catalog writes happen via the seed.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Dishes() ([]models.Dish, error) {
	var dishes []models.Dish
	err := s.db.Order("name").Find(&dishes).Error
	return dishes, err
}

// DishByID returns (nil, nil) for an unknown id: a dish that disappeared
// from the catalog is a zero contribution, not an error.
func (s *CatalogService) DishByID(id string) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.First(&dish, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dish, nil
}

func (s *CatalogService) Seasonal() ([]models.SeasonalDish, error) {
	var seasonal []models.SeasonalDish
	err := s.db.Order("available_until").Find(&seasonal).Error
	return seasonal, err
}

func (s *CatalogService) Ingredients() ([]models.IngredientOption, error) {
	var ingredients []models.IngredientOption
	err := s.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

// FilterDishes narrows a catalog listing to a dietary preference and an
// allergen exclusion set. A dish passes when the preference is "all" or
// appears in its dietary tags, and none of the excluded allergens appear in
// its allergen list. Order-preserving.
func FilterDishes(dishes []models.Dish, dietaryPref string, excludedAllergens []string) []models.Dish {
	out := make([]models.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if dietaryPref != "all" && dietaryPref != "" && !containsString(dish.Dietary, dietaryPref) {
			continue
		}
		safe := true
		for _, allergen := range excludedAllergens {
			if containsString(dish.Allergens, allergen) {
				safe = false
				break
			}
		}
		if safe {
			out = append(out, dish)
		}
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
