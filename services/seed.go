package services

import "aahar-telegram/models"

func img(id string) string {
	return "https://images.unsplash.com/" + id + "?ixlib=rb-4.0.3&w=400"
}

// DefaultCatalog is the Aahar Tandoori menu the application starts with.
// Item ids are unique across the whole catalog, not per category.
func DefaultCatalog() []models.MenuCategory {
	return []models.MenuCategory{
		{
			ID:   "1",
			Name: "Biriyani & Rice",
			Items: []models.MenuItem{
				{
					ID:          "1",
					Name:        "Chicken Biryani",
					Description: "Fragrant basmati rice cooked with tender chicken and aromatic spices",
					Price:       22000,
					HalfPrice:   12000,
					Image:       img("photo-1563379091339-03246963d96f"),
					CookingTime: "25 min",
					SpicyLevel:  2,
					Available:   true,
				},
				{
					ID:          "2",
					Name:        "Hyderabad Biryani",
					Description: "Authentic Hyderabadi dum biryani with rich flavors and tender meat",
					Price:       25000,
					HalfPrice:   13000,
					Image:       img("photo-1599043513900-ed6fe01d3833"),
					CookingTime: "30 min",
					SpicyLevel:  3,
					Available:   true,
				},
				{
					ID:          "3",
					Name:        "Mutton Biryani",
					Description: "Succulent mutton pieces cooked with fragrant rice and spices",
					Price:       28000,
					Image:       img("photo-1601050690597-df0568f70950"),
					CookingTime: "35 min",
					SpicyLevel:  2,
					Available:   true,
				},
				{
					ID:          "4",
					Name:        "Paneer Biryani",
					Description: "Flavorful biryani with soft paneer cubes and aromatic rice",
					Price:       18000,
					Image:       img("photo-1589302168068-964664d93dc0"),
					CookingTime: "20 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "5",
					Name:        "Egg Biryani",
					Description: "Delicious biryani with boiled eggs and special spices",
					Price:       16000,
					Image:       img("photo-1598214886806-c87ed84e5a1b"),
					CookingTime: "20 min",
					SpicyLevel:  2,
					Available:   true,
				},
			},
		},
		{
			ID:   "2",
			Name: "Rice",
			Items: []models.MenuItem{
				{
					ID:          "6",
					Name:        "Plain Rice",
					Description: "Steamed basmati rice",
					Price:       9000,
					Image:       img("photo-1536304993881-ff6e9eefa2a6"),
					CookingTime: "15 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "7",
					Name:        "Jeera Rice",
					Description: "Basmati rice tempered with cumin seeds",
					Price:       12000,
					Image:       img("photo-1512058564366-18510be2db19"),
					CookingTime: "15 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "8",
					Name:        "Veg Fried Rice",
					Description: "Stir-fried rice with fresh vegetables",
					Price:       13000,
					Image:       img("photo-1603133872878-684f270fb8f5"),
					CookingTime: "20 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "9",
					Name:        "Egg Fried Rice",
					Description: "Fried rice with scrambled eggs and vegetables",
					Price:       16000,
					Image:       img("photo-1641865750370-645fb8c6e5b4"),
					CookingTime: "20 min",
					SpicyLevel:  1,
					Available:   true,
				},
				{
					ID:          "10",
					Name:        "Chicken Fried Rice",
					Description: "Flavorful fried rice with tender chicken pieces",
					Price:       18000,
					Image:       img("photo-1631452180519-c014fe946bc7"),
					CookingTime: "25 min",
					SpicyLevel:  2,
					Available:   true,
				},
				{
					ID:          "11",
					Name:        "Mix Fried Rice",
					Description: "Special fried rice with chicken, eggs, and vegetables",
					Price:       22000,
					Image:       img("photo-1603133872642-9dbe4d25887e"),
					CookingTime: "25 min",
					SpicyLevel:  2,
					Available:   true,
				},
			},
		},
		{
			ID:   "3",
			Name: "Roti",
			Items: []models.MenuItem{
				{
					ID:          "12",
					Name:        "Plain Roti",
					Description: "Traditional Indian whole wheat bread",
					Price:       1000,
					Image:       img("photo-1601050690597-df0568f70950"),
					CookingTime: "5 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "13",
					Name:        "Plain Butter Roti",
					Description: "Soft roti with fresh butter",
					Price:       1500,
					Image:       img("photo-1546833999-b9f581a1996d"),
					CookingTime: "5 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "14",
					Name:        "Tandoori Roti",
					Description: "Traditional Indian bread baked in clay tandoor",
					Price:       1500,
					Image:       img("photo-1572802419224-296b0aeee0d9"),
					CookingTime: "7 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "15",
					Name:        "Tandoori Butter Roti",
					Description: "Tandoori roti with fresh butter",
					Price:       2000,
					Image:       img("photo-1565299624946-b28f40a0ca4b"),
					CookingTime: "7 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "16",
					Name:        "Tandoori Butter Naan",
					Description: "Leavened bread with butter from tandoor",
					Price:       6000,
					Image:       img("photo-1565299507177-b0ac66763828"),
					CookingTime: "10 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "17",
					Name:        "Plain Naan",
					Description: "Classic leavened white bread",
					Price:       5000,
					Image:       img("photo-1555949969-aa4bd76539d0"),
					CookingTime: "10 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "18",
					Name:        "Garlic Naan",
					Description: "Soft naan bread topped with fresh garlic and herbs",
					Price:       7000,
					Image:       img("photo-1565299588453-b8ec840b7c7e"),
					CookingTime: "10 min",
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "19",
					Name:        "Paneer Kulcha Naan",
					Description: "Stuffed bread with spiced paneer filling",
					Price:       10000,
					Image:       img("photo-1555949969-aa4bd76539d0"),
					CookingTime: "12 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "20",
					Name:        "Masala Kulcha",
					Description: "Spiced stuffed bread with potato and herbs",
					Price:       12000,
					Image:       img("photo-1633945274417-ab438e34b372"),
					CookingTime: "12 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
			},
		},
		{
			ID:   "4",
			Name: "Paratha",
			Items: []models.MenuItem{
				{
					ID:          "21",
					Name:        "Aloo Paratha",
					Description: "Whole wheat bread stuffed with spiced potatoes",
					Price:       6000,
					Image:       img("photo-1631452180519-c014fe946bc7"),
					CookingTime: "15 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "22",
					Name:        "Onion Paratha",
					Description: "Flaky paratha stuffed with seasoned onions",
					Price:       7000,
					Image:       img("photo-1633945274417-ab438e34b372"),
					CookingTime: "15 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "23",
					Name:        "Paneer Paratha",
					Description: "Paratha filled with spiced cottage cheese",
					Price:       8000,
					Image:       img("photo-1555949969-aa4bd76539d0"),
					CookingTime: "15 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "24",
					Name:        "Paneer Kulcha",
					Description: "Soft kulcha stuffed with paneer filling",
					Price:       12000,
					Image:       img("photo-1555949969-aa4bd76539d0"),
					CookingTime: "12 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "25",
					Name:        "Veg Kulcha",
					Description: "Kulcha stuffed with mixed vegetables",
					Price:       9000,
					Image:       img("photo-1633945274417-ab438e34b372"),
					CookingTime: "12 min",
					SpicyLevel:  1,
					Veg:         true,
					Available:   true,
				},
				{
					ID:          "26",
					Name:        "Masala Kulcha",
					Description: "Spiced kulcha with special masala filling",
					Price:       12000,
					Image:       img("photo-1633945274417-ab438e34b372"),
					CookingTime: "12 min",
					SpicyLevel:  2,
					Veg:         true,
					Available:   true,
				},
			},
		},
	}
}
