package export

import (
	"github.com/ameya/tripmeta/internal/schema"
)

// column maps one output CSV header to a record lookup.
type column struct {
	header string
	value  func(rec map[string]any) any
}

// field reads a top-level record key.
func field(header, key string) column {
	return column{header: header, value: func(rec map[string]any) any {
		return rec[key]
	}}
}

// group reads one flag out of a nested boolean group.
func group(header, groupName, key string) column {
	return column{header: header, value: func(rec map[string]any) any {
		nested, ok := rec[groupName].(map[string]any)
		if !ok {
			return false
		}
		if v, ok := nested[key]; ok {
			return v
		}
		return false
	}}
}

// photo reads one photo URL slot; the "N/A" padding renders as empty.
func photo(header string, index int) column {
	return column{header: header, value: func(rec map[string]any) any {
		urls, ok := rec["photo_urls"].([]string)
		if !ok {
			if loose, ok := rec["photo_urls"].([]any); ok {
				urls = make([]string, 0, len(loose))
				for _, u := range loose {
					if s, ok := u.(string); ok {
						urls = append(urls, s)
					}
				}
			}
		}
		if index >= len(urls) || urls[index] == "N/A" {
			return ""
		}
		return urls[index]
	}}
}

var activityColumns = []column{
	field("Country", "Country"),
	field("Destination L1 (State)", "Destination L1 (State)"),
	field("Destination L2 (City)", "Destination L2 (City)"),
	field("Destination L3 (Area)", "Destination L3 (Area)"),
	field("Name", "Name"),
	field("Description", "Description"),
	field("Price for Adults", "Price_Adult_INR"),
	field("Price for Children", "Price_Child_INR"),
	field("Duration", "Duration"),
	field("Timings", "Timings"),
	field("Season / Operational Months", "Season_Operational_Months"),
	field("Must Do", "Must_Do"),
	field("Group Friendly", "Group_Friendly"),
	field("Offbeat", "Offbeat"),
	field("Historic/Cultural", "Historic_Cultural"),
	field("Party", "Party"),
	field("Pet Friendly", "Pet_Friendly"),
	field("Adventurous", "Adventurous"),
	field("Kid Friendly", "Kid_Friendly"),
	field("Romantic", "Romantic"),
	field("Wellness/Relaxation", "Wellness_Relaxation"),
	field("Senior Citizen Friendly", "Senior_Citizen_Friendly"),
	field("Inclusions", "Inclusions"),
	field("Exclusions", "Exclusions"),
	field("Google Rating", "google_rating"),
	field("Website Link", "website"),
	field("Google Maps Link", "google_maps_url"),
	photo("Photo 1", 0),
	photo("Photo 2", 1),
	photo("Photo 3", 2),
}

var diningColumns = []column{
	field("Country", "Country"),
	field("Destination L1 (State)", "Destination L1 (State)"),
	field("Destination L2 (City)", "Destination L2 (City)"),
	field("Destination L3 (Area)", "Destination L3 (Area)"),
	field("Name", "Name"),
	field("Description", "Description"),
	field("Recommended Dishes", "Recommended_Dishes"),
	group("Breakfast", "Meals_Served", "Breakfast"),
	group("Lunch", "Meals_Served", "Lunch"),
	group("Dinner", "Meals_Served", "Dinner"),
	group("Late Night", "Meals_Served", "Late_Night"),
	group("24 Hours", "Meals_Served", "24_Hours"),
	field("Timings", "opening_hours"),
	field("Can we have Private Dining?", "Private_Dining"),
	field("Can I host a Party?", "Party"),
	group("Michelin Star", "Service_Style", "Michelin_Star"),
	group("Fine Dining", "Service_Style", "Fine_Dining"),
	group("Casual Dining", "Service_Style", "Casual_Dining"),
	group("Bistro", "Service_Style", "Bistro"),
	group("Cafe", "Service_Style", "Cafe"),
	group("Bakery", "Service_Style", "Bakery"),
	group("Breweries", "Service_Style", "Breweries"),
	group("Farm to Table", "Service_Style", "Farm_to_Table"),
	group("Cocktail Bars", "Service_Style", "Cocktail_Bars"),
	group("Speakeasys", "Service_Style", "Speakeasys"),
	group("Tapas Bar", "Service_Style", "Tapas_Bar"),
	group("Rooftop Bar", "Service_Style", "Rooftop_Bar"),
	group("Dessert Spot", "Service_Style", "Dessert_Spot"),
	group("Fast Food", "Cuisine", "Fast_Food"),
	group("Modern Indian", "Cuisine", "Modern_Indian"),
	group("Indian", "Cuisine", "Indian"),
	group("Continental", "Cuisine", "Continental"),
	group("Finger Food", "Cuisine", "Finger_Food"),
	group("Burmese", "Cuisine", "Burmese"),
	group("Peruvian", "Cuisine", "Peruvian"),
	group("Lebanese", "Cuisine", "Lebanese"),
	group("Afghan", "Cuisine", "Afghan"),
	group("Malaysian", "Cuisine", "Malaysian"),
	group("Vietnamese", "Cuisine", "Vietnamese"),
	group("Pan Asian", "Cuisine", "Pan_Asian"),
	group("Mediterranean", "Cuisine", "Mediterranean"),
	group("Thai", "Cuisine", "Thai"),
	group("Italian", "Cuisine", "Italian"),
	group("Japanese", "Cuisine", "Japanese"),
	group("Mexican", "Cuisine", "Mexican"),
	group("Modern European", "Cuisine", "Modern_European"),
	group("Contemporary Dining", "Cuisine", "Contemporary_Dining"),
	group("Molecular Gastronomy", "Cuisine", "Molecular_Gastronomy"),
	group("Vegetarian + Non Vegetarian", "Dietary", "Vegetarian_Non_Vegetarian"),
	group("Vegetarian", "Dietary", "Vegetarian"),
	group("Vegan Options", "Dietary", "Vegan_Options"),
	group("Seafood Speciality", "Dietary", "Seafood_Speciality"),
	group("Couple Friendly", "Guest_Persona", "Couple_Friendly"),
	group("Family Friendly", "Guest_Persona", "Family_Friendly"),
	group("Especially For Kids", "Guest_Persona", "Especially_For_Kids"),
	group("No Kids Allowed", "Guest_Persona", "No_Kids_Allowed"),
	group("Senior Friendly", "Guest_Persona", "Senior_Friendly"),
	group("Pet Friendly", "Guest_Persona", "Pet_Friendly"),
	group("Romantic / Intimate", "Vibe", "Romantic_Intimate"),
	group("Refined / Elegant", "Vibe", "Refined_Elegant"),
	group("Luxurious / Formal", "Vibe", "Luxurious_Formal"),
	group("Bohemian / Playful", "Vibe", "Bohemian_Playful"),
	group("Modern / Chic", "Vibe", "Modern_Chic"),
	group("Vibrant / Lively", "Vibe", "Vibrant_Lively"),
	group("Relaxed / Cozy", "Vibe", "Relaxed_Cozy"),
	field("Reservation Recommended", "Reservation_Recommended"),
	field("Alcohol Served?", "Alcohol_Served"),
	field("Google Rating", "google_rating"),
	field("Website Link", "website"),
	field("Google Maps Link", "google_maps_url"),
	photo("Photo 1", 0),
	photo("Photo 2", 1),
	photo("Photo 3", 2),
}

var accommodationColumns = []column{
	field("Country", "Country"),
	field("Destination L1 (State)", "Destination L1 (State)"),
	field("Destination L2 (City)", "Destination L2 (City)"),
	field("Destination L3 (Area)", "Destination L3 (Area)"),
	field("Category", "Category"),
	field("Name", "Name"),
	field("Description", "Description"),
	field("Pool", "Pool"),
	field("View", "View"),
	field("Pet Friendly", "Pet Friendly"),
	field("Kid Friendly", "Kid Friendly"),
	field("Senior Citizen Friendly", "Senior Citizen Friendly"),
	field("Romantic", "Romantic"),
	field("Google Rating", "Google Rating"),
	field("Website Link", "website"),
	field("Google Maps Link", "google_maps_url"),
	photo("Photo 1", 0),
	photo("Photo 2", 1),
	photo("Photo 3", 2),
}

// columnsFor returns the ordered output columns for a category.
func columnsFor(cat schema.Category) []column {
	switch cat {
	case schema.CategoryDining:
		return diningColumns
	case schema.CategoryAccommodation:
		return accommodationColumns
	default:
		return activityColumns
	}
}
