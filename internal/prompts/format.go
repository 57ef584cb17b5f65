package prompts

// FormatActivity instructs the formatting model to reshape research output
// into the strict activity schema with typed values.
const FormatActivity = `
You are a data formatting and validation expert. Format the following travel data into a specific JSON structure with strict validation.

USER INPUT:
Place Name: {{.PlaceName}}

PLACES SEARCH DATA:
{{.PlaceData}}

RESEARCH DATA:
{{.ResearchData}}

FORMATTING AND VALIDATION INSTRUCTIONS:
Create a JSON object with exactly these fields, applying strict validation rules:

1. Country: Extract from places search data/research data whichever is more accurate (Ex - India, USA, etc.)
2. State: Extract from places search data/research data whichever is more accurate (Ex - Karnataka, Maharashtra, etc.)
3. City: Extract from places search data/research data whichever is more accurate (Ex - Bengaluru, Mumbai, etc.)
4. Area: Extract from places search data/research data whichever is more accurate (Ex - Whitefield, Bandra, etc.)
5. Category: Extract from research data (activity type like Historical Site, Adventure Activity, etc.)
6. Description: Choose the best description between places search and research data (prioritize the more detailed one)
7. Price_Adult_INR: Extract from research data - MUST be a number only (e.g., 500, not "500 INR")
8. Price_Child_INR: Extract from research data - MUST be a number only (e.g., 250, not "250 INR")
9. Duration: Extract from research data - MUST be a number representing hours only (e.g., 2.5 for 2.5 hours, 0.5 for 30 minutes, 8 for full day, not "2-3 hours")
10. Timings: Extract from research data (e.g., "9:00 AM - 6:00 PM")
11. Season_Operational_Months: Extract from research data (e.g., "October to March")
12. Inclusions: Extract from research data
13. Exclusions: Extract from research data
14-24. Must_Do, Group_Friendly, Offbeat, Historic_Cultural, Party, Pet_Friendly, Adventurous, Kid_Friendly, Romantic, Wellness_Relaxation, Senior_Citizen_Friendly: each MUST be exactly true or false (boolean, not "Yes"/"No" strings)

CRITICAL VALIDATION RULES:
- Duration: Convert any text duration to numeric hours (e.g., "2-3 hours" -> 2.5, "30 minutes" -> 0.5, "full day" -> 8, "half day" -> 4)
- Prices: Remove any currency symbols, text, or formatting - return only the number
- Boolean fields: Convert "Yes"/"True"/"yes" to true, "No"/"False"/"no" to false
- If a field is missing or unclear, use appropriate defaults:
  - Text fields: "Not Available"
  - Boolean fields: false
  - Numeric fields: 0
- Ensure all boolean fields are actual boolean values (true/false), not strings
- Ensure Price_Adult_INR and Price_Child_INR are numbers, not strings
- Ensure Duration is a number, not a string

VALIDATION EXAMPLES:
- "2-3 hours" -> Duration: 2.5
- "30 minutes" -> Duration: 0.5
- "Full day experience" -> Duration: 8
- "Half day tour" -> Duration: 4
- "Yes" -> true
- "No" -> false
- "500 INR" -> 500
- "Free entry" -> 0

Return ONLY the JSON object with properly validated data types, no additional text.

Expected JSON structure:
{
    "Country": "string",
    "Destination L1 (State)": "string",
    "Destination L2 (City)": "string",
    "Destination L3 (Area)": "string",
    "Category": "string",
    "Description": "string",
    "Price_Adult_INR": "number",
    "Price_Child_INR": "number",
    "Duration": "number",
    "Timings": "string",
    "Season_Operational_Months": "string",
    "Inclusions": "string",
    "Exclusions": "string",
    "Must_Do": "boolean",
    "Group_Friendly": "boolean",
    "Offbeat": "boolean",
    "Historic_Cultural": "boolean",
    "Party": "boolean",
    "Pet_Friendly": "boolean",
    "Adventurous": "boolean",
    "Kid_Friendly": "boolean",
    "Romantic": "boolean",
    "Wellness_Relaxation": "boolean",
    "Senior_Citizen_Friendly": "boolean"
}
`

// FormatDining instructs the formatting model to produce the dining schema
// with its nested boolean groups.
const FormatDining = `
You are a data formatting and validation expert specializing in restaurant and dining establishment data. Format the following dining data into a specific JSON structure with strict validation.

USER INPUT:
Restaurant Name: {{.PlaceName}}

PLACES SEARCH DATA:
{{.PlaceData}}

RESEARCH DATA:
{{.ResearchData}}

FORMATTING AND VALIDATION INSTRUCTIONS:
Create a JSON object with exactly these fields and nested structures, applying strict validation rules:

1. Country: Extract from places search data/research data whichever is more accurate (Ex - India, USA, etc.)
2. State: Extract from places search data/research data whichever is more accurate (Ex - Karnataka, Maharashtra, etc.)
3. City: Extract from places search data/research data whichever is more accurate (Ex - Bengaluru, Mumbai, etc.)
4. Area: Extract from places search data/research data whichever is more accurate (Ex - Whitefield, Bandra, etc.)
5. Description: Choose the best description between places search and research data (prioritize the more detailed one)
6. Recommended_Dishes: Extract from research data (comma-separated list of signature dishes)
7. Meals_Served: Nested object with boolean values based on opening hours and restaurant type
8. Private_Dining: MUST be exactly true or false (boolean)
9. Party: MUST be exactly true or false (boolean)
10. Service_Style: Nested object with boolean values for each service style
11. Cuisine: Nested object with boolean values for each cuisine type
12. Dietary: Nested object with boolean values for dietary options
13. Guest_Persona: Nested object with boolean values for guest suitability
14. Vibe: Nested object with boolean values for atmosphere types
15. Reservation_Recommended: MUST be exactly true or false (boolean)
16. Alcohol_Served: MUST be exactly true or false (boolean)

CRITICAL VALIDATION RULES:
- ALL boolean fields must be actual boolean values (true/false), not strings ("yes"/"no")
- Convert "Yes"/"True"/"yes" to true, "No"/"False"/"no" to false
- If a field is missing or unclear, use appropriate defaults:
  - Text fields: "N/A"
  - Boolean fields: false
- Ensure nested objects maintain their structure exactly as specified

Expected JSON structure:
{
    "Country": "string",
    "Destination L1 (State)": "string",
    "Destination L2 (City)": "string",
    "Destination L3 (Area)": "string",
    "Description": "string",
    "Recommended_Dishes": "string",
    "Meals_Served": {
        "Breakfast": boolean,
        "Lunch": boolean,
        "Dinner": boolean,
        "Late_Night": boolean,
        "24_Hours": boolean
    },
    "Private_Dining": boolean,
    "Party": boolean,
    "Service_Style": {
        "Michelin_Star": boolean,
        "Fine_Dining": boolean,
        "Casual_Dining": boolean,
        "Bistro": boolean,
        "Cafe": boolean,
        "Bakery": boolean,
        "Breweries": boolean,
        "Farm_to_Table": boolean,
        "Cocktail_Bars": boolean,
        "Speakeasys": boolean,
        "Tapas_Bar": boolean,
        "Rooftop_Bar": boolean,
        "Dessert_Spot": boolean
    },
    "Cuisine": {
        "Fast_Food": boolean,
        "Modern_Indian": boolean,
        "Indian": boolean,
        "Continental": boolean,
        "Finger_Food": boolean,
        "Burmese": boolean,
        "Peruvian": boolean,
        "Lebanese": boolean,
        "Afghan": boolean,
        "Malaysian": boolean,
        "Vietnamese": boolean,
        "Pan_Asian": boolean,
        "Mediterranean": boolean,
        "Thai": boolean,
        "Italian": boolean,
        "Japanese": boolean,
        "Mexican": boolean,
        "Modern_European": boolean,
        "Contemporary_Dining": boolean,
        "Molecular_Gastronomy": boolean
    },
    "Dietary": {
        "Vegetarian_Non_Vegetarian": boolean,
        "Vegetarian": boolean,
        "Vegan_Options": boolean,
        "Seafood_Speciality": boolean
    },
    "Guest_Persona": {
        "Couple_Friendly": boolean,
        "Family_Friendly": boolean,
        "Especially_For_Kids": boolean,
        "No_Kids_Allowed": boolean,
        "Senior_Friendly": boolean,
        "Pet_Friendly": boolean
    },
    "Vibe": {
        "Romantic_Intimate": boolean,
        "Refined_Elegant": boolean,
        "Luxurious_Formal": boolean,
        "Bohemian_Playful": boolean,
        "Modern_Chic": boolean,
        "Vibrant_Lively": boolean,
        "Relaxed_Cozy": boolean
    },
    "Reservation_Recommended": boolean,
    "Alcohol_Served": boolean
}

IMPORTANT NOTES:
- Base meal service determination on opening hours and restaurant type
- Be conservative with boolean values - only set to true if there's clear evidence
- Maintain exact field names and structure as specified
- All nested objects must include all specified sub-fields
- Text fields should be descriptive and informative

Return ONLY the JSON object with properly validated data types and structure, no additional text.
`

// FormatAccommodation instructs the formatting model to produce the
// 14-field accommodation schema.
const FormatAccommodation = `
You are a data formatting expert. Format the following travel data into a specific JSON structure.

USER INPUT:
Place Name: {{.PlaceName}}

PLACES SEARCH DATA:
{{.PlaceData}}

RESEARCH RECOMMENDATION DATA:
{{.ResearchData}}

FORMATTING INSTRUCTIONS:
Create a JSON object with exactly these 14 fields:

1. Country: Extract from places search data/research data whichever is more accurate (Ex - India, USA, etc.)
2. State: Extract from places search data/research data whichever is more accurate (Ex - Karnataka, Maharashtra, etc.)
3. City: Extract from places search data/research data whichever is more accurate (Ex - Bengaluru, Mumbai, etc.)
4. Area: Extract from places search data/research data whichever is more accurate (Ex - Whitefield, Bandra, etc.)
5. Category: Extract from research data (must be one of: "Accomodation - Wellness", "Accomodation - Boutique / Villa / Homestay", "Accomodation - Haveli", "Accomodation - Hotel / Resorts")
6. Name: Use the original place name from user input
7. Description: Choose the best description between places search and research data (prioritize the more detailed and informative one)
8. Pool: Convert to boolean true/false based on the research analysis
9. Pet Friendly: Convert to boolean true/false based on the research analysis
10. View: Convert to boolean true/false based on the research analysis
11. Kid Friendly: Convert to boolean true/false based on the research analysis
12. Romantic: Convert to boolean true/false based on the research analysis
13. Senior Citizen Friendly: Convert to boolean true/false based on the research analysis
14. Google Rating: Extract from places search data

IMPORTANT RULES:
- All boolean fields (8-13) must be exactly true or false (not "Yes"/"No" strings)
- If a field is missing or unclear, use appropriate defaults:
  - Text fields: "N/A"
  - Boolean fields: false
  - Numeric fields: "N/A"
- Category must match one of the 4 specified categories exactly
- Name should be the exact user input
- Choose the most informative description

Return ONLY the JSON object, no additional text.

Expected JSON structure:
{
    "Country": "string",
    "Destination L1 (State)": "string",
    "Destination L2 (City)": "string",
    "Destination L3 (Area)": "string",
    "Category": "string",
    "Name": "string",
    "Description": "string",
    "Pool": "boolean",
    "Pet Friendly": "boolean",
    "View": "boolean",
    "Kid Friendly": "boolean",
    "Romantic": "boolean",
    "Senior Citizen Friendly": "boolean",
    "Google Rating": "string"
}
`
