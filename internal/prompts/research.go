package prompts

// ResearchActivity asks the research model to ground activity attributes in
// named travel sources and return category-specific JSON.
const ResearchActivity = `
Please research and provide comprehensive information for the following place/activity using reliable and up-to-date sources such as official websites, travel guides, booking platforms, review sites, and tourism authorities:

Place/Activity Name: {{.PlaceName}}
City: {{.City}}
Search Category: {{.Category}}
Search Description: {{.Description}}
Search Rating: {{.Rating}}
Sample Reviews: {{.Reviews}}
Formatted Address: {{.Address}}

RESEARCH INSTRUCTIONS:
1. Research through multiple reliable sources including:
   - Official website and booking platforms
   - TripAdvisor, GetYourGuide, Viator, Klook
   - Local tourism authority websites
   - Travel blogs and professional guides
   - Recent visitor reviews and pricing information
   - Official government tourism sites

2. Focus on gathering accurate, current information about:
   - Exact pricing in Indian Rupees (INR)
   - Operating hours and seasonal information
   - Duration and what's included/excluded
   - Specific characteristics and suitability for different travelers

3. For pricing: Convert international prices to INR using current exchange rates. If pricing varies, provide typical/average pricing.

4. For boolean fields: Answer true only if there is clear evidence/proof. If uncertain or no evidence, answer false.

Based on your comprehensive research, provide information in JSON format:

{
    "Country": "The country of the place, extracted from the Formatted Address if it accurately describes the country of the place, else populate it with the accurate country",
    "State": "The state of the place, extracted from the Formatted Address if it accurately describes the state of the place, else populate it with the accurate state",
    "City": "The city of the place, extracted from the Formatted Address if it accurately describes the city of the place, else populate it with the accurate city",
    "Area": "The area of the place, extracted from the Formatted Address if it accurately describes the area of the place, else populate it with the accurate area",
    "Category": "Primary category of this attraction/activity (e.g., Historical Site, Adventure Activity, Cultural Experience, Entertainment, Nature/Wildlife, Religious Site, Museum, Theme Park, etc.)",
    "Description": "A detailed description of what visitors can expect, what makes this place special, and key highlights of the experience",
    "Price_Adult_INR": "Adult ticket price in Indian Rupees (number only, e.g., 500). If free, write 0. If pricing varies significantly, provide average price.",
    "Price_Child_INR": "Child ticket price in Indian Rupees (number only, e.g., 250). If same as adult or no child pricing, write same as adult price.",
    "Duration": "Average time required to cover the activity in hours (number only, e.g., 2.5 for 2.5 hours, 0.5 for 30 minutes, 8 for full day)",
    "Timings": "Operational timings (e.g., '9:00 AM - 6:00 PM', '24 hours', 'Sunrise to Sunset')",
    "Season_Operational_Months": "Best season or operational months (e.g., 'Year-round', 'October to March', 'Closed during monsoon')",
    "Inclusions": "What is included in the basic entry/experience (e.g., 'Entry ticket, Basic guided tour', 'Access to all exhibits')",
    "Exclusions": "What is not included and costs extra (e.g., 'Food and beverages, Photography charges, Special exhibitions')",
    "Must_Do": "true/false - Is this considered a must-visit attraction in the city? true only if it's widely recommended as essential.",
    "Group_Friendly": "true/false - Suitable for group visits? true only if there's evidence of group facilities/discounts.",
    "Offbeat": "true/false - Is this an offbeat/lesser-known attraction? true only if it's not mainstream/touristy.",
    "Historic_Cultural": "true/false - Does this have historical or cultural significance? true only with clear evidence.",
    "Party": "true/false - Suitable for parties/celebrations? true only if there's evidence of party facilities/nightlife.",
    "Pet_Friendly": "true/false - Are pets allowed? true only if there's clear evidence pets are welcome.",
    "Adventurous": "true/false - Involves adventure/thrill activities? true only if there are adventure elements.",
    "Kid_Friendly": "true/false - Suitable for children? true only if there's evidence of kid-friendly features.",
    "Romantic": "true/false - Suitable for couples/romantic visits? true only if there's evidence of romantic appeal.",
    "Wellness_Relaxation": "true/false - Focused on wellness/relaxation? true only if it offers wellness/spa/meditation facilities.",
    "Senior_Citizen_Friendly": "true/false - Accessible and suitable for senior citizens? true only if there's evidence of senior-friendly facilities."
}

IMPORTANT:
- Provide specific, accurate information based on current data
- For pricing, ensure amounts are in INR and realistic
- For booleans, be conservative - only answer true with clear evidence
- Use exactly true or false (lowercase) for boolean fields
- If information is not available, use "Not Available" for text fields and false for booleans

Please respond with ONLY the JSON object, no additional text.
`

// ResearchDining asks the research model for dining service, cuisine,
// dietary, persona, and vibe taxonomies.
const ResearchDining = `
Please research and provide comprehensive information for the following dining establishment using reliable and up-to-date sources such as official websites, food review platforms, dining guides, and restaurant directories:

Restaurant/Dining Place: {{.PlaceName}}
City: {{.City}}
Search Category: {{.Category}}
Search Description: {{.Description}}
Search Rating: {{.Rating}}
Opening Hours: {{.Hours}}
Website: {{.Website}}
Sample Reviews: {{.Reviews}}

RESEARCH INSTRUCTIONS:
1. Research through multiple reliable sources including:
   - Official restaurant website and social media
   - Zomato, Swiggy, EazyDiner, OpenTable
   - TripAdvisor restaurant reviews
   - Food blogs and professional restaurant reviews
   - Local dining guides and food critics
   - Recent customer reviews and menu information

2. Focus on gathering accurate, current information about:
   - Menu highlights and signature dishes
   - Service style and dining experience
   - Cuisine types and dietary options
   - Ambiance and target audience
   - Operating hours and meal service times
   - Reservation policies and special features

3. For boolean fields: Answer true only if there is clear evidence/proof from reliable sources. If uncertain or no evidence, answer false.

4. For "Meals Served": Based on opening hours and restaurant type, determine which meals are typically served (B=Breakfast, L=Lunch, D=Dinner, Late Night, 24 Hours).

Based on your comprehensive research, provide information in JSON format:

{
    "Area": "string - The area of the restaurant, extracted from the places search if it accurately describes the area of the restaurant, else populate it with the accurate area",
    "Description": "Detailed description of the dining establishment, its concept, ambiance, and what makes it special",
    "Recommended_Dishes": "List of signature dishes, popular items, or chef's recommendations (comma-separated)",
    "Meals_Served": {
        "Breakfast": "true/false - Does the restaurant serve breakfast? (Choose based on the opening hours and the type of restaurant)",
        "Lunch": "true/false - Does the restaurant serve lunch? (Choose based on the opening hours and the type of restaurant)",
        "Dinner": "true/false - Does the restaurant serve dinner? (Choose based on the opening hours and the type of restaurant)",
        "Late_Night": "true/false - Does the restaurant serve late night meals (after 11 PM)? (Choose based on the opening hours and the type of restaurant)",
        "24_Hours": "true/false - Is the restaurant open 24 hours? (Choose based on the opening hours and the type of restaurant)"
    },
    "Private_Dining": "true/false - Does the restaurant offer private dining rooms or exclusive dining experiences?",
    "Party": "true/false - Is the restaurant suitable for parties, celebrations, or group events?",
    "Service_Style": {
        "Michelin_Star": "true/false - Is this a Michelin starred restaurant?",
        "Fine_Dining": "true/false - Is this a fine dining establishment with formal service?",
        "Casual_Dining": "true/false - Is this a casual dining restaurant?",
        "Bistro": "true/false - Is this a bistro-style establishment?",
        "Cafe": "true/false - Is this primarily a cafe?",
        "Bakery": "true/false - Is this a bakery or includes significant baking offerings?",
        "Breweries": "true/false - Is this a brewery or brewpub?",
        "Farm_to_Table": "true/false - Does this restaurant focus on farm-to-table dining?",
        "Cocktail_Bars": "true/false - Is this primarily a cocktail bar or has an extensive cocktail program?",
        "Speakeasys": "true/false - Is this a speakeasy-style establishment?",
        "Tapas_Bar": "true/false - Is this a tapas bar or focuses on small plates?",
        "Rooftop_Bar": "true/false - Is this a rooftop bar or restaurant?",
        "Dessert_Spot": "true/false - Is this primarily known for desserts?"
    },
    "Cuisine": {
        "Fast_Food": "true/false - Does this serve fast food?",
        "Modern_Indian": "true/false - Does this serve modern Indian cuisine?",
        "Indian": "true/false - Does this serve traditional Indian cuisine?",
        "Continental": "true/false - Does this serve continental cuisine?",
        "Finger_Food": "true/false - Does this specialize in finger foods/appetizers?",
        "Burmese": "true/false - Does this serve Burmese cuisine?",
        "Peruvian": "true/false - Does this serve Peruvian cuisine?",
        "Lebanese": "true/false - Does this serve Lebanese cuisine?",
        "Afghan": "true/false - Does this serve Afghan cuisine?",
        "Malaysian": "true/false - Does this serve Malaysian cuisine?",
        "Vietnamese": "true/false - Does this serve Vietnamese cuisine?",
        "Pan_Asian": "true/false - Does this serve Pan Asian cuisine?",
        "Mediterranean": "true/false - Does this serve Mediterranean cuisine?",
        "Thai": "true/false - Does this serve Thai cuisine?",
        "Italian": "true/false - Does this serve Italian cuisine?",
        "Japanese": "true/false - Does this serve Japanese cuisine?",
        "Mexican": "true/false - Does this serve Mexican cuisine?",
        "Modern_European": "true/false - Does this serve modern European cuisine?",
        "Contemporary_Dining": "true/false - Does this offer contemporary dining experiences?",
        "Molecular_Gastronomy": "true/false - Does this restaurant practice molecular gastronomy?"
    },
    "Dietary": {
        "Vegetarian_Non_Vegetarian": "true/false - Does this restaurant serve both vegetarian and non-vegetarian options?",
        "Vegetarian": "true/false - Is this a vegetarian-only restaurant?",
        "Vegan_Options": "true/false - Does this restaurant offer vegan options?",
        "Seafood_Speciality": "true/false - Does this restaurant specialize in seafood?"
    },
    "Guest_Persona": {
        "Couple_Friendly": "true/false - Is this restaurant suitable for couples/romantic dining?",
        "Family_Friendly": "true/false - Is this restaurant suitable for families with children?",
        "Especially_For_Kids": "true/false - Does this restaurant have special features or menu for kids?",
        "No_Kids_Allowed": "true/false - Does this restaurant have age restrictions or discourage children?",
        "Senior_Friendly": "true/false - Is this restaurant accessible and suitable for senior citizens?",
        "Pet_Friendly": "true/false - Are pets allowed in this restaurant?"
    },
    "Vibe": {
        "Romantic_Intimate": "true/false - Does this restaurant have a romantic or intimate atmosphere?",
        "Refined_Elegant": "true/false - Does this restaurant have a refined or elegant atmosphere?",
        "Luxurious_Formal": "true/false - Does this restaurant have a luxurious or formal atmosphere?",
        "Bohemian_Playful": "true/false - Does this restaurant have a bohemian or playful atmosphere?",
        "Modern_Chic": "true/false - Does this restaurant have a modern or chic atmosphere?",
        "Vibrant_Lively": "true/false - Does this restaurant have a vibrant or lively atmosphere?",
        "Relaxed_Cozy": "true/false - Does this restaurant have a relaxed or cozy atmosphere?"
    },
    "Reservation_Recommended": "true/false - Is it recommended to make reservations at this restaurant?",
    "Alcohol_Served": "true/false - Does this restaurant serve alcoholic beverages?"
}

IMPORTANT:
- Base your analysis on factual information from reliable sources
- For boolean fields, be conservative - only answer true with clear evidence
- Use exactly true or false (lowercase) for all boolean fields
- If information is not available, use "Not Available" for text fields and false for booleans
- Do not hallucinate or make assumptions - stick to verifiable facts
- Pay special attention to opening hours to determine meal service times accurately

Please respond with ONLY the JSON object, no additional text.
`

// ResearchAccommodation asks the research model for recommendation-style
// findings about a stay. The response is consumed as raw text.
const ResearchAccommodation = `
Please research and provide comprehensive recommendations for the following place using reliable and up-to-date sources such as official websites, travel guides, booking platforms, review sites, and hospitality industry reports:

Place Name: {{.PlaceName}}
City: {{.City}}
Search Category: {{.Category}}
Search Description: {{.Description}}
Search Rating: {{.Rating}}
Sample Reviews: {{.Reviews}}
Formatted Address: {{.Address}}

RECOMMENDATION RESEARCH INSTRUCTIONS:
1. Research through multiple reliable sources including:
   - Official website of the establishment
   - TripAdvisor, Booking.com, Hotels.com, Expedia
   - Travel blogs and professional travel guides
   - Local tourism websites and recommendation sites
   - Recent visitor reviews and testimonials
   - Travel recommendation articles and "best of" lists

2. Focus on recommendation aspects:
   - Who should visit this place and why
   - What makes this place worth recommending
   - Best times to visit or specific experiences to have
   - What type of travelers would most enjoy this place
   - Unique selling points and standout features

3. Consider different traveler types:
   - Families with children
   - Couples seeking romance
   - Solo travelers
   - Senior citizens
   - Pet owners
   - Adventure seekers vs. relaxation seekers

Based on your comprehensive research, provide recommendations in JSON format:

{
    "Country": "The country of the place, extracted from the Formatted Address if it accurately describes the country of the place, else populate it with the accurate country",
    "State": "The state of the place, extracted from the Formatted Address if it accurately describes the state of the place, else populate it with the accurate state",
    "City": "The city of the place, extracted from the Formatted Address if it accurately describes the city of the place, else populate it with the accurate city",
    "Area": "The area of the place, extracted from the Formatted Address if it accurately describes the area of the place, else populate it with the accurate area",
    "Category": "Primary category with recommendation context. It must always be one of - [Accomodation - Wellness, Accomodation - Boutique / Villa / Homestay, Accomodation - Haveli, Accomodation - Hotel / Resorts]",
    "Description": "A short single line description of the place. Recommendation-focused description explaining why visitors should choose this place, what unique experiences it offers, and what makes it special. Include specific recommendations about what to do, see, or experience here.",
    "Pool": "Yes/No - Recommended for pool lovers? Include details about pool experience if this is a highlight.",
    "Pet_Friendly": "Yes/No - Recommended for pet owners? Yes only if there is a proof about it else no. Include specific pet amenities and policies that make it pet-friendly. If it is not suitable for pets, say no and state the reason.",
    "View": "Yes/No - Recommended for scenic views? Yes only if there is a proof about it else no. Specify what types of views and why they're worth visiting for. If it is not suitable for views, say no and state the reason.",
    "Kid_Friendly": "Yes/No - Recommended for families with children? Yes only if there is a proof about it else no. Include specific kid-friendly features and experiences. If it is not suitable for kids, say no and state the reason.",
    "Romantic": "Yes/No - Recommended for couples and romantic occasions? Yes only if there is a proof about it else no. Include what makes it romantic and special experiences for couples. If it is not suitable for couples, say no and state the reason.",
    "Senior_Citizen_Friendly": "Yes/No - Recommended for senior travelers? Say yes only if there is a proof about it and state the proof, else say no stating that it is not suitable for senior travelers. Include specific senior-friendly features and experiences."
}

IMPORTANT: Frame your response as recommendations. Focus on who should visit, why they should visit, and what they can expect. Base recommendations on current, verified information from reputable sources.

Please respond with ONLY the JSON object, no additional text or source citations.
`
