package prompts

// Resolver disambiguates a free-text activity description into a concrete
// place name and city for the places search.
const Resolver = `
You are an expert at parsing travel activity names and determining the best way to search for them on a places search API.

TASK: Analyze the given activity name and return optimal search parameters for the places search.

ACTIVITY NAME: "{{.ActivityName}}"
CONTEXT CITY: {{.ContextCity}}

ANALYSIS INSTRUCTIONS:
1. Identify if this is a specific place name, generic activity, or venue type
2. Extract the most likely place name to search for
3. Determine the most appropriate city to search in

RESPONSE FORMAT:
Return a JSON object with exactly these fields:

{
    "place_name": "Exact name to search for in the places search",
    "city": "City name to search in"
}

EXAMPLES:
- "Eiffel Tower" -> {"place_name": "Eiffel Tower", "city": "Paris"}
- "Visit local markets in Bangkok" -> {"place_name": "Chatuchak Market", "city": "Bangkok"}
- "Dinner at Michelin restaurant" -> {"place_name": "Michelin restaurant", "city": "{{.ContextCity}}"}
- "Central Park picnic" -> {"place_name": "Central Park", "city": "New York"}
- "Museum visit" -> {"place_name": "museum", "city": "{{.ContextCity}}"}

RULES:
- If activity mentions a specific landmark, use that exact name
- If it's a generic activity, try to suggest the most famous/relevant venue
- Always provide a city, even if you have to make an educated guess
- Be specific rather than generic when possible

Return ONLY the JSON object, no additional text.
`
