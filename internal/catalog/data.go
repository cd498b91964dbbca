package catalog

import "github.com/apilooter/gateway/model"

// builtin is the static provider catalog shipped with the gateway. Entries
// are ordered by id; ids are 1-based and sequential by convention (the
// validator warns when they drift).
var builtin = []model.Provider{
	{
		ID:          1,
		Name:        "Dog CEO",
		Description: "Random pictures of dogs.",
		Endpoint:    "https://dog.ceo/api/breeds/image/random",
		Parameters:  []model.ParameterSpec{},
		WhyUse:      "Great for placeholder images, testing image handling, or building pet-related apps.",
		HowUse:      "Perfect for learning HTTP requests - no API key needed, returns JSON with image URL. Ideal for beginners practicing API calls.",
		Category:    "Images",
		HasHandler:  true,
	},
	{
		ID:          2,
		Name:        "Cat Facts",
		Description: "Get random cat facts.",
		Endpoint:    "https://catfact.ninja/fact",
		Parameters:  []model.ParameterSpec{},
		WhyUse:      "Learn JSON parsing and handling text responses from APIs.",
		HowUse:      "Simple GET request returns random cat facts - ideal first API for beginners. No authentication required.",
		Category:    "Fun",
		HasHandler:  true,
	},
	{
		ID:          3,
		Name:        "OpenWeatherMap",
		Description: "Get current weather data.",
		Endpoint:    "https://api.openweathermap.org/data/2.5/weather",
		Parameters: []model.ParameterSpec{
			{Name: "q", Label: "City", Type: model.ParamTypeText, Required: true},
			{Name: "appid", Label: "API Key", Type: model.ParamTypeText, Required: true},
		},
		WhyUse:   "Learn how to work with APIs that require authentication and handle query parameters.",
		HowUse:   "Demonstrates API key usage and parameter passing. Common in weather apps, travel sites, and IoT projects.",
		Category: "Data",
	},
	{
		ID:           4,
		Name:         "Advice Slip",
		Description:  "Random life advice.",
		Endpoint:     "https://api.adviceslip.com/advice",
		Parameters:   []model.ParameterSpec{},
		WhyUse:       "Simple API perfect for practicing JSON data extraction and response handling.",
		HowUse:       "Returns motivational advice - great for learning apps, bots, or daily inspiration features.",
		Category:     "Fun",
		HasHandler:   true,
		IsAdult:      true,
		AdultWarning: "This API may contain advice with adult language or mature themes.",
	},
	{
		ID:          5,
		Name:        "JokeAPI",
		Description: "Programming and general jokes.",
		Endpoint:    "https://v2.jokeapi.dev/joke",
		Parameters: []model.ParameterSpec{
			{
				Name:     "category",
				Label:    "Category",
				Type:     model.ParamTypeSelect,
				Required: true,
				Options: []model.ParameterOption{
					{Value: "programming", Label: "Programming"},
					{Value: "misc", Label: "Miscellaneous"},
					{Value: "pun", Label: "Pun"},
					{Value: "spooky", Label: "Spooky"},
					{Value: "christmas", Label: "Christmas"},
				},
			},
			{
				Name:     "type",
				Label:    "Type",
				Type:     model.ParamTypeSelect,
				Required: false,
				Options: []model.ParameterOption{
					{Value: "single", Label: "Single"},
					{Value: "twopart", Label: "Two-Part"},
				},
			},
		},
		WhyUse:       "Learn parameter handling with dropdown options and conditional response structures.",
		HowUse:       "Popular for Slack bots, Discord bots, and entertainment apps. Shows how to handle multiple response formats.",
		Category:     "Fun",
		HasHandler:   true,
		IsAdult:      true,
		AdultWarning: "This API may return jokes with adult language or themes.",
	},
	{
		ID:          6,
		Name:        "CoinGecko",
		Description: "Cryptocurrency prices and info.",
		Endpoint:    "https://api.coingecko.com/api/v3/simple/price",
		Parameters: []model.ParameterSpec{
			{
				Name:     "ids",
				Label:    "Coin",
				Type:     model.ParamTypeSelect,
				Required: true,
				Options: []model.ParameterOption{
					{Value: "bitcoin", Label: "Bitcoin"},
					{Value: "ethereum", Label: "Ethereum"},
					{Value: "dogecoin", Label: "Dogecoin"},
					{Value: "litecoin", Label: "Litecoin"},
					{Value: "cardano", Label: "Cardano"},
					{Value: "solana", Label: "Solana"},
					{Value: "ripple", Label: "Ripple"},
					{Value: "polkadot", Label: "Polkadot"},
					{Value: "tron", Label: "Tron"},
				},
			},
			{
				Name:     "vs_currencies",
				Label:    "Currency",
				Type:     model.ParamTypeSelect,
				Required: true,
				Options: []model.ParameterOption{
					{Value: "usd", Label: "USD"},
					{Value: "eur", Label: "EUR"},
					{Value: "gbp", Label: "GBP"},
					{Value: "jpy", Label: "JPY"},
					{Value: "aud", Label: "AUD"},
				},
			},
		},
		WhyUse:   "Practice working with financial data APIs and real-time price information.",
		HowUse:   "Used in crypto portfolio trackers, price alert apps, and trading dashboards. No API key required for basic usage.",
		Category: "Cryptocurrency",
	},
	{
		ID:          7,
		Name:        "Genderize",
		Description: "Predict gender from a first name.",
		Endpoint:    "https://api.genderize.io",
		Parameters: []model.ParameterSpec{
			{Name: "name", Label: "Name", Type: model.ParamTypeText, Required: true},
		},
		WhyUse:   "Learn about machine learning prediction APIs and probability-based responses.",
		HowUse:   "Useful for data analysis, user profiling, and demographic research. Returns gender probability scores.",
		Category: "Data",
	},
	{
		ID:          8,
		Name:        "Agify",
		Description: "Predict age from a name.",
		Endpoint:    "https://api.agify.io",
		Parameters: []model.ParameterSpec{
			{Name: "name", Label: "Name", Type: model.ParamTypeText, Required: true},
		},
		WhyUse:   "Understand prediction APIs and statistical estimation from names.",
		HowUse:   "Used in demographic analysis, marketing research, and data enrichment tools.",
		Category: "Data",
	},
	{
		ID:          9,
		Name:        "Nationalize",
		Description: "Predict nationality from a name.",
		Endpoint:    "https://api.nationalize.io",
		Parameters: []model.ParameterSpec{
			{Name: "name", Label: "Name", Type: model.ParamTypeText, Required: true},
		},
		WhyUse:   "Practice handling multiple prediction results with probability scores.",
		HowUse:   "Helps with internationalization, market research, and understanding name origins. Returns multiple country probabilities.",
		Category: "Data",
	},
	{
		ID:          10,
		Name:        "DogAPI",
		Description: "Get random dog facts.",
		Endpoint:    "https://dogapi.dog/api/v2/facts",
		Parameters:  []model.ParameterSpec{},
		WhyUse:      "Learn to navigate nested JSON responses and extract specific data fields.",
		HowUse:      "Great for pet apps, educational content, or practicing JSON parsing with complex structures.",
		Category:    "Fun",
	},
	{
		ID:          11,
		Name:        "Numbers API",
		Description: "Trivia and facts about numbers.",
		Endpoint:    "http://numbersapi.com/random/trivia",
		Parameters:  []model.ParameterSpec{},
		WhyUse:      "Simple text-based API for learning basic HTTP requests and plain text responses.",
		HowUse:      "Fun facts for educational apps, trivia games, or daily number facts. Returns plain text instead of JSON.",
		Category:    "Fun",
	},
	{
		ID:          12,
		Name:        "OpenLibrary",
		Description: "Book data and cover art.",
		Endpoint:    "https://openlibrary.org/search.json",
		Parameters: []model.ParameterSpec{
			{Name: "q", Label: "Search Query", Type: model.ParamTypeText, Required: true},
		},
		WhyUse:   "Practice working with large, complex JSON responses and search functionality.",
		HowUse:   "Essential for book apps, library systems, reading trackers, and educational projects. Free and extensive book database.",
		Category: "Data",
	},
	{
		ID:           13,
		Name:         "Kanye Rest",
		Description:  "Get a random Kanye West quote.",
		Endpoint:     "https://api.kanye.rest",
		Parameters:   []model.ParameterSpec{},
		WhyUse:       "Extremely simple API perfect for your very first API call - just one endpoint, no parameters.",
		HowUse:       "Popular for meme apps, quote generators, and teaching API basics. Instant success guaranteed!",
		Category:     "Fun",
		HasHandler:   true,
		IsAdult:      true,
		AdultWarning: "Some quotes may contain strong language or mature themes.",
	},
	{
		ID:           14,
		Name:         "Dad Jokes",
		Description:  "Get a dad joke.",
		Endpoint:     "https://icanhazdadjoke.com/",
		Parameters:   []model.ParameterSpec{},
		WhyUse:       "Learn about content negotiation - API returns different formats based on Accept header.",
		HowUse:       "Common in Slack bots, entertainment apps, and icebreaker tools. Shows how headers affect API responses.",
		Category:     "Fun",
		IsAdult:      true,
		AdultWarning: "Some jokes may contain mild adult humor.",
	},
}

// Builtin returns a copy of the built-in provider catalog.
func Builtin() []model.Provider {
	providers := make([]model.Provider, len(builtin))
	copy(providers, builtin)
	return providers
}
