package cli

// Static screen content.

type slide struct {
	title string
	body  string
}

var onboardingSlides = []slide{
	{"Breaking Communication Barriers", "Millions of Indians use ISL daily. Sign On helps translate speech, video, and text into Indian Sign Language."},
	{"Instant Audio to ISL", "Speak naturally and watch your words turn into clear ISL translations."},
	{"Built for Everyone", "Designed with accessibility at its heart, whether you are learning ISL, need translation help, or want to connect with the Deaf community."},
	{"Learn & Connect", "An ISL dictionary and short lessons to help you master Indian Sign Language."},
}

type word struct {
	word       string
	category   string
	difficulty string
}

var dictionary = []word{
	{"Hello", "greetings", "Beginner"},
	{"Thank you", "greetings", "Beginner"},
	{"Please", "greetings", "Beginner"},
	{"Water", "food", "Beginner"},
	{"Mother", "family", "Beginner"},
	{"Happy", "emotions", "Intermediate"},
	{"One", "numbers", "Beginner"},
	{"House", "daily", "Intermediate"},
}

var categories = []string{"greetings", "food", "numbers", "emotions", "daily", "family"}

type lesson struct {
	title    string
	about    string
	level    string
	duration string
	locked   bool
}

var lessons = []lesson{
	{"Basic Greetings", "Learn essential greeting signs in ISL", "Beginner", "15 min", false},
	{"Numbers 1-10", "Master counting from 1 to 10", "Beginner", "20 min", false},
	{"Family Members", "Signs for family relationships", "Beginner", "25 min", true},
	{"Food & Drinks", "Common food and drink signs", "Intermediate", "30 min", true},
}

var faq = [][2]string{
	{"How accurate are the ISL translations?", "Translations are continuously improving and cover most common phrases and words in Indian Sign Language."},
	{"Can I use the app offline?", "Everything you save stays on this device. Translation runs locally in this build."},
	{"Where is my data kept?", "In a local database file; 'logout' clears your account, history and favorites."},
}

var adminSections = [][2]string{
	{"User Management", "Manage user accounts and permissions"},
	{"Analytics", "View usage statistics and reports"},
	{"Content Database", "Manage ISL signs and translations"},
	{"Upload Content", "Upload new ISL videos and content"},
}
