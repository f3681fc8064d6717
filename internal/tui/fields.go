package tui

// field describes one input of the form. Fields appear in the same order
// as Answers.fields.
type field struct {
	section     string
	label       string
	placeholder string
	charLimit   int
	required    bool
}

var formFields = []field{
	{section: "Clinic", label: "Name", placeholder: "Bright Smile Dental", charLimit: 100, required: true},
	{label: "Tagline", placeholder: "Your smile, our passion", charLimit: 200},
	{label: "Logo initial", placeholder: "defaults to the first letter of the name", charLimit: 1},

	{section: "Contact", label: "Phone", placeholder: "(555) 123-4567", charLimit: 40},
	{label: "Email", placeholder: "hello@example.com", charLimit: 254},
	{label: "Street", placeholder: "123 Main Street", charLimit: 200},
	{label: "City", charLimit: 100},
	{label: "State", charLimit: 100},
	{label: "ZIP code", charLimit: 20},

	{section: "Hours", label: "Weekdays", placeholder: "Mon-Fri: 9AM - 7PM", charLimit: 100},
	{label: "Saturday", placeholder: "optional", charLimit: 100},
	{label: "Sunday", placeholder: "defaults to Closed", charLimit: 100},

	{section: "Social (optional)", label: "Facebook", placeholder: "https://facebook.com/...", charLimit: 300},
	{label: "Instagram", placeholder: "https://instagram.com/...", charLimit: 300},
	{label: "Twitter", placeholder: "https://twitter.com/...", charLimit: 300},
	{label: "YouTube", placeholder: "https://youtube.com/...", charLimit: 300},
}

const labelWidth = 14
