// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

// continents groups country names as they appear in the source data.
// A country missing from every list gets an empty continent.
var continents = map[string][]string{
	"Africa": {
		"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cameroon",
		"Cape Verde", "Central African Republic", "Chad", "Comoros", "Congo",
		"Democratic Republic of the Congo", "Djibouti", "Egypt", "Equatorial Guinea",
		"Eritrea", "Eswatini", "Ethiopia", "Gabon", "Gambia", "Ghana", "Guinea", "Guinea-Bissau",
		"Ivory Coast", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi",
		"Mali", "Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger",
		"Nigeria", "Rwanda", "São Tomé and Príncipe", "Senegal", "Seychelles",
		"Sierra Leone", "Somalia", "South Africa", "South Sudan", "Sudan", "Tanzania",
		"Togo", "Tunisia", "Uganda", "Zambia", "Zimbabwe",
	},
	"Asia": {
		"Afghanistan", "Armenia", "Azerbaijan", "Bahrain", "Bangladesh", "Bhutan",
		"Brunei Darussalam", "Cambodia", "China", "Cyprus", "Georgia", "India",
		"Indonesia", "Iran", "Iraq", "Israel", "Japan", "Jordan", "Kazakhstan",
		"Kuwait", "Kyrgyzstan", "Laos", "Lebanon", "Malaysia", "Maldives", "Mongolia",
		"Myanmar", "Nepal", "North Korea", "Oman", "Pakistan", "Palestine",
		"Philippines", "Qatar", "Saudi Arabia", "Singapore", "South Korea", "Sri Lanka",
		"Syria", "Taiwan", "Tajikistan", "Thailand", "Timor-Leste", "Turkey",
		"Turkmenistan", "United Arab Emirates", "Uzbekistan", "Vietnam", "Yemen",
	},
	"Europe": {
		"Albania", "Andorra", "Austria", "Belarus", "Belgium", "Bosnia and Herzegovina",
		"Bulgaria", "Croatia", "Czech Republic", "Czechia", "Denmark", "Estonia",
		"Finland", "France", "Germany", "Greece", "Hungary", "Iceland", "Ireland",
		"Italy", "Latvia", "Liechtenstein", "Lithuania", "Luxembourg", "Malta",
		"Moldova", "Monaco", "Montenegro", "Netherlands", "North Macedonia", "Norway",
		"Poland", "Portugal", "Romania", "Russia", "Russian Federation", "San Marino",
		"Serbia", "Slovakia", "Slovenia", "Spain", "Sweden", "Switzerland",
		"Ukraine", "United Kingdom", "Vatican City",
	},
	"North America": {
		"Antigua and Barbuda", "Bahamas", "Barbados", "Belize", "Canada", "Costa Rica",
		"Cuba", "Dominica", "Dominican Republic", "El Salvador", "Grenada",
		"Guatemala", "Haiti", "Honduras", "Jamaica", "Mexico", "Nicaragua", "Panama",
		"Puerto Rico", "Saint Kitts and Nevis", "Saint Lucia",
		"Saint Vincent and the Grenadines", "Trinidad and Tobago", "United States",
	},
	"South America": {
		"Argentina", "Bolivia", "Brazil", "Chile", "Colombia", "Ecuador", "Guyana",
		"Paraguay", "Peru", "Suriname", "Uruguay", "Venezuela",
	},
	"Oceania": {
		"Australia", "Fiji", "Kiribati", "Marshall Islands", "Micronesia", "Nauru",
		"New Caledonia", "New Zealand", "Palau", "Papua New Guinea", "Samoa",
		"Solomon Islands", "Tonga", "Tuvalu", "Vanuatu",
	},
}

var continentByCountry = func() map[string]string {
	m := make(map[string]string)
	for continent, countries := range continents {
		for _, c := range countries {
			m[c] = continent
		}
	}
	return m
}()

// Continent returns the continent for a country name, or "" when unknown.
func Continent(country string) string {
	return continentByCountry[country]
}

// CountriesIn returns the country list for a continent, or nil when the
// continent is unknown. The returned slice must not be mutated.
func CountriesIn(continent string) []string {
	return continents[continent]
}

// Continents returns the continent→countries table as a fresh map, so
// callers can add or drop entries without touching the shared table. The
// country slices must not be mutated.
func Continents() map[string][]string {
	m := make(map[string][]string, len(continents))
	for continent, countries := range continents {
		m[continent] = countries
	}
	return m
}
