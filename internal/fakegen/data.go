package fakegen

var genders = []string{"male", "female", "other"}

var departments = []string{
	"Automotive", "Baby", "Beauty", "Books", "Clothing", "Computers",
	"Electronics", "Games", "Garden", "Grocery", "Health", "Home",
	"Industrial", "Jewelery", "Kids", "Movies", "Music", "Outdoors",
	"Shoes", "Sports", "Tools", "Toys",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "and Sons", "Holdings", "Partners", "Co",
}

// adjectives and nouns for word-based usernames
var adjectives = []string{
	"swift", "bold", "calm", "dark", "keen", "wild", "warm", "cool",
	"fast", "slow", "deep", "tall", "wide", "thin", "flat", "long",
	"soft", "hard", "pure", "rare", "safe", "fair", "fine", "free",
	"glad", "kind", "vast", "wise", "true", "pale", "gold", "iron",
	"blue", "gray", "jade", "ruby", "sage", "teal", "aqua", "mint",
	"dusk", "dawn", "moon", "star", "fern", "reed", "snow", "rain",
	"haze", "glow",
}

var nouns = []string{
	"wolf", "hawk", "bear", "deer", "lynx", "fox", "owl", "crow",
	"pike", "bass", "wren", "dove", "lark", "swan", "moth", "wasp",
	"frog", "toad", "crab", "clam", "orca", "seal", "hare", "mole",
	"vole", "newt", "ibis", "kite", "jay", "ant", "bee", "ram",
	"oak", "elm", "ash", "bay", "fir", "yew", "ivy", "reed",
	"moss", "sage", "lily", "rose", "iris", "vine", "fern", "palm",
	"cliff", "ridge",
}

var dutchCorpus = corpus{
	firstNames: []string{
		"Daan", "Sem", "Lucas", "Levi", "Finn", "Milan", "Luuk", "Bram",
		"Thijs", "Jesse", "Ruben", "Lars", "Sven", "Niels", "Joost", "Pieter",
		"Emma", "Julia", "Mila", "Tess", "Sophie", "Zoë", "Sara", "Nora",
		"Fleur", "Eva", "Lotte", "Anouk", "Sanne", "Femke", "Iris", "Lieke",
	},
	lastNames: []string{
		"de Jong", "Jansen", "de Vries", "van den Berg", "van Dijk", "Bakker",
		"Janssen", "Visser", "Smit", "Meijer", "de Boer", "Mulder",
		"de Groot", "Bos", "Vos", "Peters", "Hendriks", "van Leeuwen",
		"Dekker", "Brouwer", "de Wit", "Dijkstra", "Smits", "de Graaf",
		"van der Meer", "van der Linden", "Kok", "Jacobs", "de Haan", "Vermeulen",
	},
	streets: []string{
		"Kerkstraat", "Dorpsstraat", "Schoolstraat", "Molenweg", "Stationsweg",
		"Julianastraat", "Beatrixstraat", "Wilhelminastraat", "Nieuwstraat",
		"Markt", "Hoofdstraat", "Kastanjelaan", "Lindelaan", "Eikenlaan",
		"Prinsengracht", "Keizersgracht", "Herengracht", "Vondelstraat",
		"Oranjestraat", "Parkweg",
	},
	cities: []string{
		"Amsterdam", "Rotterdam", "Den Haag", "Utrecht", "Eindhoven",
		"Groningen", "Tilburg", "Almere", "Breda", "Nijmegen",
		"Apeldoorn", "Haarlem", "Arnhem", "Enschede", "Amersfoort",
		"Zaanstad", "Zwolle", "Leiden", "Maastricht", "Dordrecht",
	},
	provinces: []string{
		"Noord-Holland", "Zuid-Holland", "Utrecht", "Noord-Brabant",
		"Gelderland", "Groningen", "Friesland", "Drenthe", "Overijssel",
		"Flevoland", "Zeeland", "Limburg",
	},
	postalCode: dutchPostalCode,
	phone:      dutchPhone,
}

var flemishCorpus = corpus{
	firstNames: []string{
		"Lucas", "Louis", "Noah", "Arthur", "Liam", "Jules", "Adam", "Victor",
		"Finn", "Mathis", "Wout", "Lander", "Senne", "Robbe", "Jens", "Stijn",
		"Emma", "Olivia", "Louise", "Mila", "Elena", "Marie", "Nina", "Lina",
		"Fien", "Jana", "Lotte", "Hanne", "Lore", "Febe", "Ellen", "Sofie",
	},
	lastNames: []string{
		"Peeters", "Janssens", "Maes", "Jacobs", "Mertens", "Willems",
		"Claes", "Goossens", "Wouters", "De Smet", "Dubois", "Lambert",
		"Dupont", "Hermans", "Aerts", "Michiels", "Desmet", "Vermeulen",
		"Van Damme", "Van de Velde", "Verstraete", "Martens", "Coppens",
		"De Backer", "Cools", "Segers", "Stevens", "Pauwels", "Smets", "Leclercq",
	},
	streets: []string{
		"Kerkstraat", "Stationsstraat", "Molenstraat", "Nieuwstraat",
		"Dorpsstraat", "Schoolstraat", "Kapelstraat", "Veldstraat",
		"Meir", "Grote Markt", "Steenweg", "Kasteelstraat",
		"Bergstraat", "Beekstraat", "Brugstraat", "Lindenlaan",
		"Kouter", "Vrijdagmarkt", "Korenmarkt", "Diestsestraat",
	},
	cities: []string{
		"Antwerpen", "Gent", "Brugge", "Leuven", "Mechelen",
		"Brussel", "Hasselt", "Aalst", "Kortrijk", "Oostende",
		"Sint-Niklaas", "Genk", "Roeselare", "Turnhout", "Lier",
		"Geel", "Dendermonde", "Ieper", "Knokke-Heist", "Tienen",
	},
	provinces: []string{
		"Antwerpen", "Oost-Vlaanderen", "West-Vlaanderen", "Vlaams-Brabant",
		"Limburg", "Brussel",
	},
	postalCode: belgianPostalCode,
	phone:      belgianPhone,
}
