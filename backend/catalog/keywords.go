package catalog

// SubjectTopicNames lists the display names shown on each subject's
// progress card.
var SubjectTopicNames = map[string][]string{
	"math": {
		"Basic Arithmetic", "Algebra", "Geometry", "Trigonometry", "Calculus",
		"Statistics", "Probability", "Linear Algebra", "Discrete Mathematics",
		"Number Theory",
	},
	"science": {
		"Physics: Mechanics", "Physics: Electricity", "Chemistry: Elements",
		"Chemistry: Reactions", "Biology: Cells", "Biology: Ecosystems",
		"Astronomy", "Earth Science", "Scientific Method", "Lab Techniques",
	},
	"english": {
		"Grammar", "Vocabulary", "Reading Comprehension", "Writing Essays",
		"Literature Analysis", "Poetry", "Creative Writing", "Public Speaking",
		"Research Skills", "Critical Thinking",
	},
	"history": {
		"Ancient Civilizations", "Middle Ages", "Renaissance",
		"Industrial Revolution", "World War I", "World War II", "Cold War",
		"American History", "European History", "Asian History",
	},
	"programming": {
		"Programming Basics", "Data Types & Variables", "Control Structures",
		"Functions & Methods", "Object-Oriented Programming", "Data Structures",
		"Algorithms", "Web Development", "Databases", "Software Engineering",
	},
}

// SubjectKeywords maps each subject to topic tags and the keywords that mark
// a tag as covered when they appear in chat text. Matching is a plain
// lower-cased substring scan, so "cell" also matches "cellular" and
// "excellent" — kept as-is until product decides otherwise.
var SubjectKeywords = map[string]map[string][]string{
	"math": {
		"algebra":      {"equation", "variable", "polynomial", "quadratic", "linear"},
		"calculus":     {"derivative", "integral", "limit", "differential", "rate of change"},
		"geometry":     {"shape", "angle", "triangle", "circle", "polygon"},
		"statistics":   {"probability", "distribution", "average", "standard deviation", "correlation"},
		"trigonometry": {"sine", "cosine", "tangent", "angle", "radian"},
	},
	"science": {
		"physics":   {"force", "energy", "motion", "quantum", "relativity"},
		"chemistry": {"reaction", "element", "molecule", "compound", "atom", "bond"},
		"biology":   {"cell", "dna", "evolution", "organism", "protein"},
		"astronomy": {"planet", "star", "galaxy", "solar system", "black hole"},
		"geology":   {"rock", "mineral", "plate tectonic", "earthquake", "volcano"},
	},
	"english": {
		"grammar":    {"syntax", "tense", "punctuation", "sentence", "clause"},
		"writing":    {"essay", "paragraph", "narrative", "descriptive", "persuasive"},
		"literature": {"novel", "poem", "character", "theme", "symbolism"},
		"vocabulary": {"word", "synonym", "antonym", "definition", "connotation"},
		"rhetoric":   {"argument", "persuasion", "ethos", "pathos", "logos"},
	},
	"history": {
		"ancient":     {"mesopotamia", "egypt", "rome", "greece", "china"},
		"medieval":    {"feudal", "castle", "knight", "crusade", "monastery"},
		"renaissance": {"humanism", "art", "reformation", "exploration", "perspective"},
		"modern":      {"industrial", "revolution", "war", "democracy", "nation"},
		"world-wars":  {"trench", "holocaust", "fascism", "allies", "axis"},
	},
	"programming": {
		"basics":           {"variable", "loop", "function", "condition", "array"},
		"data-structures":  {"algorithm", "tree", "stack", "queue", "hash"},
		"web-dev":          {"html", "css", "javascript", "api", "server"},
		"databases":        {"sql", "query", "table", "schema", "join"},
		"machine-learning": {"model", "training", "neural", "dataset", "prediction"},
	},
}
