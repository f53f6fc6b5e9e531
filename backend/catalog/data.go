package catalog

// Subjects is the full curriculum. Static and immutable.
var Subjects = []Subject{
	{
		ID:          "math",
		Name:        "Mathematics",
		Description: "Explore the world of numbers, patterns, and quantitative reasoning",
		Color:       "#4C51BF",
		Topics: []Topic{
			{
				ID:          "math-basics",
				Title:       "Basic Arithmetic",
				Description: "Fundamentals of mathematics including operations and number sense",
				Difficulty:  Beginner,
				SubTopics: []SubTopic{
					{
						ID:          "math-basics-operations",
						Title:       "Basic Operations",
						Description: "Addition, subtraction, multiplication, and division",
						KeyPoints: []string{
							"Understanding place value",
							"Mental math strategies",
							"Order of operations (PEMDAS)",
							"Estimation techniques",
						},
						Resources: []Resource{
							{
								Title:           "Basic Math Operations Tutorial",
								Type:            ResourceVideo,
								Description:     "Visual guide to understanding basic math operations",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
							{
								Title:           "Operations Practice Worksheet",
								Type:            ResourcePractice,
								Description:     "Practice problems with solutions for basic operations",
								Difficulty:      Beginner,
								DurationMinutes: 20,
							},
						},
					},
					{
						ID:          "math-basics-fractions",
						Title:       "Fractions and Decimals",
						Description: "Understanding and working with fractions and decimal numbers",
						KeyPoints: []string{
							"Converting between fractions and decimals",
							"Operations with fractions",
							"Comparing fractions and decimals",
							"Applications in real-life",
						},
						Resources: []Resource{
							{
								Title:           "Fractions Explained Simply",
								Type:            ResourceArticle,
								Description:     "Clear explanations with visual aids for understanding fractions",
								Difficulty:      Beginner,
								DurationMinutes: 10,
							},
							{
								Title:           "Decimal Places Quiz",
								Type:            ResourceQuiz,
								Description:     "Test your understanding of decimal places and values",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
						},
					},
				},
			},
			{
				ID:                   "math-algebra",
				Title:                "Algebra",
				Description:          "Using symbols and letters to represent numbers and relationships",
				Difficulty:           Intermediate,
				PrerequisiteTopicIDs: []string{"math-basics"},
				SubTopics: []SubTopic{
					{
						ID:          "math-algebra-equations",
						Title:       "Linear Equations",
						Description: "Solving equations with one variable",
						KeyPoints: []string{
							"Isolating variables",
							"Graphing linear equations",
							"Systems of equations",
							"Word problems and applications",
						},
						Resources: []Resource{
							{
								Title:           "Solving Linear Equations",
								Type:            ResourceVideo,
								Description:     "Step-by-step guide to solving linear equations",
								Difficulty:      Intermediate,
								DurationMinutes: 20,
							},
							{
								Title:           "Linear Equation Interactive Explorer",
								Type:            ResourceInteractive,
								Description:     "Manipulate linear equations and see results in real-time",
								Difficulty:      Intermediate,
								DurationMinutes: 25,
							},
						},
					},
					{
						ID:          "math-algebra-expressions",
						Title:       "Algebraic Expressions",
						Description: "Working with variables, terms, and operations",
						KeyPoints: []string{
							"Simplifying expressions",
							"Combining like terms",
							"Distributive property",
							"Factoring expressions",
						},
						Resources: []Resource{
							{
								Title:           "Algebraic Expressions Demystified",
								Type:            ResourceArticle,
								Description:     "Clear explanation of algebraic expressions and operations",
								Difficulty:      Intermediate,
								DurationMinutes: 15,
							},
							{
								Title:           "Expression Simplification Practice",
								Type:            ResourcePractice,
								Description:     "Practice problems for simplifying algebraic expressions",
								Difficulty:      Intermediate,
								DurationMinutes: 20,
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "science",
		Name:        "Science",
		Description: "Discover how our world works through observation and experimentation",
		Color:       "#38A169",
		Topics: []Topic{
			{
				ID:          "science-physics",
				Title:       "Physics: Mechanics",
				Description: "Study of motion, forces, energy, and matter",
				Difficulty:  Intermediate,
				SubTopics: []SubTopic{
					{
						ID:          "science-physics-motion",
						Title:       "Motion and Forces",
						Description: "Understanding how objects move and the forces that affect them",
						KeyPoints: []string{
							"Newton's laws of motion",
							"Velocity and acceleration",
							"Force diagrams",
							"Gravity and friction",
						},
						Resources: []Resource{
							{
								Title:           "Physics in Motion",
								Type:            ResourceVideo,
								Description:     "Visual demonstrations of motion concepts with examples",
								Difficulty:      Intermediate,
								DurationMinutes: 25,
							},
							{
								Title:           "Forces and Motion Simulation",
								Type:            ResourceInteractive,
								Description:     "Interactive simulation to explore forces and motion",
								Difficulty:      Intermediate,
								DurationMinutes: 30,
							},
						},
					},
					{
						ID:          "science-physics-energy",
						Title:       "Energy and Work",
						Description: "Understanding energy, its forms, and transformations",
						KeyPoints: []string{
							"Potential and kinetic energy",
							"Conservation of energy",
							"Work and power",
							"Simple machines",
						},
						Resources: []Resource{
							{
								Title:           "Energy Transformations",
								Type:            ResourceArticle,
								Description:     "Comprehensive article on energy types and transformations",
								Difficulty:      Intermediate,
								DurationMinutes: 20,
							},
							{
								Title:           "Energy Concepts Quiz",
								Type:            ResourceQuiz,
								Description:     "Test your understanding of energy principles",
								Difficulty:      Intermediate,
								DurationMinutes: 15,
							},
						},
					},
				},
			},
			{
				ID:          "science-chemistry",
				Title:       "Chemistry: Elements",
				Description: "Study of matter, its properties, and transformations",
				Difficulty:  Intermediate,
				SubTopics: []SubTopic{
					{
						ID:          "science-chemistry-periodic",
						Title:       "Periodic Table",
						Description: "Understanding elements and their organization",
						KeyPoints: []string{
							"Element properties",
							"Periodic trends",
							"Electron configuration",
							"Groups and periods",
						},
						Resources: []Resource{
							{
								Title:           "Interactive Periodic Table",
								Type:            ResourceInteractive,
								Description:     "Explore the periodic table with detailed element information",
								Difficulty:      Intermediate,
								DurationMinutes: 25,
							},
							{
								Title:           "Periodic Trends Explained",
								Type:            ResourceArticle,
								Description:     "Detailed explanation of periodic trends with examples",
								Difficulty:      Intermediate,
								DurationMinutes: 20,
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "english",
		Name:        "English",
		Description: "Develop language skills through reading, writing, and analysis",
		Color:       "#DD6B20",
		Topics: []Topic{
			{
				ID:          "english-grammar",
				Title:       "Grammar",
				Description: "Rules that govern the structure of language",
				Difficulty:  Beginner,
				SubTopics: []SubTopic{
					{
						ID:          "english-grammar-parts",
						Title:       "Parts of Speech",
						Description: "Understanding the different components of language",
						KeyPoints: []string{
							"Nouns, verbs, adjectives, adverbs",
							"Prepositions and conjunctions",
							"Pronouns and articles",
							"Identifying parts of speech in sentences",
						},
						Resources: []Resource{
							{
								Title:           "Parts of Speech Guide",
								Type:            ResourceArticle,
								Description:     "Comprehensive guide to parts of speech with examples",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
							{
								Title:           "Parts of Speech Practice",
								Type:            ResourcePractice,
								Description:     "Exercises to identify parts of speech in context",
								Difficulty:      Beginner,
								DurationMinutes: 20,
							},
						},
					},
					{
						ID:          "english-grammar-sentences",
						Title:       "Sentence Structure",
						Description: "Building effective and grammatically correct sentences",
						KeyPoints: []string{
							"Subject-verb agreement",
							"Simple, compound, and complex sentences",
							"Punctuation rules",
							"Common sentence errors",
						},
						Resources: []Resource{
							{
								Title:           "Sentence Structure Explained",
								Type:            ResourceVideo,
								Description:     "Visual guide to creating strong sentences",
								Difficulty:      Beginner,
								DurationMinutes: 18,
							},
							{
								Title:           "Sentence Structure Quiz",
								Type:            ResourceQuiz,
								Description:     "Test your understanding of sentence construction",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
						},
					},
				},
			},
			{
				ID:                   "english-writing",
				Title:                "Writing Essays",
				Description:          "Crafting effective essays and arguments",
				Difficulty:           Intermediate,
				PrerequisiteTopicIDs: []string{"english-grammar"},
				SubTopics: []SubTopic{
					{
						ID:          "english-writing-structure",
						Title:       "Essay Structure",
						Description: "Organization and components of effective essays",
						KeyPoints: []string{
							"Introduction, body, and conclusion",
							"Thesis statements",
							"Topic sentences and transitions",
							"Supporting evidence and examples",
						},
						Resources: []Resource{
							{
								Title:           "Essay Structure Blueprint",
								Type:            ResourceArticle,
								Description:     "Complete guide to structuring effective essays",
								Difficulty:      Intermediate,
								DurationMinutes: 20,
							},
							{
								Title:           "Essay Planning Workshop",
								Type:            ResourceInteractive,
								Description:     "Interactive tool to plan and structure your essay",
								Difficulty:      Intermediate,
								DurationMinutes: 30,
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "history",
		Name:        "History",
		Description: "Explore the past to understand the present and shape the future",
		Color:       "#9F7AEA",
		Topics: []Topic{
			{
				ID:          "history-ancient",
				Title:       "Ancient Civilizations",
				Description: "Early human societies and their contributions",
				Difficulty:  Beginner,
				SubTopics: []SubTopic{
					{
						ID:          "history-ancient-mesopotamia",
						Title:       "Mesopotamia",
						Description: "The cradle of civilization between the Tigris and Euphrates rivers",
						KeyPoints: []string{
							"Development of writing (cuneiform)",
							"Early cities and governance",
							"Sumerian, Akkadian, and Babylonian cultures",
							"Code of Hammurabi",
						},
						Resources: []Resource{
							{
								Title:           "Mesopotamia Overview",
								Type:            ResourceVideo,
								Description:     "Visual journey through Mesopotamian civilization",
								Difficulty:      Beginner,
								DurationMinutes: 22,
							},
							{
								Title:           "Mesopotamian Artifacts Interactive",
								Type:            ResourceInteractive,
								Description:     "Explore important artifacts and their significance",
								Difficulty:      Beginner,
								DurationMinutes: 25,
							},
						},
					},
					{
						ID:          "history-ancient-egypt",
						Title:       "Ancient Egypt",
						Description: "Civilization along the Nile River",
						KeyPoints: []string{
							"Pharaohs and social structure",
							"Pyramids and monuments",
							"Religious beliefs and practices",
							"Daily life in ancient Egypt",
						},
						Resources: []Resource{
							{
								Title:           "Egypt: Life Along the Nile",
								Type:            ResourceArticle,
								Description:     "Comprehensive overview of Egyptian civilization",
								Difficulty:      Beginner,
								DurationMinutes: 18,
							},
							{
								Title:           "Egyptian Chronology Quiz",
								Type:            ResourceQuiz,
								Description:     "Test your knowledge of Egyptian timelines and events",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
						},
					},
				},
			},
		},
	},
	{
		ID:          "programming",
		Name:        "Programming",
		Description: "Learn to code and create software solutions",
		Color:       "#3182CE",
		Topics: []Topic{
			{
				ID:          "programming-basics",
				Title:       "Programming Basics",
				Description: "Fundamental concepts of coding and computer science",
				Difficulty:  Beginner,
				SubTopics: []SubTopic{
					{
						ID:          "programming-basics-concepts",
						Title:       "Core Concepts",
						Description: "Essential programming principles and terminologies",
						KeyPoints: []string{
							"Variables and data types",
							"Control flow (if statements, loops)",
							"Functions and methods",
							"Basic algorithms",
						},
						Resources: []Resource{
							{
								Title:           "Programming Fundamentals",
								Type:            ResourceVideo,
								Description:     "Introduction to core programming concepts",
								Difficulty:      Beginner,
								DurationMinutes: 25,
							},
							{
								Title:           "Coding Basics Practice",
								Type:            ResourcePractice,
								Description:     "Hands-on practice with basic programming concepts",
								Difficulty:      Beginner,
								DurationMinutes: 30,
							},
						},
					},
					{
						ID:          "programming-basics-languages",
						Title:       "Introduction to Languages",
						Description: "Overview of common programming languages and their uses",
						KeyPoints: []string{
							"JavaScript and web development",
							"Python for versatility and data science",
							"Java and object-oriented programming",
							"Choosing the right language for your goals",
						},
						Resources: []Resource{
							{
								Title:           "Programming Language Comparison",
								Type:            ResourceArticle,
								Description:     "Detailed comparison of popular programming languages",
								Difficulty:      Beginner,
								DurationMinutes: 20,
							},
							{
								Title:           "Language Selection Interactive Guide",
								Type:            ResourceInteractive,
								Description:     "Interactive tool to help choose your first language",
								Difficulty:      Beginner,
								DurationMinutes: 15,
							},
						},
					},
				},
			},
			{
				ID:                   "programming-web",
				Title:                "Web Development",
				Description:          "Creating websites and web applications",
				Difficulty:           Intermediate,
				PrerequisiteTopicIDs: []string{"programming-basics"},
				SubTopics: []SubTopic{
					{
						ID:          "programming-web-html-css",
						Title:       "HTML and CSS Fundamentals",
						Description: "Building blocks of web pages",
						KeyPoints: []string{
							"HTML document structure",
							"CSS styling and selectors",
							"Responsive design principles",
							"Forms and user input",
						},
						Resources: []Resource{
							{
								Title:           "HTML & CSS Bootcamp",
								Type:            ResourceVideo,
								Description:     "Comprehensive introduction to HTML and CSS",
								Difficulty:      Intermediate,
								DurationMinutes: 35,
							},
							{
								Title:           "Web Page Builder",
								Type:            ResourceInteractive,
								Description:     "Interactive tool to practice HTML/CSS concepts",
								Difficulty:      Intermediate,
								DurationMinutes: 30,
							},
						},
					},
				},
			},
		},
	},
}
