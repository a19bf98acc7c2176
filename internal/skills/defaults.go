package skills

// defaultCanonical is the built-in canonical skill list. Entries are stored
// lowercase; Normalize handles incoming case and whitespace.
var defaultCanonical = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"go",
	"rust",
	"c++",
	"c#",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"scala",
	"sql",
	"html",
	"css",
	"react",
	"angular",
	"vue",
	"svelte",
	"next.js",
	"node.js",
	"express",
	"django",
	"flask",
	"spring",
	"rails",
	"laravel",
	".net",
	"graphql",
	"rest",
	"grpc",
	"postgresql",
	"mysql",
	"mongodb",
	"redis",
	"elasticsearch",
	"sqlite",
	"dynamodb",
	"cassandra",
	"kafka",
	"rabbitmq",
	"docker",
	"kubernetes",
	"terraform",
	"ansible",
	"jenkins",
	"aws",
	"azure",
	"gcp",
	"linux",
	"git",
	"ci/cd",
	"microservices",
	"machine learning",
	"deep learning",
	"data analysis",
	"pandas",
	"numpy",
	"tensorflow",
	"pytorch",
	"tableau",
	"power bi",
	"agile",
	"scrum",
	"jira",
	"figma",
	"photoshop",
	"excel",
}

// defaultAliases maps common free-text variants to canonical skill names.
var defaultAliases = map[string]string{
	"js":            "javascript",
	"ecmascript":    "javascript",
	"ts":            "typescript",
	"golang":        "go",
	"go lang":       "go",
	"py":            "python",
	"python3":       "python",
	"c sharp":       "c#",
	"csharp":        "c#",
	"cpp":           "c++",
	"c plus plus":   "c++",
	"rb":            "ruby",
	"react.js":      "react",
	"reactjs":       "react",
	"react native":  "react",
	"angular.js":    "angular",
	"angularjs":     "angular",
	"vue.js":        "vue",
	"vuejs":         "vue",
	"nextjs":        "next.js",
	"next":          "next.js",
	"node":          "node.js",
	"nodejs":        "node.js",
	"express.js":    "express",
	"expressjs":     "express",
	"spring boot":   "spring",
	"ruby on rails": "rails",
	"dotnet":        ".net",
	"asp.net":       ".net",
	"postgres":      "postgresql",
	"psql":          "postgresql",
	"mongo":         "mongodb",
	"elastic":       "elasticsearch",
	"k8s":           "kubernetes",
	"kube":          "kubernetes",
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"google cloud platform": "gcp",
	"ms azure":              "azure",
	"ml":                    "machine learning",
	"dl":                    "deep learning",
	"tf":                    "tensorflow",
	"ci cd":                 "ci/cd",
	"cicd":                  "ci/cd",
	"continuous integration": "ci/cd",
	"restful":                "rest",
	"rest api":               "rest",
	"restful api":            "rest",
	"microservice":           "microservices",
	"ms excel":               "excel",
	"powerbi":                "power bi",
}

// defaultStopWords are common English words excluded from semantic-match
// tokenization.
var defaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "man", "new", "now", "old", "see", "two", "way", "who", "its",
	"did", "yes", "she", "may", "say", "each", "which", "their", "will",
	"about", "would", "there", "could", "other", "more", "very", "what",
	"know", "just", "than", "them", "some", "into", "your", "work", "with",
	"have", "this", "that", "from", "they", "been", "were", "when", "where",
	"while", "should", "must", "also", "such", "able", "well", "including",
	"required", "preferred", "experience", "years", "team", "role", "skills",
}
