// Package catalog holds the fixed question set served by the API. The
// questions are constant; pagination and filtering happen in the service
// layer.
package catalog

import "github.com/ypd-labs/cvp-lite-backend/internal/assessment/domain"

const generatedAt = "2025-08-21T07:15:00Z"

var questions = []domain.Question{
	{
		ID:   "5d2f6f6a-3a3b-4c2b-9f0f-8e9b4f2f5b77",
		Text: "Which activity do you enjoy the most?",
		Type: "single_choice",
		Options: []domain.QuestionOption{
			{
				ID:    "opt1",
				Label: "Building a model airplane",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक मॉडल हवाई जहाज बनाना",
					En: "Building a model airplane",
				},
			},
			{
				ID:    "opt2",
				Label: "Solving a complex math problem",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक जटिल गणितीय समस्या हल करना",
					En: "Solving a complex math problem",
				},
			},
			{
				ID:    "opt3",
				Label: "Organizing a charity event",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक चैरिटी कार्यक्रम का आयोजन करना",
					En: "Organizing a charity event",
				},
			},
			{
				ID:    "opt4",
				Label: "Creating a piece of art",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक कला का टुकड़ा बनाना",
					En: "Creating a piece of art",
				},
			},
		},
		Required:   true,
		CategoryID: "riasec",
		Weight:     1.5,
		Lang:       "en-IN",
		CreatedAt:  generatedAt,
		Order:      1,
	},
	{
		ID:   "9b0c1a27-9036-4a7a-ae78-0b4d2b6e2a11",
		Text: "Which role would you feel most comfortable in?",
		Type: "single_choice",
		Options: []domain.QuestionOption{
			{
				ID:    "k8JrQ2sM1fZb",
				Label: "A researcher studying a new phenomenon",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक नया घटना अध्ययन करने वाला अध्यापक",
					En: "A researcher studying a new phenomenon",
				},
			},
			{
				ID:    "Wc3hL7r9QyP2",
				Label: "A manager overseeing a team project",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक टीम पर अधिकारी",
					En: "A manager overseeing a team project",
				},
			},
			{
				ID:    "r2b7mK0Xn5Ta",
				Label: "A counselor helping people overcome their problems",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक व्यक्ति को उनके समस्याओं को ओवरहेड करने वाला सलाहकार",
					En: "A counselor helping people overcome their problems",
				},
			},
			{
				ID:    "RANDOM_ID_12345",
				Label: "A time traveler exploring unknown eras",
				LabelTranslations: domain.OptionTranslations{
					Hi: "एक समय यात्री जो अज्ञात युगों की खोज कर रहा है",
					En: "A time traveler exploring unknown eras",
				},
			},
		},
		Required:   true,
		CategoryID: "riasec",
		Weight:     1.5,
		Lang:       "en-IN",
		CreatedAt:  generatedAt,
		Order:      2,
	},
}

var assessment = domain.Assessment{
	ID:              "a9f2d7f0-1e6a-4d9a-8b9e-8e6a1c8b9f22",
	StepType:        "interests_strengths",
	Title:           "Interest & Strengths Discovery",
	ScientificBasis: "riasec",
	GeneratedAt:     generatedAt,
	Categories: []domain.AssessmentCategory{
		{
			ID:          "riasec",
			Name:        "RIASEC Assessment",
			Description: "Holland's RIASEC model assessment",
			Theory:      "Holland's RIASEC Model",
			Weight:      1.5,
		},
		{
			ID:          "mi",
			Name:        "Multiple Intelligences",
			Description: "Gardner's MI assessment",
			Theory:      "Multiple Intelligences",
			Weight:      1.0,
		},
	},
}

// Questions returns the full catalog. Each question is cloned so callers
// cannot mutate the package-level data through shared Options arrays.
func Questions() []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Clone())
	}
	return out
}

// AssessmentInfo returns the assessment metadata attached to every page.
func AssessmentInfo() domain.Assessment {
	return assessment.Clone()
}
