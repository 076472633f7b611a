package quizgen

import (
	"fmt"

	"page-quiz/internal/domain"
)

var difficultyDescriptions = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "basic questions that a beginner can answer after one read",
	domain.DifficultyMedium: "intermediate questions that deepen understanding of the content",
	domain.DifficultyHard:   "advanced questions that test deep understanding and the ability to apply it",
}

var languageNames = map[domain.Language]string{
	domain.LanguageJapanese: "Japanese",
	domain.LanguageEnglish:  "English",
}

const promptTemplate = `You are an expert in educational content. Analyze the following web page and create a quiz that measures how well a reader understood it.

[Web page]
Title: %s
URL: %s
Content:
%s

[Quiz requirements]
- Number of questions: %d
- Difficulty: %s (%s)
- Language: %s
- Format: multiple choice with exactly 4 options and exactly one correct answer

[Guidelines]
1. Focus on the main topics and key concepts of the page.
2. Ask about facts, figures, definitions, and causes and effects.
3. Keep options clear and unambiguous.
4. Keep all options grammatically correct and of similar length.
5. Make the incorrect options plausible.
6. Give every question a short, clear explanation.

[Output format]
Respond with JSON only, in exactly the following format. Do not include any other text.

{
  "questions": [
    {
      "question": "question text",
      "options": [
        "option 1",
        "option 2",
        "option 3",
        "option 4"
      ],
      "correctAnswer": 0,
      "explanation": "why the answer is correct"
    }
  ]
}

correctAnswer is the 0-based index (0 to 3) of the correct entry in options.`

// BuildPrompt renders the generation instruction for params. It is deterministic:
// the same params always produce the same prompt.
func BuildPrompt(params domain.QuizGenerationParams) string {
	language, ok := languageNames[params.Language]
	if !ok {
		language = languageNames[domain.DefaultLanguage]
	}
	return fmt.Sprintf(promptTemplate,
		params.Title,
		params.URL,
		params.Content,
		params.QuestionCount,
		params.Difficulty,
		difficultyDescriptions[params.Difficulty],
		language,
	)
}
