package service

import "fmt"

const evaluatorSystemPrompt = "You are an expert AI interviewer. When given a question and answer, evaluate it and return a structured response in this exact format, one field per line:\n" +
	"Score (overall, out of 5): <number>\n" +
	"Correctness (0–5): <number>\n" +
	"Completeness (0–5): <number>\n" +
	"Clarity (0–5): <number>\n" +
	"Feedback: <Concise feedback in 2–3 sentences, highlighting strengths and one area for improvement.>\n" +
	"If the answer is irrelevant or incorrect, still provide the structure with appropriate scores (e.g., 0) and explain why in feedback."

const generatorSystemPrompt = "You are an expert AI that generates interview questions. " +
	"Return a numbered list, one question per item (\"1. ...\"). " +
	"Most questions should be 1–2 lines. If necessary (e.g., for coding tasks), you may use up to 4 lines."

func evaluationPrompt(questionText, answerText string) string {
	return fmt.Sprintf("Question: %s\nAnswer: %s", questionText, answerText)
}

func generationPrompt(req GenerateQuestionsRequest) string {
	return fmt.Sprintf("Generate %d %s %s interview questions", req.Quantity, req.Difficulty, req.Type)
}
