package controller

import (
	"interview_prep_backend/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

type AnswerResponse struct {
	ID            uint      `json:"id"`
	Text          string    `json:"text"`
	FileURL       string    `json:"fileUrl"`
	AnswerType    string    `json:"answerType"`
	SubmittedAt   time.Time `json:"submittedAt"`
	QuestionID    uint      `json:"questionId"`
	QuestionText  string    `json:"questionText"`
	UserID        uint      `json:"userId"`
	Feedback      *string   `json:"feedback"`
	Score         *int      `json:"score"`
	Correctness   *int      `json:"correctness"`
	Completeness  *int      `json:"completeness"`
	Clarity       *int      `json:"clarity"`
	MediaDuration *float64  `json:"mediaDuration,omitempty"`
}

func toAnswerResponse(answer *model.Answer) (*AnswerResponse, error) {
	var resp AnswerResponse
	if err := copier.Copy(&resp, answer); err != nil {
		return nil, err
	}
	resp.AnswerType = string(answer.AnswerType)
	if answer.Question != nil {
		resp.QuestionText = answer.Question.Text
	}
	return &resp, nil
}

type QuestionPreviewResponse struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Tags       string `json:"tags"`
}

func toQuestionPreviews(questions []model.Question) ([]QuestionPreviewResponse, error) {
	previews := make([]QuestionPreviewResponse, 0, len(questions))
	if err := copier.Copy(&previews, &questions); err != nil {
		return nil, err
	}
	return previews, nil
}

type QuestionSetResponse struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Tags       string   `json:"tags"`
	Status     string   `json:"status"`
	Questions  []string `json:"questions"`
}

func toQuestionSetResponse(set *model.QuestionSet) *QuestionSetResponse {
	resp := &QuestionSetResponse{
		ID:         set.ID,
		Name:       set.Name,
		Type:       set.Type,
		Difficulty: set.Difficulty,
		Tags:       set.Tags,
		Status:     string(set.Status),
		Questions:  make([]string, 0, len(set.Questions)),
	}
	for _, q := range set.Questions {
		resp.Questions = append(resp.Questions, q.Text)
	}
	return resp
}
