package request

type ProcessRequest struct {
	UserRequirements string `json:"user_requirements"`
}

type AnalyzeRequest struct {
	UserFeedback string `json:"user_feedback" binding:"required"`
}
