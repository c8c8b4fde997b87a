package routes

import (
	"propdraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathAI        = "/ai"
	PathPricing   = "/pricing"
	PathTimeline  = "/timeline"
)

func addProposalRoutes(
	rg *gin.RouterGroup,
	proposalHandler *handlers.ProposalHandler,
	analysisHandler *handlers.AnalysisHandler,
	pricingHandler *handlers.PricingHandler,
	timelineHandler *handlers.TimelineHandler,
) {
	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", proposalHandler.ListProposals)
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id/title", proposalHandler.UpdateTitle)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
		proposals.POST("/:id/files", proposalHandler.UploadFiles)
		proposals.PUT("/:id/requirements", proposalHandler.UpdateRequirements)
		proposals.PATCH("/:id/section/:section", proposalHandler.UpdateSection)
	}

	aiGroup := rg.Group(PathAI)
	{
		aiGroup.POST("/:id/process", analysisHandler.Process)
		aiGroup.POST("/:id/analyze", analysisHandler.Analyze)
		aiGroup.POST("/:id/generate", analysisHandler.Generate)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/:id/items", pricingHandler.ApplyItems)
	}

	timeline := rg.Group(PathTimeline)
	{
		timeline.PUT("/:id", timelineHandler.SaveTimeline)
		timeline.PATCH("/:id/milestone", timelineHandler.SetMilestonePercentage)
	}
}
