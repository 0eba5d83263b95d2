package routes

import (
	"mecanica_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs              = "/jobs"
	PathWorkOrderSessions = "/work-order-sessions"
	PathCatalog           = "/catalog"
	PathQuotes            = "/quotes"
)

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.GET("/:id/transitions", h.GetTransitions)
		jobs.GET("/:id/work-order", h.GetWorkOrder)
		jobs.GET("/:id/events", h.WatchJob)
	}

	mutations := rg.Group(PathJobs, handlers.RequireActor())
	{
		mutations.POST("", h.CreateJob)
		mutations.PATCH("/:id/status", h.ChangeStatus)
		mutations.PATCH("/:id/assign", h.AssignMechanic)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderSessionHandler) {
	rg.POST(PathJobs+"/:id/work-order/sessions", handlers.RequireActor(), h.Open)

	sessions := rg.Group(PathWorkOrderSessions+"/:session_id", handlers.RequireActor())
	{
		sessions.GET("", h.Get)
		sessions.DELETE("", h.Discard)

		sessions.POST("/services", h.AddService)
		sessions.PATCH("/services/:item_id", h.UpdateService)
		sessions.DELETE("/services/:item_id", h.RemoveService)

		sessions.POST("/findings", h.AddFinding)
		sessions.PATCH("/findings/:item_id", h.UpdateFinding)
		sessions.DELETE("/findings/:item_id", h.RemoveFinding)

		sessions.POST("/parts", h.AddPart)
		sessions.PATCH("/parts/:item_id", h.UpdatePart)
		sessions.DELETE("/parts/:item_id", h.RemovePart)

		sessions.PATCH("/discount", h.SetDiscount)
		sessions.POST("/finalize", h.Finalize)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", h.ListServices)
		catalog.GET("/parts", h.ListParts)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes+"/:id", handlers.RequireActor())
	{
		quotes.GET("", h.GetQuote)
		quotes.PATCH("/approve", h.ApproveQuote)
		quotes.PATCH("/reject", h.RejectQuote)
	}
}
