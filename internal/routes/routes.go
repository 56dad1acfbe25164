package routes

import (
	"reviewboard-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the review API. Paths are mounted at the root so the
// client's /reviews fetch calls work unchanged. uploadHandler may be nil
// when object storage is not configured.
func Setup(app *fiber.App, reviewHandler *handlers.ReviewHandler, uploadHandler *handlers.UploadHandler) {
	reviews := app.Group("/reviews")
	{
		reviews.Get("/", reviewHandler.ListReviews)
		reviews.Post("/", reviewHandler.CreateReview)

		if uploadHandler != nil {
			reviews.Get("/thumbnails/presign", uploadHandler.PresignThumbnail)
		}

		reviews.Get("/:id", reviewHandler.GetReviewByID)
		reviews.Put("/:id", reviewHandler.UpdateReview)
		reviews.Delete("/:id", reviewHandler.DeleteReview)
	}

	app.Get("/genres", reviewHandler.ListGenres)
}
