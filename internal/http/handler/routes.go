package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"printshop/internal/service"
)

// Services bundles the use-case implementations the routes dispatch to.
type Services struct {
	Auth    service.AuthService
	Quotes  service.QuoteService
	Catalog service.CatalogService
	Posts   service.PostService
	Gallery service.GalleryService
	Orders  service.OrderService
	Media   service.MediaService
}

// RegisterRoutes attaches all HTTP routes to the Fiber app. The admin gate
// middleware must be registered on the app before this is called; routes
// under /api/admin other than login rely on it for authentication.
// secureCookies controls the Secure flag on session cookies.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, secureCookies bool) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Public storefront API
	api := app.Group("/api")
	api.Post("/quotes", SubmitQuote(svcs.Quotes))
	api.Get("/products", ListProducts(svcs.Catalog, true))
	api.Get("/products/:id", GetProduct(svcs.Catalog))
	api.Get("/categories", ListCategories(svcs.Catalog))
	api.Get("/posts", ListPosts(svcs.Posts, true))
	api.Get("/posts/:slug", GetPostBySlug(svcs.Posts))
	api.Get("/gallery", ListGallery(svcs.Gallery, true))

	// Admin API; login is passed through the gate, everything else requires
	// a valid session cookie.
	admin := api.Group("/admin")
	admin.Post("/login", Login(svcs.Auth, secureCookies))
	admin.Post("/logout", Logout(secureCookies))
	admin.Post("/account/change-password", ChangePassword(svcs.Auth))

	admin.Get("/quotes", ListQuotes(svcs.Quotes))
	admin.Get("/quotes/:id", GetQuote(svcs.Quotes))
	admin.Patch("/quotes/:id", ReviewQuote(svcs.Quotes))

	admin.Get("/products", ListProducts(svcs.Catalog, false))
	admin.Get("/products/:id", GetProduct(svcs.Catalog))
	admin.Post("/products", CreateProduct(svcs.Catalog))
	admin.Put("/products/:id", UpdateProduct(svcs.Catalog))
	admin.Delete("/products/:id", DeleteProduct(svcs.Catalog))

	admin.Get("/categories", ListCategories(svcs.Catalog))
	admin.Get("/categories/:id", GetCategory(svcs.Catalog))
	admin.Post("/categories", CreateCategory(svcs.Catalog))
	admin.Put("/categories/:id", UpdateCategory(svcs.Catalog))
	admin.Delete("/categories/:id", DeleteCategory(svcs.Catalog))

	admin.Get("/posts", ListPosts(svcs.Posts, false))
	admin.Get("/posts/:id", GetPost(svcs.Posts))
	admin.Post("/posts", CreatePost(svcs.Posts))
	admin.Put("/posts/:id", UpdatePost(svcs.Posts))
	admin.Delete("/posts/:id", DeletePost(svcs.Posts))

	admin.Get("/gallery", ListGallery(svcs.Gallery, false))
	admin.Get("/gallery/:id", GetGalleryImage(svcs.Gallery))
	admin.Post("/gallery", CreateGalleryImage(svcs.Gallery))
	admin.Put("/gallery/:id", UpdateGalleryImage(svcs.Gallery))
	admin.Delete("/gallery/:id", DeleteGalleryImage(svcs.Gallery))

	admin.Get("/orders", ListOrders(svcs.Orders))
	admin.Get("/orders/:id", GetOrder(svcs.Orders))
	admin.Patch("/orders/:id", UpdateOrder(svcs.Orders))

	admin.Post("/uploads/blog", UploadImage(svcs.Media, service.ImageKindBlog))
	admin.Post("/uploads/gallery", UploadImage(svcs.Media, service.ImageKindGallery))
}
