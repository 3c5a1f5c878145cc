package routers

import (
	"fmt"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPharmacyRoutes(router chi.Router, middlewares *middlewares.Middlewares, pharmacyController *controllers.PharmacyController) {
	router.Use(middlewares.RequirePharmacySession)

	router.Get("/products", pharmacyController.FindProducts)
	router.Post("/products", pharmacyController.SaveProduct)
	router.Put(fmt.Sprintf("/products/{%s}", constvars.URLParamProductID), pharmacyController.UpdateProduct)
	router.Get("/orders", pharmacyController.FindOrders)
	router.Get(fmt.Sprintf("/orders/{%s}", constvars.URLParamOrderID), pharmacyController.FindOrderByID)
	router.Patch(fmt.Sprintf("/orders/{%s}/status", constvars.URLParamOrderID), pharmacyController.UpdateOrderStatus)
	router.Get(fmt.Sprintf("/orders/{%s}/invoice", constvars.URLParamOrderID), pharmacyController.DownloadInvoice)
	router.Get("/profile", pharmacyController.Profile)
	router.Put("/profile", pharmacyController.UpdateProfile)
	router.Get("/earnings", pharmacyController.Earnings)
	router.Get("/support", pharmacyController.Support)
}
