// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canpestre/internal/delivery/http/router/handler"
	"canpestre/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OwnerHandler        *handler.OwnerHandler
	PetHandler          *handler.PetHandler
	LocationHandler     *handler.LocationHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	ownerHandler        *handler.OwnerHandler
	petHandler          *handler.PetHandler
	locationHandler     *handler.LocationHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ownerHandler:        params.OwnerHandler,
		petHandler:          params.PetHandler,
		locationHandler:     params.LocationHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Route names follow the original public API, clients included.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location tracking routes
	locationGroup := e.Group("/location")
	{
		locationGroup.GET("/location_list", r.locationHandler.ListLocations)
		locationGroup.POST("/location_list", r.locationHandler.CreateLocation)
		locationGroup.POST("/mobile/", r.locationHandler.CreateLocation)
		locationGroup.GET("/latest", r.locationHandler.LatestLocations)
	}

	// Owner CRUD routes
	ownerGroup := e.Group("/duenos")
	{
		ownerGroup.GET("/duenos_list", r.ownerHandler.ListOwners)
		ownerGroup.POST("/duenos_create", r.ownerHandler.CreateOwner)
		ownerGroup.GET("/duenos_id/:id", r.ownerHandler.GetOwner)
		ownerGroup.PUT("/duenos_update/:id", r.ownerHandler.UpdateOwner)
		ownerGroup.DELETE("/duenos_delete/:id", r.ownerHandler.DeleteOwner)
	}

	// Pet CRUD routes
	petGroup := e.Group("/mascotas")
	{
		petGroup.GET("/mascotas_list", r.petHandler.ListPets)
		petGroup.POST("/mascotas_create", r.petHandler.CreatePet)
		petGroup.GET("/mascotas_id/:id", r.petHandler.GetPet)
		petGroup.PUT("/mascotas_update/:id", r.petHandler.UpdatePet)
		petGroup.DELETE("/mascotas_delete/:id", r.petHandler.DeletePet)
	}
}
