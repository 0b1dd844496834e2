package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, hotelHandler *api.HotelHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, hotelHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, hotelHandler *api.HotelHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:name", Handler: hotelHandler.GetHotel},
				{Method: http.MethodPatch, Path: "/:name", Handler: hotelHandler.RenameHotel},
				{Method: http.MethodDelete, Path: "/:name", Handler: hotelHandler.DeleteHotel},
				{Method: http.MethodGet, Path: "/:name/occupancy", Handler: hotelHandler.Occupancy},

				{Method: http.MethodPost, Path: "/:name/rooms", Handler: hotelHandler.AddRooms},
				{Method: http.MethodGet, Path: "/:name/rooms", Handler: hotelHandler.ListRooms},
				{Method: http.MethodPut, Path: "/:name/rooms/price", Handler: hotelHandler.UpdatePrice},
				{Method: http.MethodDelete, Path: "/:name/rooms/:room", Handler: hotelHandler.RemoveRoom},
				{Method: http.MethodGet, Path: "/:name/rooms/:room/availability", Handler: hotelHandler.RoomAvailability},
				{Method: http.MethodGet, Path: "/:name/rooms/:room/quote", Handler: hotelHandler.QuoteStay},

				{Method: http.MethodPut, Path: "/:name/rates/:day", Handler: hotelHandler.SetRateOverride},
				{Method: http.MethodDelete, Path: "/:name/rates/:day", Handler: hotelHandler.ClearRateOverride},

				{Method: http.MethodPost, Path: "/:name/reservations", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:name/reservations", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:name/reservations/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:name/reservations/:id", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPut, Path: "/:name/reservations/:id/package", Handler: reservationHandler.ChoosePackage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
