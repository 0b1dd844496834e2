package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for a stay; without room_name the first free room is assigned
// @Tags reservations
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{name}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.BookParams{
		HotelName:    c.Param("name"),
		GuestName:    req.GuestName,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		RoomName:     req.GetRoomName(),
		DiscountCode: req.GetDiscountCode(),
	}
	result, err := h.reservationCommands.Book(c.Request.Context(), params)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

// @Summary List reservations
// @Description List every reservation of the hotel
// @Tags reservations
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	items, err := h.reservationQueries.List(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortDomainError(c, err)
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i := range items {
		response[i] = resdto.FromReservationListItem(&items[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get reservation
// @Description Get one reservation with its nightly price breakdown
// @Tags reservations
// @Produce json
// @Param name path string true "Hotel name"
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.Get(c.Request.Context(), c.Param("name"), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Drop a reservation and free its nights
// @Tags reservations
// @Param name path string true "Hotel name"
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), c.Param("name"), id); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Choose package
// @Description Attach an add-on package to a reservation of three nights or more; one per reservation
// @Tags reservations
// @Accept json
// @Param name path string true "Hotel name"
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChoosePackageRequest true "Package name"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{name}/reservations/{id}/package [put]
func (h *ReservationHandler) ChoosePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.ChoosePackageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.ChoosePackageParams{
		HotelName:     c.Param("name"),
		ReservationID: id,
		Package:       req.Package,
	}
	if err := h.reservationCommands.ChoosePackage(c.Request.Context(), params); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
