package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
	}
}

// @Summary Create hotel
// @Description Create a hotel with an initial set of rooms per type
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Hotel definition"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateHotelParams{
		Name:      req.Name,
		Scheme:    req.Scheme,
		Standard:  req.Standard,
		Deluxe:    req.Deluxe,
		Executive: req.Executive,
	}
	if err := h.hotelCommands.Create(c.Request.Context(), params); err != nil {
		abortDomainError(c, err)
		return
	}

	view, err := h.hotelQueries.Get(c.Request.Context(), req.Name)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary List hotels
// @Description List every hotel with its room and reservation counts
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelListResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	items, err := h.hotelQueries.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}

	response := make([]*resdto.HotelListResponse, len(items))
	for i := range items {
		response[i] = resdto.FromHotelListItem(&items[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get hotel
// @Description Get one hotel with per-type room counts, rate overrides and earnings
// @Tags hotels
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{name} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	view, err := h.hotelQueries.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Rename hotel
// @Description Rename a hotel; the new name must be unused
// @Tags hotels
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body reqdto.RenameHotelRequest true "New name"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name} [patch]
func (h *HotelHandler) RenameHotel(c *gin.Context) {
	var req reqdto.RenameHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.hotelCommands.Rename(c.Request.Context(), c.Param("name"), req.Name); err != nil {
		abortDomainError(c, err)
		return
	}

	view, err := h.hotelQueries.Get(c.Request.Context(), req.Name)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Delete hotel
// @Description Remove a hotel and everything in it
// @Tags hotels
// @Param name path string true "Hotel name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /hotels/{name} [delete]
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	if err := h.hotelCommands.Remove(c.Request.Context(), c.Param("name")); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add rooms
// @Description Add rooms to an existing hotel; generated names that collide are skipped
// @Tags rooms
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body reqdto.AddRoomsRequest true "Rooms per type"
// @Success 200 {object} resdto.AddRoomsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name}/rooms [post]
func (h *HotelHandler) AddRooms(c *gin.Context) {
	var req reqdto.AddRoomsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.AddRoomsParams{
		HotelName: c.Param("name"),
		Standard:  req.Standard,
		Deluxe:    req.Deluxe,
		Executive: req.Executive,
	}
	result, err := h.hotelCommands.AddRooms(c.Request.Context(), params)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddRoomsResult(result))
}

// @Summary List rooms
// @Description List rooms, optionally narrowed to a type and stay dates to find booking candidates
// @Tags rooms
// @Produce json
// @Param name path string true "Hotel name"
// @Param type query string false "Room type (standard, deluxe, executive)"
// @Param check_in query int false "Check-in day (1-30)"
// @Param check_out query int false "Check-out day (2-31)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms [get]
func (h *HotelHandler) ListRooms(c *gin.Context) {
	filter, err := roomFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.hotelQueries.Rooms(c.Request.Context(), c.Param("name"), filter)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i := range views {
		response[i] = resdto.FromRoomView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Remove room
// @Description Remove one room; refused while the room has reservations
// @Tags rooms
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name}/rooms/{room} [delete]
func (h *HotelHandler) RemoveRoom(c *gin.Context) {
	if err := h.hotelCommands.RemoveRoom(c.Request.Context(), c.Param("name"), c.Param("room")); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update room prices
// @Description Set the base nightly price for every room; locked while any reservation exists
// @Tags rooms
// @Accept json
// @Param name path string true "Hotel name"
// @Param request body reqdto.UpdatePriceRequest true "New base price"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name}/rooms/price [put]
func (h *HotelHandler) UpdatePrice(c *gin.Context) {
	var req reqdto.UpdatePriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.hotelCommands.SetBasePrice(c.Request.Context(), c.Param("name"), req.Price); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set rate override
// @Description Set the price multiplier for one day of the month; locked while any reservation exists
// @Tags rates
// @Accept json
// @Param name path string true "Hotel name"
// @Param day path int true "Day of month (1-31)"
// @Param request body reqdto.SetRateOverrideRequest true "Multiplier (0.5-1.5)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name}/rates/{day} [put]
func (h *HotelHandler) SetRateOverride(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day format",
		})
		return
	}

	var req reqdto.SetRateOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.hotelCommands.SetRateOverride(c.Request.Context(), c.Param("name"), day, req.Rate); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear rate override
// @Description Remove the multiplier for one day, restoring the default rate
// @Tags rates
// @Param name path string true "Hotel name"
// @Param day path int true "Day of month (1-31)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{name}/rates/{day} [delete]
func (h *HotelHandler) ClearRateOverride(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day format",
		})
		return
	}

	if err := h.hotelCommands.ClearRateOverride(c.Request.Context(), c.Param("name"), day); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Room availability
// @Description List the days of the month on which the room is free
// @Tags rooms
// @Produce json
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms/{room}/availability [get]
func (h *HotelHandler) RoomAvailability(c *gin.Context) {
	view, err := h.hotelQueries.Availability(c.Request.Context(), c.Param("name"), c.Param("room"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote a stay
// @Description Price a stay in a room without booking it, night by night
// @Tags rooms
// @Produce json
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Param check_in query int true "Check-in day (1-30)"
// @Param check_out query int true "Check-out day (2-31)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/rooms/{room}/quote [get]
func (h *HotelHandler) QuoteStay(c *gin.Context) {
	checkIn, err := strconv.Atoi(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in format",
		})
		return
	}
	checkOut, err := strconv.Atoi(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out format",
		})
		return
	}

	view, err := h.hotelQueries.Quote(c.Request.Context(), c.Param("name"), c.Param("room"), checkIn, checkOut)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Occupancy for a day
// @Description Count rooms available and booked on one day of the month
// @Tags hotels
// @Produce json
// @Param name path string true "Hotel name"
// @Param date query int true "Day of month (1-31)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{name}/occupancy [get]
func (h *HotelHandler) Occupancy(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.hotelQueries.Occupancy(c.Request.Context(), c.Param("name"), day)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

func roomFilterFromQuery(c *gin.Context) (queries.RoomFilter, error) {
	var filter queries.RoomFilter
	filter.Type = c.Query("type")

	if raw := c.Query("check_in"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.CheckIn = day
	}
	if raw := c.Query("check_out"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.CheckOut = day
	}
	return filter, nil
}
