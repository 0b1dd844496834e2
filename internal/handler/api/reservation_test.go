//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/hotels/:name/reservations", s.handler.CreateReservation)
	s.router.GET("/hotels/:name/reservations", s.handler.ListReservations)
	s.router.GET("/hotels/:name/reservations/:id", s.handler.GetReservation)
	s.router.DELETE("/hotels/:name/reservations/:id", s.handler.CancelReservation)
	s.router.PUT("/hotels/:name/reservations/:id/package", s.handler.ChoosePackage)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/hotels/manila-grand/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.BookResult{
		ReservationID: uuid.New(),
		RoomName:      "MG01",
		Total:         3000.0,
	}

	s.Run("success: returns 201 Created with the booked room", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("MG01", resp["roomName"])
	})

	s.Run("validation: day bounds enforced by binding", func() {
		cases := []testCaseReservation{
			{name: "missing guest name", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
			{name: "check-in below 1", mutate: testutil.Field("check_in", 0), expectCode: http.StatusBadRequest},
			{name: "check-in above 30", mutate: testutil.Field("check_in", 31), expectCode: http.StatusBadRequest},
			{name: "check-out above 31", mutate: testutil.Field("check_out", 32), expectCode: http.StatusBadRequest},
			{name: "check-out below 2", mutate: testutil.Field("check_out", 1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("domain errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "room unavailable", err: hotel.ErrRoomUnavailable, expectCode: http.StatusConflict},
			{name: "no room free", err: hotel.ErrNoRoomAvailable, expectCode: http.StatusConflict},
			{name: "unknown room", err: hotel.ErrRoomNotFound, expectCode: http.StatusNotFound},
			{name: "inverted stay", err: reservation.ErrInvalidStay, expectCode: http.StatusBadRequest},
			{name: "unknown discount", err: reservation.ErrUnknownDiscountCode, expectCode: http.StatusBadRequest},
			{name: "ineligible discount", err: reservation.ErrDiscountNotEligible, expectCode: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	id := uuid.New()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "manila-grand", id).
			Return(&queries.ReservationView{ID: id, GuestName: "Jose Rizal"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/manila-grand/reservations/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("validation: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/manila-grand/reservations/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not found: returns 404", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "manila-grand", id).
			Return(nil, hotel.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/manila-grand/reservations/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "manila-grand", id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/hotels/manila-grand/reservations/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found: returns 404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), "manila-grand", id).
			Return(hotel.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/hotels/manila-grand/reservations/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestChoosePackage() {
	id := uuid.New()
	url := "/hotels/manila-grand/reservations/" + id.String() + "/package"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ChoosePackage(gomock.Any(), commands.ChoosePackageParams{
			HotelName:     "manila-grand",
			ReservationID: id,
			Package:       "massage",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"package": "massage"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unprocessable: package rules map to 422", func() {
		cases := []struct {
			name string
			err  error
		}{
			{name: "already set", err: reservation.ErrPackageAlreadySet},
			{name: "stay too short", err: reservation.ErrStayTooShort},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ChoosePackage(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"package": "massage"})
				s.Equal(http.StatusUnprocessableEntity, rec.Code)
			})
		}
	})

	s.Run("bad request: unknown package maps to 400", func() {
		s.mockCommands.EXPECT().ChoosePackage(gomock.Any(), gomock.Any()).
			Return(reservation.ErrUnknownPackage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"package": "helicopter-tour"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: missing package field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
