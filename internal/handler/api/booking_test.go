//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"toaigo/internal/domain/user"
	resdto "toaigo/internal/handler/dto/response"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"
	"toaigo/tests/common/httptest"
	"toaigo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	env *apiEnv
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.env = newAPIEnv()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// seedPending appends a pending diner booking through the command layer.
func (s *BookingHandlerTestSuite) seedPending() queries.BookingView {
	view, err := s.env.commands.Create(context.Background(), commands.CreateBookingInput{
		MerchantID: "1",
		Date:       "2026-09-10",
		Time:       "19:00",
		Guests:     2,
		ServiceIDs: []string{"s1-1"},
	}, user.User{ID: "user1", Role: user.RoleCustomer})
	s.Require().NoError(err)
	return *view
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	s.Run("customer creates a pending booking", func() {
		token := s.env.tokenFor(s.T(), "user1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, dinerBookingBody(), token)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("1", res.MerchantID)
		s.Equal("Pending", res.Status)
		s.Equal("Table for 2 Reservation", res.ServiceName)
		s.InDelta(10.0, res.BookingCost, 1e-9)
		s.InDelta(0.5, res.Commission, 1e-9)
		s.InDelta(9.5, res.MerchantPayout, 1e-9)
	})

	s.Run("missing token is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, dinerBookingBody(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("merchant role may not create", func() {
		token := s.env.tokenFor(s.T(), "merchant1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, dinerBookingBody(), token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("binding failures are bad requests", func() {
		token := s.env.tokenFor(s.T(), "user1")
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing merchant", mutate: testutil.Field("merchantId", nil)},
			{name: "zero guests", mutate: testutil.Field("guests", 0)},
			{name: "empty services", mutate: testutil.Field("serviceIds", []string{})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), dinerBookingBody(), tc.mutate)

				w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, body, token)

				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("unknown merchant is not found", func() {
		token := s.env.tokenFor(s.T(), "user1")
		body := dinerBookingBody()
		body["merchantId"] = "99"

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, body, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Merchant not found")
	})

	s.Run("service from another merchant fails validation", func() {
		token := s.env.tokenFor(s.T(), "user1")
		body := dinerBookingBody()
		body["serviceIds"] = []string{"s2-1"}

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, url, body, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"

	s.Run("authenticated users see the booking list", func() {
		s.seedPending()
		token := s.env.tokenFor(s.T(), "user1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, url, nil, token)

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
		s.Equal("1", res[0].MerchantID)
	})

	s.Run("anonymous access is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	s.Run("owning merchant confirms", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "merchant1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+pending.ID.String()+"/status",
			map[string]any{"status": "Confirmed"}, token)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("Confirmed", res.Status)
	})

	s.Run("admin rejects any booking", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "admin1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+pending.ID.String()+"/status",
			map[string]any{"status": "Rejected"}, token)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("Rejected", res.Status)
	})

	s.Run("terminal booking conflicts", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "admin1")
		path := "/api/bookings/" + pending.ID.String() + "/status"

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch, path,
			map[string]any{"status": "Confirmed"}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch, path,
			map[string]any{"status": "Rejected"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "only change while pending")
	})

	s.Run("other merchant is forbidden", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "merchant2")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+pending.ID.String()+"/status",
			map[string]any{"status": "Confirmed"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("customer role is forbidden by the route guard", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "user1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+pending.ID.String()+"/status",
			map[string]any{"status": "Confirmed"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("malformed id is a bad request", func() {
		token := s.env.tokenFor(s.T(), "admin1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/not-a-uuid/status",
			map[string]any{"status": "Confirmed"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("pending target fails binding", func() {
		pending := s.seedPending()
		token := s.env.tokenFor(s.T(), "admin1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+pending.ID.String()+"/status",
			map[string]any{"status": "Pending"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown booking is not found", func() {
		token := s.env.tokenFor(s.T(), "admin1")

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPatch,
			"/api/bookings/"+uuid.NewString()+"/status",
			map[string]any{"status": "Confirmed"}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}
