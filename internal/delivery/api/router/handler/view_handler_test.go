package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"natours/internal/delivery/api/view"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	mockUsecase "natours/internal/mocks/usecase"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type viewHandlerFixtures struct {
	handler   *ViewHandler
	tourUC    *mockUsecase.MockTourUsecase
	bookingUC *mockUsecase.MockBookingUsecase
	userUC    *mockUsecase.MockUserUsecase
}

func createTestViewHandler(t *testing.T) viewHandlerFixtures {
	fx := viewHandlerFixtures{
		tourUC:    mockUsecase.NewMockTourUsecase(t),
		bookingUC: mockUsecase.NewMockBookingUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
	}
	fx.handler = NewViewHandler(fx.tourUC, fx.bookingUC, fx.userUC)

	return fx
}

func newPageContext(t *testing.T, target string, r route) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := newTestContext(t, http.MethodGet, target, "", r)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	c.Echo().Renderer = renderer

	return c, rec
}

func TestViewHandler_Overview(t *testing.T) {
	fx := createTestViewHandler(t)
	fx.tourUC.EXPECT().List(mock.Anything, mock.Anything).Return([]*entity.Tour{forestHiker()}, nil)

	c, page := newPageContext(t, "/", route{})
	require.NoError(t, fx.handler.Overview(c))

	assert.Contains(t, page.Body.String(), "The Forest Hiker")
	assert.Contains(t, page.Body.String(), `href="/tour/the-forest-hiker"`)
}

func TestViewHandler_Tour(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestViewHandler(t)
		fx.tourUC.EXPECT().GetBySlug(mock.Anything, "the-forest-hiker").Return(forestHiker(), nil)

		c, page := newPageContext(t, "/tour/the-forest-hiker",
			route{path: "/tour/:slug", names: []string{"slug"}, values: []string{"the-forest-hiker"}})
		require.NoError(t, fx.handler.Tour(c))

		assert.Contains(t, page.Body.String(), "The Forest Hiker Tour")
	})

	t.Run("unknown slug", func(t *testing.T) {
		fx := createTestViewHandler(t)
		fx.tourUC.EXPECT().GetBySlug(mock.Anything, "nowhere").Return(nil, domainerrors.ErrTourNameNotFound)

		c, _ := newPageContext(t, "/tour/nowhere",
			route{path: "/tour/:slug", names: []string{"slug"}, values: []string{"nowhere"}})

		requireAppError(t, fx.handler.Tour(c), http.StatusNotFound, "There is no tour with that name.")
	})
}

func TestViewHandler_MyTours(t *testing.T) {
	fx := createTestViewHandler(t)
	fx.bookingUC.EXPECT().MyTours(mock.Anything, reviewer.ID).Return([]*entity.Tour{forestHiker()}, nil)

	c, page := newPageContext(t, "/my-tours", route{})
	deliverycontext.SetCurrentUser(c, reviewer)
	require.NoError(t, fx.handler.MyTours(c))

	assert.Contains(t, page.Body.String(), "My Tours")
	assert.Contains(t, page.Body.String(), "The Forest Hiker")
}

func TestViewHandler_CreateBookingCheckout(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "next")
	}

	t.Run("without booking parameters", func(t *testing.T) {
		fx := createTestViewHandler(t)

		c, rec := newTestContext(t, http.MethodGet, "/my-tours", "", route{})
		require.NoError(t, fx.handler.CreateBookingCheckout(next)(c))

		assert.Equal(t, "next", rec.Body.String())
	})

	t.Run("records the booking and drops the query", func(t *testing.T) {
		fx := createTestViewHandler(t)
		fx.bookingUC.EXPECT().Checkout(mock.Anything, &usecase.CheckoutInput{
			TourID: forestHikerID,
			UserID: reviewer.ID,
			Price:  497,
		}).Return(&entity.Booking{ID: bookingID}, nil)

		target := "/my-tours?tour=" + forestHikerID.String() + "&user=" + reviewer.ID.String() + "&price=497"
		c, rec := newTestContext(t, http.MethodGet, target, "", route{})
		require.NoError(t, fx.handler.CreateBookingCheckout(next)(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/my-tours", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("partial parameters are rejected", func(t *testing.T) {
		fx := createTestViewHandler(t)

		c, _ := newTestContext(t, http.MethodGet, "/my-tours?tour="+forestHikerID.String(), "", route{})

		requireAppError(t, fx.handler.CreateBookingCheckout(next)(c), http.StatusBadRequest, "Invalid user: ")
	})
}

func newFormContext(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	e := echo.New()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	return e.NewContext(req, rec), rec
}

func TestViewHandler_SubmitUserData(t *testing.T) {
	ann := &entity.User{ID: uuid.New(), Name: "Ann Smith", Email: "ann@example.com", Role: entity.RoleUser}
	form := url.Values{"name": {"Ann Jones"}, "email": {"ann.jones@example.com"}}

	t.Run("renders the stored user", func(t *testing.T) {
		fx := createTestViewHandler(t)
		fx.userUC.EXPECT().UpdateMe(mock.Anything, ann.ID, mock.MatchedBy(func(in *usecase.UpdateMeInput) bool {
			return in.Name != nil && *in.Name == "Ann Jones" && in.Email != nil && *in.Email == "ann.jones@example.com"
		})).Return(&entity.User{ID: ann.ID, Name: "Ann Jones", Email: "ann.jones@example.com", Role: entity.RoleUser}, nil)

		c, page := newFormContext(t, "/submit-user-data", form)
		deliverycontext.SetCurrentUser(c, ann)

		require.NoError(t, fx.handler.SubmitUserData(c))
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Name: Ann Jones")
		assert.Contains(t, page.Body.String(), "ann.jones@example.com")
		assert.NotContains(t, page.Body.String(), "Name: Ann Smith")
	})

	t.Run("validation failure", func(t *testing.T) {
		fx := createTestViewHandler(t)
		fx.userUC.EXPECT().UpdateMe(mock.Anything, ann.ID, mock.Anything).
			Return(nil, domainerrors.NewValidationError("Please tell us your name!"))

		c, _ := newFormContext(t, "/submit-user-data", url.Values{"name": {""}, "email": {"ann@example.com"}})
		deliverycontext.SetCurrentUser(c, ann)

		requireAppError(t, fx.handler.SubmitUserData(c), http.StatusBadRequest, "Invalid input data. Please tell us your name!")
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestViewHandler(t)
		c, _ := newFormContext(t, "/submit-user-data", form)

		assert.ErrorIs(t, fx.handler.SubmitUserData(c), domainerrors.ErrNotLoggedIn)
	})
}
