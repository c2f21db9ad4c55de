package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"profiled/internal/platform/logger"
	"profiled/internal/profile"
	"profiled/internal/profile/handler/mocks"
	"profiled/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/profile_mocks.go -package=mocks Service

func newTestRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	h := New(svc, logger.NewWithWriter(io.Discard, "ERROR"))
	// pass-through auth stage; tests attach the phone directly
	h.Register(r, func(next http.Handler) http.Handler { return next })
	return r
}

func TestGetProfile_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		Fetch(gomock.Any(), "+15551234567").
		Return(profile.Profile{Phone: "+15551234567", Name: "Test User", Email: "test@example.com"}, nil).
		Times(1)

	req := testutil.WithPhone(testutil.NewRequest(t, http.MethodGet, "/profile"), "+15551234567")
	rr := testutil.DoRequest(newTestRouter(svc), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	got := testutil.UnmarshalResponse[profile.Profile](t, rr)
	assert.Equal(t, "+15551234567", got.Phone)
	assert.Equal(t, "Test User", got.Name)
	assert.Equal(t, "test@example.com", got.Email)
}

func TestGetProfile_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl) // Fetch must not be called

	rr := testutil.DoRequest(newTestRouter(svc), testutil.NewRequest(t, http.MethodGet, "/profile"))

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertJSONContains(t, rr, "message", "Internal server error")
}

func TestGetProfile_StoreFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		Fetch(gomock.Any(), "+15551234567").
		Return(profile.Profile{}, errors.New("firestore: unavailable")).
		Times(1)

	req := testutil.WithPhone(testutil.NewRequest(t, http.MethodGet, "/profile"), "+15551234567")
	rr := testutil.DoRequest(newTestRouter(svc), req)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertJSONContains(t, rr, "message", "Internal server error")
	assert.NotContains(t, rr.Body.String(), "unavailable", "internal detail must not leak")
}

func TestPostProfile_TrimsBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		Upsert(gomock.Any(), "+15551234567", "Test User", "test@example.com").
		Return(profile.Profile{Phone: "+15551234567", Name: "Test User", Email: "test@example.com"}, nil).
		Times(1)

	body := profile.Submission{Name: "  Test User  ", Email: " test@example.com "}
	req := testutil.WithPhone(testutil.NewJSONRequest(t, http.MethodPost, "/profile", body), "+15551234567")
	rr := testutil.DoRequest(newTestRouter(svc), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestPostProfile_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl) // Upsert must not be called

	body := profile.Submission{Name: "", Email: "bad"}
	req := testutil.WithPhone(testutil.NewJSONRequest(t, http.MethodPost, "/profile", body), "+15551234567")
	rr := testutil.DoRequest(newTestRouter(svc), req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertJSONContains(t, rr, "message", "Name must be a non-empty string")
}

func TestPostProfile_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)

	req := testutil.WithPhone(testutil.NewRequestWithBody(t, http.MethodPost, "/profile", "{not json"), "+15551234567")
	rr := testutil.DoRequest(newTestRouter(svc), req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestPostProfile_OversizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/profile", `{"name":"Test User","email":"test@example.com"}`)
	req = testutil.WithPhone(req, "+15551234567")
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 8)

	r := newTestRouter(svc)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
