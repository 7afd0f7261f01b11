package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customer-templates/internal/document"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/kv"
	"github.com/umalmyha/customer-templates/internal/seed"
	"github.com/umalmyha/customer-templates/internal/service"
	"github.com/umalmyha/customer-templates/internal/store"
)

type routerTestSuite struct {
	suite.Suite
	app *echo.Echo
}

func (s *routerTestSuite) SetupTest() {
	st := store.New(kv.NewMemory(), kv.JSONCodec{})

	app, err := Router(Services{
		Customer:  service.NewCustomerService(st),
		Template:  service.NewTemplateService(st),
		Document:  service.NewDocumentService(st, document.LogRequester(document.ActionDownload), document.LogRequester(document.ActionPrint)),
		Reference: service.NewReferenceService(seed.Users()),
	})
	s.Require().NoError(err, "failed to build router")
	s.app = app
}

func (s *routerTestSuite) TestStatusMapping() {
	t := s.T()
	require := s.Require()

	t.Log("list customers")
	{
		rec := s.serve(http.MethodGet, "/api/customers", "")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")
	}

	t.Log("static routes take precedence over customer id")
	{
		rec := s.serve(http.MethodGet, "/api/customers/next-code", "")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")
		require.JSONEq(`{"code":"KH005"}`, rec.Body.String(), "next code must be returned")
	}

	t.Log("missing customer is not found")
	{
		rec := s.serve(http.MethodGet, "/api/customers/missing", "")
		require.Equal(http.StatusNotFound, rec.Code, "response code must be Not Found")
		require.JSONEq(`{"message":"customer with id missing doesn't exist"}`, rec.Body.String(), "message must name missing customer")
	}

	t.Log("malformed json is bad request")
	{
		rec := s.serve(http.MethodPost, "/api/templates", `{"name":`)
		require.Equal(http.StatusBadRequest, rec.Code, "response code must be Bad Request")
	}

	t.Log("invalid payload reports violations per field")
	{
		rec := s.serve(http.MethodPost, "/api/templates", `{"name":"Biên bản","fileName":"bien-ban.pdf"}`)
		require.Equal(http.StatusBadRequest, rec.Code, "response code must be Bad Request")

		var body struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &body), "response must contain violations")
		require.Len(body.Errors, 1, "only file name must be reported")
		require.Equal("fileName", body.Errors[0].Field, "violation must reference json field")
	}

	t.Log("document of seed customer is requested")
	{
		rec := s.serve(http.MethodPost, "/api/customers/1/templates/1/download", "")
		require.Equal(http.StatusAccepted, rec.Code, "response code must be Accepted")
	}

	t.Log("template deletion cascades")
	{
		rec := s.serve(http.MethodDelete, "/api/templates/1", "")
		require.Equal(http.StatusNoContent, rec.Code, "response code must be No Content")

		rec = s.serve(http.MethodPost, "/api/customers/1/templates/1/download", "")
		require.Equal(http.StatusNotFound, rec.Code, "materialized template must be gone")
	}
}

func (s *routerTestSuite) serve(method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.app.ServeHTTP(rec, req)
	return rec
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(routerTestSuite))
}

func TestHTTPErrorMapping(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	cases := map[string]struct {
		err  error
		code int
	}{
		"echo error kept":   {err: echo.NewHTTPError(http.StatusConflict, "conflict"), code: http.StatusConflict},
		"not found":         {err: apperrors.EntryNotFound("template", "42"), code: http.StatusNotFound},
		"unexpected":        {err: errors.New("boom"), code: http.StatusInternalServerError},
		"wrapped not found": {err: fmt.Errorf("failed to load customer - %w", apperrors.EntryNotFound("customer", "7")), code: http.StatusNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.code, httpError(tc.err, c).Code, "unexpected status code")
		})
	}
}
