package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplekit/directory/modules/directory"
	"github.com/peoplekit/directory/modules/directory/presentation/viewmodels"
	"github.com/peoplekit/directory/pkg/application"
	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/eventbus"
	"github.com/peoplekit/directory/pkg/httpapi"
	"github.com/peoplekit/directory/pkg/kv"
	"github.com/peoplekit/directory/pkg/middleware"
	"github.com/peoplekit/directory/pkg/server"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	app := application.New(&application.ApplicationOptions{
		Store:    kv.NewMemoryStore(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Bundle:   application.LoadBundle(),
	})
	require.NoError(t, directory.NewModule().Register(app))

	conf := &configuration.Configuration{
		RequestIDHeader: "X-Request-ID",
		RealIPHeader:    "X-Real-IP",
	}
	app.RegisterMiddleware(
		middleware.WithLogger(logger, conf),
		middleware.ProvideLocalizer(app),
	)
	srv := server.NewHTTPServer(app, http.NotFoundHandler(), http.NotFoundHandler())
	return srv.Router()
}

func getList(t *testing.T, router *mux.Router, query string) viewmodels.EmployeeList {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directory/employees"+query, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list viewmodels.EmployeeList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func validForm() url.Values {
	return url.Values{
		"firstName":        {"Ada"},
		"lastName":         {"Lovelace"},
		"dateOfEmployment": {"2020-03-01"},
		"dateOfBirth":      {"1990-12-10"},
		"phoneNumber":      {"+90 532 123 4567"},
		"email":            {"ada@company.com"},
		"department":       {"Tech"},
		"position":         {"Senior"},
	}
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEmployeeController_ListDefaults(t *testing.T) {
	router := newTestRouter(t)
	list := getList(t, router, "")

	assert.Equal(t, 200, list.Total)
	assert.Equal(t, 200, list.Filtered)
	assert.Len(t, list.Employees, 5)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 5, list.PageSize)
	assert.Equal(t, 40, list.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, list.PageWindow)
	assert.Equal(t, "list", list.View)
	assert.Nil(t, list.Notice)
}

func TestEmployeeController_ListSearchAndPaging(t *testing.T) {
	router := newTestRouter(t)

	list := getList(t, router, "?search=alice&pageSize=3&page=2")
	assert.Equal(t, 3, list.PageSize)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 10, list.Filtered, "Alice appears ten times in the seed")
	assert.Len(t, list.Employees, 3)
	for _, emp := range list.Employees {
		assert.Contains(t, strings.ToLower(emp.Name), "alice")
	}
}

func TestEmployeeController_CreateAndNotice(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/directory/employees", validForm())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created viewmodels.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.NotZero(t, created.ID)

	list := getList(t, router, "")
	assert.Equal(t, 201, list.Total)
	assert.Equal(t, created.ID, list.Employees[0].ID, "new record comes first")
	require.NotNil(t, list.Notice)
	assert.Equal(t, "success", list.Notice.Type)
	assert.Equal(t, "Employee Ada Lovelace has been added", list.Notice.Message)

	second := getList(t, router, "")
	assert.Nil(t, second.Notice, "the notice is one-shot")
}

func TestEmployeeController_CreateValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	form := validForm()
	form.Set("firstName", "A")
	form.Set("email", "not-an-email")
	rec := postForm(router, "/directory/employees", form)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope struct {
		Code   string            `json:"code"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Code)
	assert.Equal(t, "First Name must be at least 2 characters", envelope.Errors["FirstName"])
	assert.Equal(t, "Please enter a valid email address", envelope.Errors["Email"])

	list := getList(t, router, "")
	assert.Equal(t, 200, list.Total, "invalid input must not change state")
}

func TestEmployeeController_CreateValidationErrorsTurkish(t *testing.T) {
	router := newTestRouter(t)

	form := validForm()
	form.Set("lastName", "")
	req := httptest.NewRequest(http.MethodPost, "/directory/employees?lang=tr", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Soyad gereklidir", envelope.Errors["LastName"])
}

func TestEmployeeController_GetUpdateDelete(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/directory/employees", validForm())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created viewmodels.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := "/directory/employees/" + strconv.FormatInt(created.ID, 10)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	form := validForm()
	form.Set("firstName", "Grace")
	form.Set("lastName", "Hopper")
	rec = postForm(router, path, form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated viewmodels.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Grace Hopper", updated.Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestEmployeeController_UpdateMissingReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/directory/employees/999999999999", validForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeController_ViewModePreference(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"view": {"grid"}}
	req := httptest.NewRequest(http.MethodPut, "/directory/preferences/view", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	list := getList(t, router, "")
	assert.Equal(t, "grid", list.View)

	form = url.Values{"view": {"cards"}}
	req = httptest.NewRequest(http.MethodPut, "/directory/preferences/view", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployeeController_ResetAndClear(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/directory/employees/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := getList(t, router, "")
	assert.Zero(t, list.Total)

	rec = postForm(router, "/directory/employees/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = getList(t, router, "")
	assert.Equal(t, 200, list.Total)
}
