package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/modules/directory/presentation/listview"
	"github.com/peoplekit/directory/modules/directory/presentation/mappers"
	"github.com/peoplekit/directory/modules/directory/presentation/viewmodels"
	"github.com/peoplekit/directory/modules/directory/services"
	"github.com/peoplekit/directory/pkg/application"
	"github.com/peoplekit/directory/pkg/composables"
	"github.com/peoplekit/directory/pkg/httpapi"
	"github.com/peoplekit/directory/pkg/intl"
	"github.com/peoplekit/directory/pkg/shared"
)

type EmployeeController struct {
	app             application.Application
	employeeService *services.EmployeeService
	settingsService *services.SettingsService
	basePath        string
}

func NewEmployeeController(app application.Application) application.Controller {
	return &EmployeeController{
		app:             app,
		employeeService: app.Service(services.EmployeeService{}).(*services.EmployeeService),
		settingsService: app.Service(services.SettingsService{}).(*services.SettingsService),
		basePath:        "/directory",
	}
}

func (c *EmployeeController) Key() string {
	return c.basePath
}

func (c *EmployeeController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/employees", c.List).Methods(http.MethodGet)
	router.HandleFunc("/employees", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/employees/reset", c.Reset).Methods(http.MethodPost)
	router.HandleFunc("/employees/clear", c.Clear).Methods(http.MethodPost)
	router.HandleFunc("/employees/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/employees/{id:[0-9]+}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/employees/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/preferences/view", c.SetViewMode).Methods(http.MethodPut)
}

type listQuery struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	View     string `form:"view"`
}

func (c *EmployeeController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params, err := composables.UseQuery(&listQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_QUERY", err.Error(), nil)
		return
	}

	employees, err := c.employeeService.GetAll(ctx)
	if err != nil {
		c.internalError(w, r, err)
		return
	}

	state := listview.NewState(employees)
	state.SetSearch(params.Search)
	state.SetPageSize(params.PageSize)
	state.GoToPage(params.Page)

	view, err := c.settingsService.ViewMode(ctx)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	if params.View == services.ViewModeList || params.View == services.ViewModeGrid {
		view = params.View
	}
	state.SetView(view)

	payload := &viewmodels.EmployeeList{
		Employees:  mappers.EmployeesToViewModels(state.PageItems()),
		Total:      state.Total(),
		Filtered:   len(state.Filtered()),
		Search:     state.Search(),
		Page:       state.Page(),
		PageSize:   state.PageSize(),
		PageSizes:  listview.PageSizes,
		TotalPages: state.TotalPages(),
		PageWindow: state.PageWindow(),
		View:       state.View(),
		Notice:     c.takeNotice(r),
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, payload)
}

func (c *EmployeeController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", err.Error(), nil)
		return
	}
	entity, err := c.employeeService.GetByID(r.Context(), id)
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}
	vm := mappers.EmployeeToViewModel(entity)
	_ = httpapi.WriteJSON(w, http.StatusOK, &vm)
}

func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dto, err := composables.UseForm(&employee.CreateDTO{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errorsMap, ok := dto.Ok(ctx); !ok {
		_ = httpapi.WriteValidationErrors(w, errorsMap)
		return
	}
	entity, err := dto.ToEntity()
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	created, err := c.employeeService.Create(ctx, entity)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	c.putNotice(r, "success", "Employees.Notices.Created", created.FullName())
	vm := mappers.EmployeeToViewModel(created)
	_ = httpapi.WriteJSON(w, http.StatusCreated, &vm)
}

func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", err.Error(), nil)
		return
	}
	dto, err := composables.UseForm(&employee.UpdateDTO{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errorsMap, ok := dto.Ok(ctx); !ok {
		_ = httpapi.WriteValidationErrors(w, errorsMap)
		return
	}
	entity, err := dto.ToEntity(id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	updated, err := c.employeeService.Update(ctx, entity)
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}
	c.putNotice(r, "success", "Employees.Notices.Updated", updated.FullName())
	vm := mappers.EmployeeToViewModel(updated)
	_ = httpapi.WriteJSON(w, http.StatusOK, &vm)
}

func (c *EmployeeController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", err.Error(), nil)
		return
	}
	deleted, err := c.employeeService.Delete(r.Context(), id)
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}
	c.putNotice(r, "success", "Employees.Notices.Deleted", deleted.FullName())
	vm := mappers.EmployeeToViewModel(deleted)
	_ = httpapi.WriteJSON(w, http.StatusOK, &vm)
}

func (c *EmployeeController) Reset(w http.ResponseWriter, r *http.Request) {
	restored, err := c.employeeService.ResetToDefault(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	c.putNotice(r, "success", "Employees.Notices.Reset", "")
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]int{"total": len(restored)})
}

func (c *EmployeeController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.employeeService.ClearAll(r.Context()); err != nil {
		c.internalError(w, r, err)
		return
	}
	c.putNotice(r, "success", "Employees.Notices.Cleared", "")
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]int{"total": 0})
}

type viewModeForm struct {
	View string `form:"view"`
}

func (c *EmployeeController) SetViewMode(w http.ResponseWriter, r *http.Request) {
	form, err := composables.UseForm(&viewModeForm{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if err := c.settingsService.SetViewMode(r.Context(), form.View); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BAD_VIEW_MODE", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"view": form.View})
}

// putNotice stores a one-shot result consumed by the next list request.
// Failures are logged, never surfaced; the mutation already succeeded.
func (c *EmployeeController) putNotice(r *http.Request, noticeType, messageID, name string) {
	err := c.settingsService.PutPendingResult(r.Context(), persistence.PendingResultRow{
		Type:      noticeType,
		MessageID: messageID,
		Name:      name,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to store pending result")
	}
}

func (c *EmployeeController) takeNotice(r *http.Request) *viewmodels.Notice {
	ctx := r.Context()
	result, ok, err := c.settingsService.TakePendingResult(ctx)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("failed to consume pending result")
		return nil
	}
	if !ok {
		return nil
	}
	localizer, found := intl.UseLocalizer(ctx)
	if !found {
		return nil
	}
	message, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    result.MessageID,
		TemplateData: map[string]string{"Name": result.Name},
	})
	if err != nil {
		return nil
	}
	return &viewmodels.Notice{Type: result.Type, Message: message}
}

func (c *EmployeeController) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, employee.ErrNotFound) {
		message := "employee not found"
		if localizer, ok := intl.UseLocalizer(r.Context()); ok {
			if localized, lerr := localizer.Localize(&i18n.LocalizeConfig{
				MessageID: "Employees.Notices.NotFound",
			}); lerr == nil {
				message = localized
			}
		}
		_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
		return
	}
	c.internalError(w, r, err)
}

func (c *EmployeeController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("employee controller failure")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}
