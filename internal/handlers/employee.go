package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/staffdir/apiserver/internal/services"
	"github.com/staffdir/apiserver/internal/store"
)

// EmployeeHandler provides HTTP handlers for the employee CRUD surface.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler constructs a handler with the provided service.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRouter registers employee routes on the given router. Every
// mutating route requires authentication; the name search stays public.
func EmployeeRouter(r chi.Router, employeeService *services.EmployeeService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewEmployeeHandler(employeeService)

	r.With(authMiddleware).Get("/employees", handler.ListEmployees)
	r.With(authMiddleware).Post("/insertemployee", handler.CreateEmployee)
	r.Get("/selectbyname", handler.GetEmployeesByName)
	r.Route("/employees/{employeeID}", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", handler.GetEmployee)
		r.Put("/", handler.UpdateEmployee)
		r.Delete("/", handler.DeleteEmployee)
	})
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) GetEmployeesByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	employees, err := h.employeeService.GetByName(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req services.CreateEmployeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create employee")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateEmployeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseEmployeeID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "employeeID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid employee id")
	}
	return id, nil
}
