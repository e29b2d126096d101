package timeslot

import (
	"classbook/infras/otel"
	"classbook/internal/domains/timeslot/model/dto"
	"classbook/internal/domains/timeslot/service"
	"classbook/shared"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	"classbook/shared/validator"
	"classbook/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.TimeSlot
	otel    otel.Otel
}

func New(service service.TimeSlot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/time_slots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTimeSlot)
		routerGroup.Get("/", handler.GetTimeSlots)
		routerGroup.Get("/{id}", handler.GetTimeSlotByID)
		routerGroup.Put("/{id}", handler.UpdateTimeSlot)
		routerGroup.Delete("/{id}", handler.DeleteTimeSlot)
	})
}

// CreateTimeSlot handles the creation of a new time slot.
// @Summary Create a new time slot
// @Description Create a new time slot with the provided start and end times.
// @Tags TimeSlot
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeSlotRequest true "Create Time Slot Request"
// @Success 201 {object} response.Data[dto.TimeSlotResponse] "Time slot created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/time_slots [post]
// @Security BearerAuth
func (handler *Handler) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTimeSlot")
	defer scope.End()

	req := dto.CreateTimeSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create time slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slot created successfully by user " + shared.ContextUser(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTimeSlots retrieves all time slots based on query parameters.
// @Summary Get all time slots
// @Description Retrieve all time slots with optional pagination.
// @Tags TimeSlot
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTimeSlotsResponse] "List of time slots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/time_slots [get]
// @Security BearerAuth
func (handler *Handler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeSlots")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	slots, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// GetTimeSlotByID retrieves a time slot by its ID.
// @Summary Get a time slot by ID
// @Description Retrieve a time slot by its unique identifier.
// @Tags TimeSlot
// @Accept json
// @Produce json
// @Param id path integer true "Time Slot ID"
// @Success 200 {object} response.Data[dto.TimeSlotResponse] "Time slot details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/time_slots/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTimeSlotByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeSlotByID")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	slot, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slot by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slot retrieved successfully")

	response.WithJSON(w, http.StatusOK, slot)
}

// UpdateTimeSlot updates an existing time slot by its ID.
// @Summary Update a time slot by ID
// @Description Update the start or end time of an existing time slot.
// @Tags TimeSlot
// @Accept json
// @Produce json
// @Param id path integer true "Time Slot ID"
// @Param request body dto.UpdateTimeSlotRequest true "Update Time Slot Request"
// @Success 200 {object} response.Message "Time slot updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/time_slots/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTimeSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTimeSlot")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTimeSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update time slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slot updated successfully by user " + shared.ContextUser(ctx))

	response.WithMessage(w, http.StatusOK, "Time slot updated successfully")
}

// DeleteTimeSlot deletes a time slot by its ID.
// @Summary Delete a time slot by ID
// @Description Delete a time slot using its unique identifier.
// @Tags TimeSlot
// @Accept json
// @Produce json
// @Param id path integer true "Time Slot ID"
// @Success 200 {object} response.Message "Time slot deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/time_slots/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTimeSlot")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete time slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slot deleted successfully by user " + shared.ContextUser(ctx))

	response.WithMessage(w, http.StatusOK, "Time slot deleted successfully")
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid id parameter") // nolint:wrapcheck
	}

	return id, nil
}
