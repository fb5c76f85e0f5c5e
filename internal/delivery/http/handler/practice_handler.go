package handler

import (
	"strconv"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/domain"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/usecase"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/response"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	PracticeHandler interface {
		Queue(ctx *fiber.Ctx) error
		Assign(ctx *fiber.Ctx) error
		Complete(ctx *fiber.Ctx) error
		CreateItem(ctx *fiber.Ctx) error
		ListBank(ctx *fiber.Ctx) error
	}

	practiceHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.PracticeUsecase
	}
)

func NewPracticeHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.PracticeUsecase) PracticeHandler {
	return &practiceHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /learners/:learner_id/practice
func (h *practiceHandler) Queue(ctx *fiber.Ctx) error {
	learnerID := ctx.Params("learner_id")
	if learnerID == "" {
		return response.NewFailed(domain.PRACTICE_QUEUE_FAILED, fiber.NewError(fiber.StatusBadRequest, entity.ErrMissingLearnerID.Error()), h.logger).Send(ctx)
	}

	queue, err := h.usecase.Queue(ctx.UserContext(), learnerID)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_QUEUE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_QUEUE_SUCCESS, queue, nil).Send(ctx)
}

// POST /learners/:learner_id/practice/assign
func (h *practiceHandler) Assign(ctx *fiber.Ctx) error {
	learnerID := ctx.Params("learner_id")
	if learnerID == "" {
		return response.NewFailed(domain.PRACTICE_ASSIGN_FAILED, fiber.NewError(fiber.StatusBadRequest, entity.ErrMissingLearnerID.Error()), h.logger).Send(ctx)
	}

	var req entity.AssignPracticeRequest
	// An empty body means engine defaults.
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.PRACTICE_ASSIGN_FAILED, err, h.logger).Send(ctx)
		}
	}

	assigned, err := h.usecase.AssignFromProfile(ctx.UserContext(), learnerID, req.MaxItems)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_ASSIGN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_ASSIGN_SUCCESS, assigned, nil).Send(ctx)
}

// POST /practice/assignments/:assignment_id/complete
func (h *practiceHandler) Complete(ctx *fiber.Ctx) error {
	assignmentID, err := strconv.ParseUint(ctx.Params("assignment_id"), 10, 64)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_COMPLETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid assignment id"), h.logger).Send(ctx)
	}

	var req entity.CompleteAssignmentRequest
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.PRACTICE_COMPLETE_FAILED, err, h.logger).Send(ctx)
		}
	}

	completed, err := h.usecase.Complete(ctx.UserContext(), uint(assignmentID), req.AnswerText)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_COMPLETE_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_COMPLETE_SUCCESS, completed, nil).Send(ctx)
}

// POST /practice/items
func (h *practiceHandler) CreateItem(ctx *fiber.Ctx) error {
	var req entity.CreatePracticeItemRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PRACTICE_ITEM_FAILED, err, h.logger).Send(ctx)
	}

	item, err := h.usecase.CreateItem(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_ITEM_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_ITEM_SUCCESS, item, nil).Send(ctx)
}

// GET /practice/items?category=grammar
func (h *practiceHandler) ListBank(ctx *fiber.Ctx) error {
	items, err := h.usecase.ListBank(ctx.UserContext(), ctx.Query("category"))
	if err != nil {
		return response.NewFailed(domain.PRACTICE_BANK_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_BANK_SUCCESS, items, nil).Send(ctx)
}
