package handler

import (
	"errors"

	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/domain"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/entity"
	"github.com/DrNour/adaptive-translation-platform/internal/delivery/http/usecase"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/response"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	SubmissionHandler interface {
		Score(ctx *fiber.Ctx) error
		History(ctx *fiber.Ctx) error
		Profile(ctx *fiber.Ctx) error
		Translate(ctx *fiber.Ctx) error
	}

	submissionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		scoring   usecase.ScoringUsecase
		profiles  usecase.LearnerProfileUsecase
		translate usecase.TranslateUsecase
	}
)

func NewSubmissionHandler(validator *validate.Validator, logger *logrus.Logger, scoring usecase.ScoringUsecase, profiles usecase.LearnerProfileUsecase, translate usecase.TranslateUsecase) SubmissionHandler {
	return &submissionHandler{
		validator: validator,
		logger:    logger,
		scoring:   scoring,
		profiles:  profiles,
		translate: translate,
	}
}

// POST /submissions
func (h *submissionHandler) Score(ctx *fiber.Ctx) error {
	var req entity.SubmitSubmissionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SUBMISSION_SCORE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.scoring.Score(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.SUBMISSION_SCORE_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SUBMISSION_SCORE_SUCCESS, result, nil).Send(ctx)
}

// GET /learners/:learner_id/submissions
func (h *submissionHandler) History(ctx *fiber.Ctx) error {
	learnerID := ctx.Params("learner_id")
	if learnerID == "" {
		return response.NewFailed(domain.SUBMISSION_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, entity.ErrMissingLearnerID.Error()), h.logger).Send(ctx)
	}

	history, err := h.scoring.History(ctx.UserContext(), learnerID)
	if err != nil {
		return response.NewFailed(domain.SUBMISSION_HISTORY_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SUBMISSION_HISTORY_SUCCESS, history, nil).Send(ctx)
}

// GET /learners/:learner_id/profile
func (h *submissionHandler) Profile(ctx *fiber.Ctx) error {
	learnerID := ctx.Params("learner_id")
	if learnerID == "" {
		return response.NewFailed(domain.PROFILE_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, entity.ErrMissingLearnerID.Error()), h.logger).Send(ctx)
	}

	profile, err := h.profiles.Get(ctx.UserContext(), learnerID)
	if err != nil {
		return response.NewFailed(domain.PROFILE_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFILE_GET_SUCCESS, profile, nil).Send(ctx)
}

// POST /translate
func (h *submissionHandler) Translate(ctx *fiber.Ctx) error {
	var req entity.TranslateRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TRANSLATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.translate.Translate(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.TRANSLATE_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TRANSLATE_SUCCESS, result, nil).Send(ctx)
}

// statusFor maps usecase errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrMissingLearnerID),
		errors.Is(err, entity.ErrMissingSourceText),
		errors.Is(err, entity.ErrMissingMachineText),
		errors.Is(err, entity.ErrMissingCategory),
		errors.Is(err, entity.ErrMissingPrompt):
		return fiber.StatusBadRequest
	case errors.Is(err, entity.ErrSubmissionNotFound),
		errors.Is(err, entity.ErrAssignmentNotFound),
		errors.Is(err, entity.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrTranslationBackend):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
