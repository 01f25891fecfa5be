package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"finledger/internal/service"
	"finledger/internal/transform"
	"finledger/pkg/config"
)

type TransactionHandler struct {
	txService *service.TransactionService
	api       config.APIConfig
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, api config.APIConfig, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		api:       api,
		logger:    logger,
	}
}

// List godoc
// @Summary List transaction groups
// @Description Get the user's transaction groups, each flattened into client-facing records
// @Tags transactions
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Security Bearer
// @Success 200 {array} dto.TransactionGroupResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", h.api.DefaultPageSize)
	if limit < 1 || limit > h.api.MaxPageSize {
		limit = h.api.DefaultPageSize
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	groups, err := h.txService.List(c.Context(), userID, uint64(limit), uint64(offset))
	if err != nil {
		return h.transformError(c, err, "Failed to list transaction groups")
	}

	return c.JSON(groups)
}

// Show godoc
// @Summary Get one transaction group
// @Description Get a single transaction group flattened into client-facing records
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction group ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionGroupResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Show(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction group ID",
		})
	}

	resp, err := h.txService.Show(c.Context(), userID, groupID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction group not found",
			})
		}
		return h.transformError(c, err, "Failed to fetch transaction group")
	}

	return c.JSON(resp)
}

// transformError keeps the caller-facing message generic. A corrupt group's
// sanitized notice passes through; its cause is already in the operator log.
func (h *TransactionHandler) transformError(c *fiber.Ctx, err error, msg string) error {
	var groupErr *transform.GroupError
	if errors.As(err, &groupErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": groupErr.Error(),
		})
	}

	h.logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

func getUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	return userID, nil
}
