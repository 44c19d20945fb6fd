package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/metrics"
	"github.com/MatrixETF/solana-airdrop/internal/usecase"
)

type Airdropper interface {
	Airdrop(ctx context.Context, req entity.TransferRequest) (string, error)
}

type Handler struct {
	faucet      Airdropper
	coins       []entity.CoinInfo
	serviceName string
	network     string
	timeout     time.Duration
	logger      *logrus.Logger
}

type Options struct {
	ServiceName string
	Network     string
	// Timeout bounds the ledger calls of one request. Zero disables it.
	Timeout time.Duration
}

func NewHandler(faucet Airdropper, coins []entity.CoinInfo, opts Options, logger *logrus.Logger) *Handler {
	return &Handler{
		faucet:      faucet,
		coins:       coins,
		serviceName: opts.ServiceName,
		network:     opts.Network,
		timeout:     opts.Timeout,
		logger:      logger,
	}
}

func (h *Handler) Index(c *fiber.Ctx) error {
	return c.JSON(entity.DataResponse{
		Success: true,
		Data:    fmt.Sprintf("%s %s Airdrop API", h.serviceName, h.network),
	})
}

func (h *Handler) Coins(c *fiber.Ctx) error {
	return c.JSON(entity.DataResponse{
		Success: true,
		Data:    h.coins,
	})
}

func (h *Handler) Airdrop(c *fiber.Ctx) error {
	var req entity.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		// an unreadable body carries no parameters
		req = entity.TransferRequest{}
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	txID, err := h.faucet.Airdrop(ctx, req)
	if err != nil {
		return h.fail(c, req.Coin, err)
	}

	metrics.RecordAirdrop(req.Coin, metrics.ResultSuccess)
	return c.JSON(entity.AirdropResponse{
		Success: true,
		TxID:    txID,
	})
}

func (h *Handler) fail(c *fiber.Ctx, coin string, err error) error {
	var inputErr *usecase.InputError
	var submitErr *usecase.SubmitError

	switch {
	case errors.As(err, &inputErr):
		metrics.RecordAirdrop("-", metrics.ResultInvalid)
		return respondError(c, fiber.StatusBadRequest, inputErr.Message)
	case errors.As(err, &submitErr):
		metrics.RecordAirdrop(coin, metrics.ResultSubmitFailed)
		return respondError(c, fiber.StatusBadRequest, submitErr.Error())
	default:
		metrics.RecordAirdrop(coin, metrics.ResultError)
		h.logger.WithError(err).WithField("coin", coin).Error("airdrop aborted")
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(entity.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// ErrorHandler keeps fiber's own errors (unknown route, panics) in the
// {success, message} shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	return respondError(c, status, err.Error())
}
