package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-draft/internal/auctionerrors"
	"auction-draft/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrTeamNotFound):
		return http.StatusNotFound, "team not found"
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrPickNotFound):
		return http.StatusNotFound, "draft pick not found"
	case errors.Is(err, auctionerrors.ErrSessionNotFound):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusConflict, "action not allowed in current auction state"
	case errors.Is(err, auctionerrors.ErrConcurrencyConflict):
		return http.StatusConflict, "auction state changed, re-read and retry"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNominationOpen):
		return http.StatusConflict, "an item is already open for bidding"
	case errors.Is(err, auctionerrors.ErrItemUnavailable):
		return http.StatusConflict, "item is not available"
	case errors.Is(err, auctionerrors.ErrNotYourTurn):
		return http.StatusBadRequest, "not your nomination turn"
	case errors.Is(err, auctionerrors.ErrNoActiveNominee):
		return http.StatusBadRequest, "no item is open for bidding"
	case errors.Is(err, auctionerrors.ErrBudgetExceeded):
		return http.StatusBadRequest, "bid exceeds budget maximum"
	case errors.Is(err, auctionerrors.ErrNoOpenSlot):
		return http.StatusBadRequest, "no open roster slot for this item"
	case errors.Is(err, auctionerrors.ErrNoEligibleSlot):
		return http.StatusBadRequest, "no eligible roster slot for this item"
	case errors.Is(err, auctionerrors.ErrSlotNotEligible):
		return http.StatusBadRequest, "roster slot does not accept this item"
	case errors.Is(err, auctionerrors.ErrSlotFull):
		return http.StatusBadRequest, "roster slot is full"
	case errors.Is(err, auctionerrors.ErrInvalidAction):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
