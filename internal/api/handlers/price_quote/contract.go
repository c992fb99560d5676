package price_quote

import (
	"context"

	priceQuote "github.com/m04kA/SBM-BookingService/internal/usecase/price_quote"
)

type PriceQuoteUseCase interface {
	Execute(ctx context.Context, req *priceQuote.Request) (*priceQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
