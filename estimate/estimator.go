package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/randalmurphal/posekit/pricing"
	"github.com/randalmurphal/posekit/tokens"
)

// usdPlaces is the display precision for USD figures.
const usdPlaces = 6

var million = decimal.NewFromInt(1_000_000)

// Estimate is one step's projected cost. Always freshly computed, never
// cached across input changes. TotalUSD equals InputUSD plus OutputUSD.
type Estimate struct {
	InputTokens  int
	OutputTokens int
	InputUSD     decimal.Decimal
	OutputUSD    decimal.Decimal
	TotalUSD     decimal.Decimal
}

// Estimator combines token counting with catalog rates.
type Estimator struct {
	counter *tokens.Counter
}

// New creates an estimator. A nil counter gets the default one.
func New(counter *tokens.Counter) *Estimator {
	if counter == nil {
		counter = tokens.NewCounter()
	}
	return &Estimator{counter: counter}
}

// Text estimates a text-only step: input is the tokenized prompt, output
// is the mode's assumed length.
func (e *Estimator) Text(rates *pricing.Rates, input string, assumedOutputTokens int) Estimate {
	return e.estimate(rates, e.counter.Count(input), assumedOutputTokens)
}

// Vision estimates the image step: input is the image's tile cost plus
// the combined prompt text. Callers with an unreadable image pass 512x512
// so an estimate still renders.
func (e *Estimator) Vision(rates *pricing.Rates, widthPx, heightPx int, combinedPrompt string, assumedOutputTokens int) Estimate {
	img := tokens.CountImage(widthPx, heightPx)
	in := img.Tokens + e.counter.Count(combinedPrompt)
	return e.estimate(rates, in, assumedOutputTokens)
}

func (e *Estimator) estimate(rates *pricing.Rates, inputTokens, outputTokens int) Estimate {
	est := Estimate{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputUSD:     decimal.Zero,
		OutputUSD:    decimal.Zero,
		TotalUSD:     decimal.Zero,
	}
	if rates == nil {
		return est
	}
	est.InputUSD = usd(inputTokens, rates.InputPerMillion)
	est.OutputUSD = usd(outputTokens, rates.OutputPerMillion)
	est.TotalUSD = est.InputUSD.Add(est.OutputUSD)
	return est
}

// usd converts a token count at a per-million rate to a rounded figure.
// decimal.Round rounds half away from zero.
func usd(tokenCount int, perMillion float64) decimal.Decimal {
	return decimal.NewFromInt(int64(tokenCount)).
		Mul(decimal.NewFromFloat(perMillion)).
		Div(million).
		Round(usdPlaces)
}
