package formula

import (
	"math"

	"fincalc/domain"
)

type Segment string

const (
	EquityDelivery Segment = "equity-delivery"
	EquityIntraday Segment = "equity-intraday"
	FNO            Segment = "fno"
)

type Exchange string

const (
	NSE Exchange = "NSE"
	BSE Exchange = "BSE"
)

// Fee schedule.
const (
	brokerageRate      = 0.001
	brokerageMinPerLeg = 5.0
	brokerageMaxPerLeg = 20.0
	sttDeliveryRate    = 0.001
	sttIntradayRate    = 0.00025
	sttFNORate         = 0.0001
	nseExchangeRate    = 0.0000297
	bseExchangeRate    = 0.0000375
	sebiFeeRate        = 0.000001
	stampDutyRate      = 0.00015
	gstRate            = 0.18
)

type BrokerageInput struct {
	BuyPrice  float64
	SellPrice float64
	Quantity  float64
	Segment   Segment
	Exchange  Exchange
}

// brokeragePerLeg is 0.1% of the order value, clamped to [5, 20].
func brokeragePerLeg(value float64) float64 {
	return math.Max(math.Min(value*brokerageRate, brokerageMaxPerLeg), brokerageMinPerLeg)
}

// Brokerage itemises the charges of a round-trip trade and the resulting P&L.
// Every line item is rounded to paise independently.
func Brokerage(in BrokerageInput) domain.Result {
	buyValue := in.BuyPrice * in.Quantity
	sellValue := in.SellPrice * in.Quantity
	turnover := buyValue + sellValue

	brokerCharges := brokeragePerLeg(buyValue) + brokeragePerLeg(sellValue)

	var stt float64
	switch in.Segment {
	case EquityDelivery:
		stt = turnover * sttDeliveryRate
	case EquityIntraday:
		stt = sellValue * sttIntradayRate
	default:
		stt = sellValue * sttFNORate
	}

	exchangeRate := nseExchangeRate
	if in.Exchange == BSE {
		exchangeRate = bseExchangeRate
	}
	exchangeCharges := turnover * exchangeRate
	sebiCharges := turnover * sebiFeeRate
	stampDuty := buyValue * stampDutyRate
	gst := (brokerCharges + exchangeCharges + sebiCharges) * gstRate

	statutory := stt + exchangeCharges + sebiCharges + gst + stampDuty
	totalCharges := brokerCharges + statutory
	grossPnl := sellValue - buyValue

	return domain.Result{
		"turnover":        currency2(turnover),
		"grossPnl":        currency2(grossPnl),
		"totalCharges":    currency2(totalCharges),
		"growwCharges":    currency2(brokerCharges),
		"nonGrowwCharges": currency2(statutory),
		"stt":             currency2(stt),
		"exchangeCharges": currency2(exchangeCharges),
		"sebiCharges":     currency2(sebiCharges),
		"gst":             currency2(gst),
		"stampDuty":       currency2(stampDuty),
		"netPnl":          currency2(grossPnl - totalCharges),
	}
}

// Margin is the capital needed to hold a position at the given leverage.
func Margin(stockPrice, quantity, leverage float64) domain.Result {
	totalValue := stockPrice * quantity

	return domain.Result{
		"stockPrice":     currency(stockPrice),
		"quantity":       quantity,
		"totalValue":     currency(totalValue),
		"marginRequired": currency(totalValue / leverage),
		"leverage":       leverage,
		"exposure":       currency(totalValue),
	}
}

// StockLot is one purchase of a stock.
type StockLot struct {
	Quantity float64
	Price    float64
}

// StockAverage returns the quantity-weighted average purchase price. lots
// must contain at least one lot with a positive quantity.
func StockAverage(lots []StockLot) domain.Result {
	totalQuantity := 0.0
	totalCost := 0.0
	for _, l := range lots {
		totalQuantity += l.Quantity
		totalCost += l.Quantity * l.Price
	}

	return domain.Result{
		"totalQuantity": totalQuantity,
		"totalCost":     currency(totalCost),
		"averagePrice":  currency2(totalCost / totalQuantity),
	}
}
