package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestBrokerageDelivery(t *testing.T) {
	r := Brokerage(BrokerageInput{BuyPrice: 100, SellPrice: 110, Quantity: 100, Segment: EquityDelivery, Exchange: NSE})

	assert.Equal(t, domain.Result{
		"turnover":        21000,
		"grossPnl":        1000,
		"totalCharges":    48.04,
		"growwCharges":    21,
		"nonGrowwCharges": 27.04,
		"stt":             21,
		"exchangeCharges": 0.62,
		"sebiCharges":     0.02,
		"gst":             3.9,
		"stampDuty":       1.5,
		"netPnl":          951.96,
	}, r)
}

func TestBrokeragePerLegIsClamped(t *testing.T) {
	assert.Equal(t, brokerageMinPerLeg, brokeragePerLeg(100))
	assert.Equal(t, 10.0, brokeragePerLeg(10000))
	assert.Equal(t, brokerageMaxPerLeg, brokeragePerLeg(1000000))
}

func TestBrokerageSegments(t *testing.T) {
	base := BrokerageInput{BuyPrice: 1000, SellPrice: 1000, Quantity: 10}

	base.Segment = EquityDelivery
	delivery := Brokerage(base)
	base.Segment = EquityIntraday
	intraday := Brokerage(base)
	base.Segment = FNO
	fno := Brokerage(base)

	assert.Equal(t, 20.0, delivery["stt"])
	assert.Equal(t, 2.5, intraday["stt"])
	assert.Equal(t, 1.0, fno["stt"])
	assert.Less(t, fno["totalCharges"], delivery["totalCharges"])
}

func TestBrokerageBSECostsMore(t *testing.T) {
	in := BrokerageInput{BuyPrice: 500, SellPrice: 520, Quantity: 1000, Segment: EquityIntraday, Exchange: NSE}
	nse := Brokerage(in)
	in.Exchange = BSE
	bse := Brokerage(in)

	assert.Greater(t, bse["exchangeCharges"], nse["exchangeCharges"])
}

func TestMargin(t *testing.T) {
	assert.Equal(t, domain.Result{
		"stockPrice":     100,
		"quantity":       50,
		"totalValue":     5000,
		"marginRequired": 1000,
		"leverage":       5,
		"exposure":       5000,
	}, Margin(100, 50, 5))
}

func TestStockAverage(t *testing.T) {
	r := StockAverage([]StockLot{{Quantity: 10, Price: 100}, {Quantity: 20, Price: 130}})

	assert.Equal(t, 30.0, r["totalQuantity"])
	assert.Equal(t, 3600.0, r["totalCost"])
	assert.Equal(t, 120.0, r["averagePrice"])
}

func TestStockAverageKeepsPaise(t *testing.T) {
	r := StockAverage([]StockLot{{Quantity: 3, Price: 100}, {Quantity: 1, Price: 101}})
	assert.Equal(t, 100.25, r["averagePrice"])
}
