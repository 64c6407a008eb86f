package mvic

import (
	"github.com/citizenlabsgr/elections-api/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("elections.lib.scrapers.mvic")
var meter = otel.Meter("elections.lib.scrapers.mvic")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes every session created afterwards dump its
// request/response pairs to out. Passing nil turns dumping off.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
