package tas

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured event logger type this package logs through,
// the same way logiface-stumpy's example wires a *logiface.Logger[*stumpy.Event].
type Logger = logiface.Logger[*stumpy.Event]

// defaultLogger lazily builds the fallback logger used when no WithLogger
// option is supplied: stumpy's JSON encoder writing to stderr, at the
// informational level and above.
func defaultLogger() *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(),
		logiface.WithLevel[*stumpy.Event](logiface.LevelInformational),
	)
}

// warnDropped logs a recoverable capacity-exceeded event: the item was
// dropped, the scheduler continues.
func warnDropped(log *Logger, queue int, reason string) {
	if log == nil {
		return
	}
	log.Warning().
		Int(`queue`, queue).
		Str(`reason`, reason).
		Log(`tas: item dropped`)
}

// warnClassifierAnomaly logs a recoverable classifier-anomaly event: a
// filter returned an out-of-range class index.
func warnClassifierAnomaly(log *Logger, class int) {
	if log == nil {
		return
	}
	log.Warning().
		Int(`class`, class).
		Log(`tas: classifier returned out-of-range class, coerced to queue 0`)
}

// warnNoTransmissionTime logs a recoverable transmission-time-unavailable
// event.
func warnNoTransmissionTime(log *Logger, queue int) {
	if log == nil {
		return
	}
	log.Warning().
		Int(`queue`, queue).
		Log(`tas: head-of-line item reports no size, or link rate is zero; treating as zero-duration for guard band`)
}

// traceClassified logs the outcome of one classify call at debug level,
// mainly useful for diagnosing TrustQostag / classifier-chain interaction.
func traceClassified(log *Logger, class int, usedTag bool) {
	if log == nil {
		return
	}
	log.Debug().
		Int(`class`, class).
		Bool(`used_tag`, usedTag).
		Log(`tas: item classified`)
}
