package builder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yaptide/materials/errors"
)

var (
	// compiledTotal counts successful compilations by material kind
	compiledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "materials_compiled_total",
		Help: "Total compiled materials by kind",
	}, []string{"kind"})

	// compileErrorsTotal counts failed compilations by error kind
	compileErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "materials_compile_errors_total",
		Help: "Total failed material compilations by reason",
	}, []string{"reason"})

	// compileDuration tracks compilation latency
	compileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "materials_compile_duration_seconds",
		Help:    "Material compilation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	opticalRegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materials_optical_registrations_total",
		Help: "Total registered optical datasets",
	})
)

// Kind label values of materials_compiled_total.
const (
	KindElemental = "elemental"
	KindIsotopic  = "isotopic"
	KindOptical   = "optical"
)

func declarationKind(decl *Declaration) string {
	switch {
	case decl.Optical:
		return KindOptical
	case decl.Isotopic:
		return KindIsotopic
	default:
		return KindElemental
	}
}

func errorReason(err error) string {
	if kind := errors.Kind(err); kind != nil {
		return kind.Error()
	}
	return "other"
}
