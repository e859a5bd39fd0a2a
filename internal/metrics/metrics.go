package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	VacancyCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_vacancy_cache_hits_total",
			Help: "Total number of vacancy lookups answered from the store.",
		},
	)
	VacancyCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_vacancy_cache_misses_total",
			Help: "Total number of vacancy lookups that went upstream.",
		},
	)
	UpstreamRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "tracker_upstream_request_duration_seconds",
			Help:       "Duration of requests to the job board API.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"endpoint"},
	)
	SavedVacanciesAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_saved_vacancies_added_total",
			Help: "Total number of vacancies saved by users.",
		},
	)
	SavedVacanciesRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_saved_vacancies_removed_total",
			Help: "Total number of saved vacancies removed by users.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(VacancyCacheHits)
	prometheus.MustRegister(VacancyCacheMisses)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(SavedVacanciesAdded)
	prometheus.MustRegister(SavedVacanciesRemoved)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
