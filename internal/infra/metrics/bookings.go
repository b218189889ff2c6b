package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Count of bookings accepted by the overlap gate.",
		},
	)

	bookingsConflicted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_conflicted_total",
			Help: "Count of booking attempts rejected with a conflict.",
		},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Count of bookings moved active -> cancelled.",
		},
	)

	bookingsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_completed_total",
			Help: "Count of bookings moved active -> done by the sweep.",
		},
	)
)

func init() {
	register(bookingsCreated, bookingsConflicted, bookingsCancelled, bookingsCompleted)
}

func IncBookingsCreated()    { bookingsCreated.Inc() }
func IncBookingsConflicted() { bookingsConflicted.Inc() }
func IncBookingsCancelled()  { bookingsCancelled.Inc() }

func AddBookingsCompleted(n int) {
	if n > 0 {
		bookingsCompleted.Add(float64(n))
	}
}
