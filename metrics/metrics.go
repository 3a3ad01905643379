// This file is part of cdgplay.
//
// cdgplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cdgplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cdgplay.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exposes the behaviour of the player as prometheus metrics.
// The metrics are registered with a prometheus.Registerer supplied by the
// caller and can be served over HTTP with the Serve() function.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/curated"
	"github.com/cdgplay/cdgplay/logger"
)

// Metrics contains all prometheus metrics for the player.
type Metrics struct {
	// update loop
	Frames  prometheus.Counter
	Redraws prometheus.Counter
	FPS     prometheus.Gauge

	// seeking. the kind label is one of forward, keyframe or restart
	Seeks           *prometheus.CounterVec
	PacketsReplayed prometheus.Counter
	SeekReplay      prometheus.Histogram

	// stream position
	Position prometheus.Gauge

	// instructions that could not be decoded
	Unsupported  prometheus.Gauge
	Unrecognised prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Frames: f.NewCounter(prometheus.CounterOpts{
			Name: "cdgplay_frames_total",
			Help: "Total number of player updates",
		}),
		Redraws: f.NewCounter(prometheus.CounterOpts{
			Name: "cdgplay_redraws_total",
			Help: "Total number of player updates that required the picture to be redrawn",
		}),
		FPS: f.NewGauge(prometheus.GaugeOpts{
			Name: "cdgplay_fps",
			Help: "Measured rate of player updates per second",
		}),
		Seeks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cdgplay_seeks_total",
			Help: "Total number of seeks that processed packets or restored a keyframe",
		}, []string{"kind"}),
		PacketsReplayed: f.NewCounter(prometheus.CounterOpts{
			Name: "cdgplay_packets_replayed_total",
			Help: "Total number of packets processed while seeking",
		}),
		SeekReplay: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cdgplay_seek_replay_packets",
			Help:    "Number of packets processed by a single seek",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262144 packets
		}),
		Position: f.NewGauge(prometheus.GaugeOpts{
			Name: "cdgplay_position_seconds",
			Help: "Current position in the stream",
		}),
		Unsupported: f.NewGauge(prometheus.GaugeOpts{
			Name: "cdgplay_unsupported_instructions",
			Help: "Number of unsupported instructions since the start of the stream",
		}),
		Unrecognised: f.NewGauge(prometheus.GaugeOpts{
			Name: "cdgplay_unrecognised_instructions",
			Help: "Number of unrecognised instructions since the start of the stream",
		}),
	}
}

// SeekKind returns the value of the kind label for the seek.
func SeekKind(info cdg.SeekInfo) string {
	switch {
	case info.Keyframe:
		return "keyframe"
	case info.Restart:
		return "restart"
	}
	return "forward"
}

// RecordSeek records the most recent seek of a session. Seeks that did not
// process any packets and did not restore a keyframe are not counted.
func (m *Metrics) RecordSeek(info cdg.SeekInfo) {
	if info.Replayed == 0 && !info.Backward {
		return
	}
	m.Seeks.WithLabelValues(SeekKind(info)).Inc()
	m.PacketsReplayed.Add(float64(info.Replayed))
	m.SeekReplay.Observe(float64(info.Replayed))
}

// RecordState records the position and diagnostics of the state.
func (m *Metrics) RecordState(st *cdg.State) {
	m.Position.Set(cdg.PacketsToDuration(st.Elapsed).Seconds())
	m.Unsupported.Set(float64(st.Diagnostics.Unsupported))
	m.Unrecognised.Set(float64(st.Diagnostics.Unrecognised))
}

// Handler returns the HTTP handler for the metrics in the gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

const logTag = "metrics"

// Serve the metrics in the gatherer on the /metrics path of the address. Runs
// until the context is cancelled, at which point the server is shut down and
// nil is returned.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logf(logger.Allow, logTag, "serving metrics on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return curated.Errorf("metrics: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return curated.Errorf("metrics: %v", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf("metrics: %v", err)
	}

	return nil
}
