// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-reclaim-go.
//
// sage-reclaim-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-reclaim-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-reclaim-go.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

type metrics struct {
	verifications *prometheus.CounterVec
	duration      prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reclaim",
			Name:      "proof_verifications_total",
			Help:      "Number of proofs evaluated, by outcome.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reclaim",
			Name:      "proof_verification_seconds",
			Help:      "Time spent evaluating a proof, including beacon lookups.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.verifications, m.duration)
	// pre-create the series so they are exported before the first request
	for _, r := range []string{resultValid, resultInvalid, resultError} {
		m.verifications.WithLabelValues(r)
	}
	return m
}

func (m *metrics) observe(result string, seconds float64) {
	m.verifications.WithLabelValues(result).Inc()
	m.duration.Observe(seconds)
}
