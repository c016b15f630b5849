// Package metrics exposes Prometheus counters for the item and GUI builders.
// The collectors are registered on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "codelib"

	LabelCategory = "category"
	LabelType     = "type"
	LabelBuilder  = "builder"
	LabelReason   = "reason"

	BuilderItem = "item"
	BuilderGUI  = "gui"
)

var (
	ItemsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_built_total",
			Help:      "Items handed out by item builders, by material category.",
		},
		[]string{LabelCategory},
	)

	GUIsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guis_built_total",
			Help:      "Inventories handed out by GUI builders, by archetype.",
		},
		[]string{LabelType},
	)

	GUIsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guis_opened_total",
			Help:      "Inventories shown to a viewer, by archetype.",
		},
		[]string{LabelType},
	)

	BuilderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builder_errors_total",
			Help:      "Failed builder calls, by builder and reason.",
		},
		[]string{LabelBuilder, LabelReason},
	)
)
