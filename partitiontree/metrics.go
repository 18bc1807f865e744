package ptree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeSplits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ptree_node_splits_total",
		Help: "Leaves split into two children",
	})

	nodeMerges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ptree_node_merges_total",
		Help: "Internal nodes collapsed back into leaves",
	})

	nodeRotations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ptree_node_rotations_total",
		Help: "Leaf fusions performed by point-write compaction",
	})

	rangeWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ptree_range_writes_total",
		Help: "Rectangular writes by operation",
	}, []string{"op"})

	pointWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ptree_point_writes_total",
		Help: "Single-cell writes by operation",
	}, []string{"op"})
)
